package profile

import "time"

type Profile struct {
	ID                string
	UserID            string
	JoiningDate       time.Time
	DOB               *time.Time
	Address           *string
	City              *string
	State             *string
	Pincode           *string
	ProfileImage      *string
	Designation       *string
	PANNumber         *string
	BankAccountNumber *string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Join
	UserName  string
	UserEmail string
}
