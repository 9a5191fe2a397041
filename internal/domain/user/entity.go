package user

import "time"

type Role string

const (
	RoleUser  Role = "user"  // Employee: attendance, leave, own slips and letters
	RoleAdmin Role = "admin" // Back-office operator
)

type User struct {
	ID                   string
	Name                 string
	Email                string
	Mobile               string
	PasswordHash         string
	Role                 Role
	PasswordResetToken   *string
	PasswordResetExpires *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// IsAdmin checks if user is a back-office operator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Employee is a roster row: a user with role "user" joined with profile data.
type Employee struct {
	ID           string
	Name         string
	Email        string
	Mobile       string
	Designation  *string
	ProfileImage *string
	JoiningDate  *time.Time
	CreatedAt    time.Time
}
