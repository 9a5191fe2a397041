package profile

import (
	"strings"
	"time"

	"github.com/techdigi/hr-backoffice/internal/pkg/storage"
	"github.com/techdigi/hr-backoffice/internal/pkg/validator"
)

// UpdateProfileRequest arrives as multipart form fields. Nil means "not sent".
type UpdateProfileRequest struct {
	UserID            string
	Name              *string
	DOB               *string
	Address           *string
	City              *string
	State             *string
	Pincode           *string
	Designation       *string
	PANNumber         *string
	BankAccountNumber *string

	Image *storage.Upload
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "name cannot be empty")
	}
	if r.DOB != nil && *r.DOB != "" {
		if _, ok := validator.IsValidDate(*r.DOB); !ok {
			errs.Add("dob", ErrInvalidDOB.Error())
		}
	}
	if r.PANNumber != nil && *r.PANNumber != "" {
		pan := strings.ToUpper(strings.TrimSpace(*r.PANNumber))
		r.PANNumber = &pan
		if !validator.IsValidPAN(pan) {
			errs.Add("panNumber", "PAN number must look like ABCDE1234F")
		}
	}
	if r.Pincode != nil && *r.Pincode != "" && !validator.IsNumeric(*r.Pincode) {
		errs.Add("pincode", "pincode must be numeric")
	}

	return errs.Err()
}

type ProfileResponse struct {
	UserID       string  `json:"user"`
	Name         string  `json:"name,omitempty"`
	Email        string  `json:"email,omitempty"`
	JoiningDate  *string `json:"joiningDate"`
	DOB          *string `json:"dob"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	Pincode      string  `json:"pincode"`
	ProfileImage string  `json:"profileImage"`
	Designation  string  `json:"designation"`
	PANNumber    string  `json:"panNumber"`
	BankAccount  string  `json:"bankAccountNumber"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func NewProfileResponse(p Profile) ProfileResponse {
	joined := p.JoiningDate.Format(time.DateOnly)
	resp := ProfileResponse{
		UserID:       p.UserID,
		Name:         p.UserName,
		Email:        p.UserEmail,
		JoiningDate:  &joined,
		Address:      deref(p.Address),
		City:         deref(p.City),
		State:        deref(p.State),
		Pincode:      deref(p.Pincode),
		ProfileImage: deref(p.ProfileImage),
		Designation:  deref(p.Designation),
		PANNumber:    deref(p.PANNumber),
		BankAccount:  deref(p.BankAccountNumber),
	}
	if p.DOB != nil {
		dob := p.DOB.Format(time.DateOnly)
		resp.DOB = &dob
	}
	return resp
}

// EmptyProfileResponse is served when a user has never saved a profile.
func EmptyProfileResponse(userID string) ProfileResponse {
	return ProfileResponse{UserID: userID}
}
