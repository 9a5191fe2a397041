package job

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/techdigi/hr-backoffice/internal/pkg/validator"
)

// Lines accepts either a JSON array of strings or one newline separated string.
// Blank entries are dropped.
type Lines []string

func (l *Lines) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*l = Lines{}
		return nil
	}

	var items []string
	if data[0] == '[' {
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
	} else {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		items = strings.Split(text, "\n")
	}

	out := make(Lines, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	*l = out
	return nil
}

var typeOptions = "Full-time, Part-time, Contract, Internship"

type CreateJobRequest struct {
	Title            string `json:"title" validate:"required"`
	Department       string `json:"department" validate:"required"`
	Location         string `json:"location" validate:"required"`
	Type             Type   `json:"type" validate:"required"`
	SalaryMin        int64  `json:"salaryMin" validate:"gte=0"`
	SalaryMax        int64  `json:"salaryMax" validate:"gte=0"`
	Experience       string `json:"experience" validate:"required"`
	Description      string `json:"description" validate:"required"`
	Requirements     Lines  `json:"requirements"`
	Responsibilities Lines  `json:"responsibilities"`
	Benefits         Lines  `json:"benefits"`
	IsActive         *bool  `json:"isActive,omitempty"`
}

func (r *CreateJobRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}
	var errs validator.ValidationErrors
	if !r.Type.Valid() {
		errs.Add("type", "type must be one of: "+typeOptions)
	}
	if r.SalaryMax < r.SalaryMin {
		errs.Add("salaryMax", "salaryMax cannot be less than salaryMin")
	}
	return errs.Err()
}

func (r *CreateJobRequest) ToJob() Job {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return Job{
		Title:            strings.TrimSpace(r.Title),
		Department:       strings.TrimSpace(r.Department),
		Location:         strings.TrimSpace(r.Location),
		Type:             r.Type,
		SalaryMin:        r.SalaryMin,
		SalaryMax:        r.SalaryMax,
		Experience:       strings.TrimSpace(r.Experience),
		Description:      strings.TrimSpace(r.Description),
		Requirements:     nonNil(r.Requirements),
		Responsibilities: nonNil(r.Responsibilities),
		Benefits:         nonNil(r.Benefits),
		IsActive:         active,
	}
}

// UpdateJobRequest is a partial update. Nil fields keep their stored value.
type UpdateJobRequest struct {
	ID               string  `json:"-"`
	Title            *string `json:"title,omitempty"`
	Department       *string `json:"department,omitempty"`
	Location         *string `json:"location,omitempty"`
	Type             *Type   `json:"type,omitempty"`
	SalaryMin        *int64  `json:"salaryMin,omitempty"`
	SalaryMax        *int64  `json:"salaryMax,omitempty"`
	Experience       *string `json:"experience,omitempty"`
	Description      *string `json:"description,omitempty"`
	Requirements     *Lines  `json:"requirements,omitempty"`
	Responsibilities *Lines  `json:"responsibilities,omitempty"`
	Benefits         *Lines  `json:"benefits,omitempty"`
	IsActive         *bool   `json:"isActive,omitempty"`
}

func (r *UpdateJobRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Type != nil && !r.Type.Valid() {
		errs.Add("type", "type must be one of: "+typeOptions)
	}
	for field, v := range map[string]*string{"title": r.Title, "department": r.Department, "location": r.Location, "experience": r.Experience, "description": r.Description} {
		if v != nil && validator.IsEmpty(*v) {
			errs.Add(field, field+" cannot be empty")
		}
	}
	if (r.SalaryMin != nil && *r.SalaryMin < 0) || (r.SalaryMax != nil && *r.SalaryMax < 0) {
		errs.Add("salary", "salary cannot be negative")
	}
	return errs.Err()
}

// Apply merges the patch into j and re-checks the salary range.
func (r *UpdateJobRequest) Apply(j Job) (Job, error) {
	setString(&j.Title, r.Title)
	setString(&j.Department, r.Department)
	setString(&j.Location, r.Location)
	setString(&j.Experience, r.Experience)
	setString(&j.Description, r.Description)
	if r.Type != nil {
		j.Type = *r.Type
	}
	if r.SalaryMin != nil {
		j.SalaryMin = *r.SalaryMin
	}
	if r.SalaryMax != nil {
		j.SalaryMax = *r.SalaryMax
	}
	if r.Requirements != nil {
		j.Requirements = nonNil(*r.Requirements)
	}
	if r.Responsibilities != nil {
		j.Responsibilities = nonNil(*r.Responsibilities)
	}
	if r.Benefits != nil {
		j.Benefits = nonNil(*r.Benefits)
	}
	if r.IsActive != nil {
		j.IsActive = *r.IsActive
	}
	if j.SalaryMax < j.SalaryMin {
		return j, validator.ValidationErrors{{Field: "salaryMax", Message: "salaryMax cannot be less than salaryMin"}}
	}
	return j, nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func nonNil(l Lines) []string {
	if l == nil {
		return []string{}
	}
	return l
}

type JobResponse struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Department       string   `json:"department"`
	Location         string   `json:"location"`
	Type             Type     `json:"type"`
	SalaryMin        int64    `json:"salaryMin"`
	SalaryMax        int64    `json:"salaryMax"`
	SalaryLPA        string   `json:"salaryLPA"`
	Experience       string   `json:"experience"`
	Description      string   `json:"description"`
	Requirements     []string `json:"requirements"`
	Responsibilities []string `json:"responsibilities"`
	Benefits         []string `json:"benefits"`
	IsActive         bool     `json:"isActive"`
	CreatedAt        string   `json:"createdAt"`
	UpdatedAt        string   `json:"updatedAt"`
}

func NewJobResponse(j Job) JobResponse {
	return JobResponse{
		ID:               j.ID,
		Title:            j.Title,
		Department:       j.Department,
		Location:         j.Location,
		Type:             j.Type,
		SalaryMin:        j.SalaryMin,
		SalaryMax:        j.SalaryMax,
		SalaryLPA:        j.SalaryLPA(),
		Experience:       j.Experience,
		Description:      j.Description,
		Requirements:     j.Requirements,
		Responsibilities: j.Responsibilities,
		Benefits:         j.Benefits,
		IsActive:         j.IsActive,
		CreatedAt:        j.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        j.UpdatedAt.Format(time.RFC3339),
	}
}

func NewJobResponses(jobs []Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobResponse(j))
	}
	return out
}
