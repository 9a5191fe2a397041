package technology

import (
	"strings"
	"time"

	"github.com/techdigi/hr-backoffice/internal/pkg/validator"
)

type CreateRequest struct {
	Name       string   `json:"name"`
	IconString string   `json:"iconString"`
	ColorClass string   `json:"colorClass"`
	Category   Category `json:"category"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		errs.Add("name", "Technology name is required.")
	}
	if validator.IsEmpty(r.IconString) {
		errs.Add("iconString", `Icon string (e.g., "FaReact") is required.`)
	}
	if r.Category != "" && !r.Category.Valid() {
		errs.Add("category", "category must be firstRow or secondRow")
	}

	return errs.Err()
}

func (r *CreateRequest) ToTechnology() Technology {
	t := Technology{
		Name:       r.Name,
		IconString: r.IconString,
		ColorClass: r.ColorClass,
		Category:   r.Category,
	}
	if t.ColorClass == "" {
		t.ColorClass = DefaultColorClass
	}
	if t.Category == "" {
		t.Category = CategoryFirstRow
	}
	return t
}

// UpdateRequest is a partial update. Nil fields are left untouched and an
// unknown category is ignored.
type UpdateRequest struct {
	ID         string    `json:"-"`
	Name       *string   `json:"name,omitempty"`
	IconString *string   `json:"iconString,omitempty"`
	ColorClass *string   `json:"colorClass,omitempty"`
	Category   *Category `json:"category,omitempty"`
}

func (r *UpdateRequest) Apply(t Technology) Technology {
	if r.Name != nil && strings.TrimSpace(*r.Name) != "" {
		t.Name = strings.TrimSpace(*r.Name)
	}
	if r.IconString != nil && *r.IconString != "" {
		t.IconString = *r.IconString
	}
	if r.ColorClass != nil && *r.ColorClass != "" {
		t.ColorClass = *r.ColorClass
	}
	if r.Category != nil && r.Category.Valid() {
		t.Category = *r.Category
	}
	return t
}

type TechnologyResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	IconString string   `json:"iconString"`
	ColorClass string   `json:"colorClass"`
	Category   Category `json:"category"`
	CreatedAt  string   `json:"createdAt"`
}

func NewTechnologyResponse(t Technology) TechnologyResponse {
	return TechnologyResponse{
		ID:         t.ID,
		Name:       t.Name,
		IconString: t.IconString,
		ColorClass: t.ColorClass,
		Category:   t.Category,
		CreatedAt:  t.CreatedAt.Format(time.RFC3339),
	}
}

func NewTechnologyResponses(list []Technology) []TechnologyResponse {
	out := make([]TechnologyResponse, 0, len(list))
	for _, t := range list {
		out = append(out, NewTechnologyResponse(t))
	}
	return out
}

// DeleteResponse echoes the removed id.
type DeleteResponse struct {
	ID string `json:"id"`
}
