package offering

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"github.com/techdigi/hr-backoffice/internal/domain/technology"
	"github.com/techdigi/hr-backoffice/internal/pkg/storage"
	"github.com/techdigi/hr-backoffice/internal/pkg/validator"
)

// FormRequest is the multipart create/update payload. The list fields carry
// JSON documents; an empty string means "not sent".
type FormRequest struct {
	ID              string
	Title           string
	Description     string
	Slug            string
	HeroTitle       string
	HeroDescription string
	StrategySteps   string
	ServicesOffered string
	Technologies    string

	CardImage    *storage.Upload
	HeroImage    *storage.Upload
	OfferedImage []*storage.Upload
}

// Lists are the decoded JSON fields. A nil slice was not sent.
type Lists struct {
	StrategySteps   []StrategyStep
	ServicesOffered []OfferedItem
	TechnologyIDs   []string
}

func (r *FormRequest) DecodeLists() (Lists, error) {
	var l Lists
	decode := func(raw string, dst any) error {
		if strings.TrimSpace(raw) == "" {
			return nil
		}
		if err := json.Unmarshal([]byte(raw), dst); err != nil {
			return validator.ValidationErrors{{Field: "body", Message: ErrInvalidJSONField.Error()}}
		}
		return nil
	}
	if err := decode(r.StrategySteps, &l.StrategySteps); err != nil {
		return Lists{}, err
	}
	if err := decode(r.ServicesOffered, &l.ServicesOffered); err != nil {
		return Lists{}, err
	}
	if err := decode(r.Technologies, &l.TechnologyIDs); err != nil {
		return Lists{}, err
	}

	var errs validator.ValidationErrors
	for _, step := range l.StrategySteps {
		if step.Side != "" && step.Side != SideLeft && step.Side != SideRight {
			errs.Add("strategySteps", "side must be left or right")
			break
		}
	}
	return l, errs.Err()
}

// ValidateCreate requires a title.
func (r *FormRequest) ValidateCreate() error {
	if validator.IsEmpty(r.Title) {
		return validator.ValidationErrors{{Field: "title", Message: "Service title is a required field."}}
	}
	return nil
}

// CleanSlug slugifies the explicit slug, falling back to the title.
func (r *FormRequest) CleanSlug() string {
	source := strings.TrimSpace(r.Slug)
	if source == "" {
		source = r.Title
	}
	return Slugify(source)
}

// Slugify lowercases and strips everything but letters, digits and dashes.
func Slugify(s string) string {
	return slug.Make(s)
}

// Optional trims s and returns nil when nothing is left.
func Optional(s string) *string {
	v := strings.TrimSpace(s)
	if v == "" {
		return nil
	}
	return &v
}

type OfferingResponse struct {
	ID              string                          `json:"id"`
	Title           string                          `json:"title"`
	Description     *string                         `json:"description"`
	Slug            string                          `json:"slug"`
	CardImage       *string                         `json:"cardImage"`
	HeroTitle       *string                         `json:"heroTitle"`
	HeroDescription *string                         `json:"heroDescription"`
	HeroImage       *string                         `json:"heroImage"`
	StrategySteps   []StrategyStep                  `json:"strategySteps"`
	ServicesOffered []OfferedItem                   `json:"servicesOffered"`
	Technologies    []technology.TechnologyResponse `json:"technologies"`
	CreatedAt       string                          `json:"createdAt"`
	UpdatedAt       string                          `json:"updatedAt"`
}

func NewOfferingResponse(o Offering) OfferingResponse {
	resp := OfferingResponse{
		ID:              o.ID,
		Title:           o.Title,
		Description:     o.Description,
		Slug:            o.Slug,
		CardImage:       o.CardImage,
		HeroTitle:       o.HeroTitle,
		HeroDescription: o.HeroDescription,
		HeroImage:       o.HeroImage,
		StrategySteps:   o.StrategySteps,
		ServicesOffered: o.ServicesOffered,
		Technologies:    technology.NewTechnologyResponses(o.Technologies),
		CreatedAt:       o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       o.UpdatedAt.Format(time.RFC3339),
	}
	if resp.StrategySteps == nil {
		resp.StrategySteps = []StrategyStep{}
	}
	if resp.ServicesOffered == nil {
		resp.ServicesOffered = []OfferedItem{}
	}
	return resp
}

func NewOfferingResponses(list []Offering) []OfferingResponse {
	out := make([]OfferingResponse, 0, len(list))
	for _, o := range list {
		out = append(out, NewOfferingResponse(o))
	}
	return out
}
