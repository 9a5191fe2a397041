package testimonial

import (
	"strconv"
	"strings"
	"time"

	"github.com/techdigi/hr-backoffice/internal/pkg/storage"
	"github.com/techdigi/hr-backoffice/internal/pkg/validator"
)

// CreateRequest arrives as multipart form values.
type CreateRequest struct {
	Name        string
	Review      string
	Rating      string
	IsPublished string
	Avatar      *storage.Upload
}

func (r *CreateRequest) Validate() (Testimonial, error) {
	var errs validator.ValidationErrors

	name := strings.TrimSpace(r.Name)
	review := strings.TrimSpace(r.Review)
	if name == "" {
		errs.Add("name", "Name is required.")
	}
	if review == "" {
		errs.Add("review", "Review text is required.")
	}
	rating, ok := parseRating(r.Rating)
	if !ok {
		errs.Add("rating", "rating must be a whole number between 1 and 5")
	}
	published, pok := parseBool(r.IsPublished, true)
	if !pok {
		errs.Add("isPublished", "isPublished must be true or false")
	}
	if r.Avatar == nil {
		errs.Add("avatar", ErrAvatarRequired.Error())
	}
	if err := errs.Err(); err != nil {
		return Testimonial{}, err
	}

	return Testimonial{Name: name, Review: review, Rating: rating, IsPublished: published}, nil
}

// UpdateRequest is a partial update. Empty strings mean "not sent".
type UpdateRequest struct {
	ID          string
	Name        string
	Review      string
	Rating      string
	IsPublished string
	Avatar      *storage.Upload
}

// Apply merges the sent fields into t. The avatar is handled by the caller.
func (r *UpdateRequest) Apply(t Testimonial) (Testimonial, error) {
	var errs validator.ValidationErrors

	if v := strings.TrimSpace(r.Name); v != "" {
		t.Name = v
	}
	if v := strings.TrimSpace(r.Review); v != "" {
		t.Review = v
	}
	if r.Rating != "" {
		rating, ok := parseRating(r.Rating)
		if !ok {
			errs.Add("rating", "rating must be a whole number between 1 and 5")
		}
		t.Rating = rating
	}
	if r.IsPublished != "" {
		published, ok := parseBool(r.IsPublished, t.IsPublished)
		if !ok {
			errs.Add("isPublished", "isPublished must be true or false")
		}
		t.IsPublished = published
	}

	return t, errs.Err()
}

func parseRating(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 5 {
		return 0, false
	}
	return n, true
}

func parseBool(s string, fallback bool) (bool, bool) {
	if strings.TrimSpace(s) == "" {
		return fallback, true
	}
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return fallback, false
	}
	return b, true
}

type TestimonialResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Review      string `json:"review"`
	Rating      int    `json:"rating"`
	Avatar      string `json:"avatar"`
	IsPublished bool   `json:"isPublished"`
	CreatedAt   string `json:"createdAt"`
}

func NewTestimonialResponse(t Testimonial) TestimonialResponse {
	return TestimonialResponse{
		ID:          t.ID,
		Name:        t.Name,
		Review:      t.Review,
		Rating:      t.Rating,
		Avatar:      t.Avatar,
		IsPublished: t.IsPublished,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}

func NewTestimonialResponses(list []Testimonial) []TestimonialResponse {
	out := make([]TestimonialResponse, 0, len(list))
	for _, t := range list {
		out = append(out, NewTestimonialResponse(t))
	}
	return out
}
