package letter

import (
	"sort"
	"time"

	"github.com/techdigi/hr-backoffice/internal/pkg/validator"
)

type CreateOfferRequest struct {
	UserID        string `json:"userId" validate:"required"`
	RecipientName string `json:"recipientName"`
	Position      string `json:"position" validate:"required"`
	JoiningDate   string `json:"joiningDate" validate:"required,datetime=2006-01-02"`
}

func (r *CreateOfferRequest) Validate() error {
	return validator.Struct(r)
}

type CreateExperienceRequest struct {
	UserID     string `json:"userId" validate:"required"`
	IssueDate  string `json:"issueDate" validate:"required,datetime=2006-01-02"`
	Position   string `json:"position" validate:"required"`
	Duration   string `json:"duration" validate:"required"`
	TimePeriod string `json:"timePeriod" validate:"required"`
}

func (r *CreateExperienceRequest) Validate() error {
	return validator.Struct(r)
}

// LetterResponse is the merged listing shape. Fields not used by a kind are omitted.
type LetterResponse struct {
	ID            string `json:"id"`
	UserID        string `json:"user"`
	LetterType    Kind   `json:"letterType"`
	LetterNumber  string `json:"letterNumber"`
	RecipientName string `json:"recipientName"`
	Position      string `json:"position"`
	JoiningDate   string `json:"joiningDate,omitempty"`
	IssueDate     string `json:"issueDate,omitempty"`
	Duration      string `json:"duration,omitempty"`
	TimePeriod    string `json:"timePeriod,omitempty"`
	CreatedAt     string `json:"createdAt"`

	createdAt time.Time
}

func NewOfferResponse(l OfferLetter) LetterResponse {
	return LetterResponse{
		ID:            l.ID,
		UserID:        l.UserID,
		LetterType:    KindOffer,
		LetterNumber:  l.LetterNumber,
		RecipientName: l.RecipientName,
		Position:      l.Position,
		JoiningDate:   l.JoiningDate.Format(time.DateOnly),
		CreatedAt:     l.CreatedAt.Format(time.RFC3339),
		createdAt:     l.CreatedAt,
	}
}

func NewExperienceResponse(l ExperienceLetter) LetterResponse {
	return LetterResponse{
		ID:            l.ID,
		UserID:        l.UserID,
		LetterType:    KindExperience,
		LetterNumber:  l.LetterNumber,
		RecipientName: l.RecipientName,
		Position:      l.Position,
		IssueDate:     l.IssueDate.Format(time.DateOnly),
		Duration:      l.Duration,
		TimePeriod:    l.TimePeriod,
		CreatedAt:     l.CreatedAt.Format(time.RFC3339),
		createdAt:     l.CreatedAt,
	}
}

// MergeLetters combines both kinds, newest first.
func MergeLetters(offers []OfferLetter, experience []ExperienceLetter) []LetterResponse {
	out := make([]LetterResponse, 0, len(offers)+len(experience))
	for _, l := range offers {
		out = append(out, NewOfferResponse(l))
	}
	for _, l := range experience {
		out = append(out, NewExperienceResponse(l))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].createdAt.After(out[j].createdAt)
	})
	return out
}
