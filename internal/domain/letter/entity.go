package letter

import "time"

type Kind string

const (
	KindOffer      Kind = "Offer"
	KindExperience Kind = "Experience"
)

// Numbering prefixes. Sequences restart every year.
const (
	OfferPrefix      = "OL"
	ExperiencePrefix = "EL"
	NumberWidth      = 4
)

type OfferLetter struct {
	ID            string
	UserID        string
	RecipientName string
	Position      string
	JoiningDate   time.Time
	LetterNumber  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ExperienceLetter struct {
	ID            string
	UserID        string
	RecipientName string
	IssueDate     time.Time
	Position      string
	Duration      string
	TimePeriod    string
	LetterNumber  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
