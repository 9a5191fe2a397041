package letter

import "context"

type LetterRepository interface {
	CreateOffer(ctx context.Context, l OfferLetter) (OfferLetter, error)
	CreateExperience(ctx context.Context, l ExperienceLetter) (ExperienceLetter, error)
	ListOffersByUser(ctx context.Context, userID string) ([]OfferLetter, error)
	ListExperienceByUser(ctx context.Context, userID string) ([]ExperienceLetter, error)
}
