package letter

import "context"

type LetterService interface {
	CreateOffer(ctx context.Context, req CreateOfferRequest) (LetterResponse, error)
	CreateExperience(ctx context.Context, req CreateExperienceRequest) (LetterResponse, error)
	MyLetters(ctx context.Context, userID string) ([]LetterResponse, error)
}
