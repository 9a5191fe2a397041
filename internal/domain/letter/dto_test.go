package letter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeLettersNewestFirst(t *testing.T) {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	offers := []OfferLetter{
		{ID: "o1", LetterNumber: "OL-2024-0001", CreatedAt: base},
		{ID: "o2", LetterNumber: "OL-2024-0002", CreatedAt: base.Add(48 * time.Hour)},
	}
	experience := []ExperienceLetter{
		{ID: "e1", LetterNumber: "EL-2024-0001", CreatedAt: base.Add(24 * time.Hour)},
	}

	got := MergeLetters(offers, experience)
	require.Len(t, got, 3)
	assert.Equal(t, "o2", got[0].ID)
	assert.Equal(t, "e1", got[1].ID)
	assert.Equal(t, KindExperience, got[1].LetterType)
	assert.Equal(t, "o1", got[2].ID)
	assert.Equal(t, KindOffer, got[2].LetterType)
}

func TestCreateExperienceRequestValidate(t *testing.T) {
	req := CreateExperienceRequest{UserID: "u1", IssueDate: "2024-13-01", Position: "Engineer"}
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "issueDate")
	assert.Contains(t, err.Error(), "duration")
	assert.Contains(t, err.Error(), "timePeriod")

	ok := CreateExperienceRequest{UserID: "u1", IssueDate: "2024-12-01", Position: "Engineer", Duration: "2 years", TimePeriod: "Jan 2023 to Dec 2024"}
	assert.NoError(t, ok.Validate())
}
