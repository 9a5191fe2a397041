package offering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanSlug(t *testing.T) {
	assert.Equal(t, "web-development", (&FormRequest{Title: "Web Development!"}).CleanSlug())
	assert.Equal(t, "custom-slug", (&FormRequest{Title: "Ignored", Slug: " Custom Slug "}).CleanSlug())
}

func TestDecodeLists(t *testing.T) {
	req := FormRequest{
		StrategySteps:   `[{"title":"Discover","side":"left"},{"title":"Build","side":"right"}]`,
		ServicesOffered: `[{"title":"APIs","description":"REST and gRPC"}]`,
		Technologies:    `["t1","t2"]`,
	}
	lists, err := req.DecodeLists()
	require.NoError(t, err)
	assert.Len(t, lists.StrategySteps, 2)
	assert.Equal(t, SideRight, lists.StrategySteps[1].Side)
	assert.Len(t, lists.ServicesOffered, 1)
	assert.Equal(t, []string{"t1", "t2"}, lists.TechnologyIDs)

	lists, err = (&FormRequest{}).DecodeLists()
	require.NoError(t, err)
	assert.Nil(t, lists.StrategySteps)

	_, err = (&FormRequest{Technologies: `not-json`}).DecodeLists()
	assert.Error(t, err)

	_, err = (&FormRequest{StrategySteps: `[{"title":"x","side":"up"}]`}).DecodeLists()
	assert.Error(t, err)
}

func TestImages(t *testing.T) {
	card := "services/card.png"
	item := "services/item.png"
	o := Offering{CardImage: &card, ServicesOffered: []OfferedItem{{Title: "a", Image: &item}, {Title: "b"}}}
	assert.Equal(t, []string{card, item}, o.Images())
}

func TestSlugConflictErrorIs(t *testing.T) {
	err := &SlugConflictError{Slug: "web"}
	assert.ErrorIs(t, err, ErrSlugExists)
	assert.Equal(t, "A service with the slug 'web' already exists.", err.Error())
}
