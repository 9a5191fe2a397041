package testimonial

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techdigi/hr-backoffice/internal/pkg/storage"
)

func TestCreateRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateRequest
		wantErr string
	}{
		{"missing avatar", CreateRequest{Name: "Asha", Review: "Great", Rating: "5"}, "avatar"},
		{"rating out of range", CreateRequest{Name: "Asha", Review: "Great", Rating: "6", Avatar: &storage.Upload{}}, "rating"},
		{"rating not a number", CreateRequest{Name: "Asha", Review: "Great", Rating: "five", Avatar: &storage.Upload{}}, "rating"},
		{"blank name", CreateRequest{Name: "  ", Review: "Great", Rating: "4", Avatar: &storage.Upload{}}, "name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	got, err := (&CreateRequest{Name: " Asha ", Review: "Great", Rating: "4", Avatar: &storage.Upload{File: strings.NewReader("x")}}).Validate()
	require.NoError(t, err)
	assert.Equal(t, "Asha", got.Name)
	assert.Equal(t, 4, got.Rating)
	assert.True(t, got.IsPublished)
}

func TestUpdateRequestApply(t *testing.T) {
	current := Testimonial{Name: "Asha", Review: "Great", Rating: 5, IsPublished: true}

	got, err := (&UpdateRequest{Rating: "3", IsPublished: "false"}).Apply(current)
	require.NoError(t, err)
	assert.Equal(t, "Asha", got.Name)
	assert.Equal(t, 3, got.Rating)
	assert.False(t, got.IsPublished)

	_, err = (&UpdateRequest{Rating: "0"}).Apply(current)
	assert.Error(t, err)
}
