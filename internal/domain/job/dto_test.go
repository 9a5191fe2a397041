package job

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinesUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Lines
	}{
		{"array", `[" Go ", "", "SQL"]`, Lines{"Go", "SQL"}},
		{"newline string", `"Go\n\n  SQL  \n"`, Lines{"Go", "SQL"}},
		{"null", `null`, Lines{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var got Lines
			require.NoError(t, json.Unmarshal([]byte(c.in), &got))
			assert.Equal(t, c.want, got)
		})
	}
}

func TestSalaryLPA(t *testing.T) {
	j := Job{SalaryMin: 450000, SalaryMax: 600000}
	assert.Equal(t, "4.5 - 6.0 LPA", j.SalaryLPA())
}

func TestCreateJobRequestValidate(t *testing.T) {
	req := CreateJobRequest{
		Title: "Backend Engineer", Department: "Engineering", Location: "Remote",
		Type: "Freelance", Experience: "2+ years", Description: "Build APIs",
		SalaryMin: 500000, SalaryMax: 400000,
	}
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type")
	assert.Contains(t, err.Error(), "salaryMax")

	req.Type = TypeFullTime
	req.SalaryMax = 900000
	require.NoError(t, req.Validate())
	assert.True(t, req.ToJob().IsActive)
	assert.Equal(t, []string{}, req.ToJob().Benefits)
}

func TestUpdateJobRequestApply(t *testing.T) {
	title := "Senior Engineer"
	inactive := false
	lines := Lines{"Mentoring"}
	patch := UpdateJobRequest{Title: &title, IsActive: &inactive, Responsibilities: &lines}

	got, err := patch.Apply(Job{Title: "Engineer", Department: "Eng", IsActive: true, SalaryMin: 1, SalaryMax: 2})
	require.NoError(t, err)
	assert.Equal(t, "Senior Engineer", got.Title)
	assert.Equal(t, "Eng", got.Department)
	assert.False(t, got.IsActive)
	assert.Equal(t, []string{"Mentoring"}, got.Responsibilities)

	low := int64(0)
	high := int64(5)
	patch = UpdateJobRequest{SalaryMin: &high, SalaryMax: &low}
	_, err = patch.Apply(Job{})
	assert.Error(t, err)
}
