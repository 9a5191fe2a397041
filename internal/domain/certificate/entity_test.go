package certificate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeedsNumber(t *testing.T) {
	num := "TDS008-2024-001"
	assert.True(t, (&Certificate{Status: StatusPending}).NeedsNumber(StatusApproved))
	assert.True(t, (&Certificate{Status: StatusRejected}).NeedsNumber(StatusApproved))
	assert.False(t, (&Certificate{Status: StatusApproved, CertificateNumber: &num}).NeedsNumber(StatusApproved))
	assert.False(t, (&Certificate{Status: StatusPending}).NeedsNumber(StatusRejected))
}

func TestReviewRequestValidate(t *testing.T) {
	pending := "Pending"
	approved := "Approved"
	assert.Error(t, (&ReviewRequest{Status: &pending}).Validate())
	assert.NoError(t, (&ReviewRequest{Status: &approved}).Validate())
	assert.NoError(t, (&ReviewRequest{}).Validate())
}

func TestSubmitRequestValidate(t *testing.T) {
	req := SubmitRequest{
		CertificateType: "Internship", NameOnCertificate: "Asha Rao", CourseName: "Go",
		StartDate: "2024-06-01", CompletionDate: "2024-05-01", Duration: "3 months",
	}
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "completionDate")

	req.CompletionDate = "2024-09-01"
	require.NoError(t, req.Validate())
	c := req.ToCertificate()
	assert.Equal(t, StatusPending, c.Status)
	assert.Equal(t, 9, int(c.CompletionDate.Month()))
}
