package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techdigi/hr-backoffice/internal/domain/application"
	"github.com/techdigi/hr-backoffice/internal/pkg/email"
	"github.com/techdigi/hr-backoffice/internal/service/file/filetest"
)

type memoryApplications struct {
	seq       int
	byID      map[string]application.Application
	createErr error
}

func (m *memoryApplications) Create(ctx context.Context, a application.Application) (application.Application, error) {
	if m.createErr != nil {
		return application.Application{}, m.createErr
	}
	m.seq++
	a.ID = fmt.Sprintf("a%d", m.seq)
	m.byID[a.ID] = a
	return a, nil
}

func (m *memoryApplications) GetByID(ctx context.Context, id string) (application.Application, error) {
	a, ok := m.byID[id]
	if !ok {
		return application.Application{}, application.ErrApplicationNotFound
	}
	return a, nil
}

func (m *memoryApplications) List(ctx context.Context) ([]application.Application, error) {
	var out []application.Application
	for _, a := range m.byID {
		out = append(out, a)
	}
	return out, nil
}

func (m *memoryApplications) UpdateStatus(ctx context.Context, id string, status application.Status) (application.Application, error) {
	a, ok := m.byID[id]
	if !ok {
		return application.Application{}, application.ErrApplicationNotFound
	}
	a.Status = status
	m.byID[id] = a
	return a, nil
}

func (m *memoryApplications) Delete(ctx context.Context, id string) (application.Application, error) {
	a, ok := m.byID[id]
	if !ok {
		return application.Application{}, application.ErrApplicationNotFound
	}
	delete(m.byID, id)
	return a, nil
}

type recordingMail struct {
	email.EmailService
	sent []string
	err  error
}

func (r *recordingMail) SendApplicationConfirmation(ctx context.Context, to, name, jobTitle string) error {
	r.sent = append(r.sent, "confirmation:"+to)
	return r.err
}

func (r *recordingMail) SendApplicationAdminNotice(ctx context.Context, n email.ApplicationNotice) error {
	r.sent = append(r.sent, "admin:"+n.ResumeURL)
	return r.err
}

func (r *recordingMail) SendApplicationStatus(ctx context.Context, to, name, jobTitle, status string) error {
	r.sent = append(r.sent, "status:"+status)
	return r.err
}

func newTestService() (*ApplicationServiceImpl, *memoryApplications, *filetest.Fake, *recordingMail) {
	repo := &memoryApplications{byID: map[string]application.Application{}}
	files := filetest.New()
	mail := &recordingMail{}
	svc := NewApplicationService(repo, files, mail).(*ApplicationServiceImpl)
	svc.background = func(fn func()) { fn() }
	return svc, repo, files, mail
}

func submitRequest() application.SubmitRequest {
	return application.SubmitRequest{
		Name: " Asha Rao ", Email: "asha@example.com", Phone: "9876543210", Position: "Backend Engineer",
		Experience: "3 years", CoverLetter: "Hello", Resume: filetest.Upload("cv.pdf", "%PDF"),
	}
}

func TestSubmit(t *testing.T) {
	svc, _, files, mail := newTestService()

	resp, err := svc.Submit(context.Background(), submitRequest())
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", resp.Name)
	assert.Equal(t, application.StatusPending, resp.Status)
	assert.Contains(t, files.Files, resp.Resume)
	assert.Equal(t, []string{"confirmation:asha@example.com", "admin:" + resp.Resume}, mail.sent)
}

func TestSubmit_ResumeRequired(t *testing.T) {
	svc, repo, _, mail := newTestService()

	req := submitRequest()
	req.Resume = nil
	_, err := svc.Submit(context.Background(), req)
	assert.Error(t, err)
	assert.Empty(t, repo.byID)
	assert.Empty(t, mail.sent)
}

func TestSubmit_EmailFailureDoesNotFailRequest(t *testing.T) {
	svc, _, _, mail := newTestService()
	mail.err = errors.New("smtp down")

	_, err := svc.Submit(context.Background(), submitRequest())
	assert.NoError(t, err)
}

func TestSubmit_SaveFailureRemovesResume(t *testing.T) {
	svc, repo, files, _ := newTestService()
	repo.createErr = errors.New("db down")

	_, err := svc.Submit(context.Background(), submitRequest())
	assert.Error(t, err)
	assert.Empty(t, files.Files)
}

func TestUpdateStatus_NotifiesOnlyFinalDecisions(t *testing.T) {
	svc, _, _, mail := newTestService()
	ctx := context.Background()
	created, err := svc.Submit(ctx, submitRequest())
	require.NoError(t, err)
	mail.sent = nil

	_, err = svc.UpdateStatus(ctx, application.UpdateStatusRequest{ID: created.ID, Status: application.StatusReviewed})
	require.NoError(t, err)
	assert.Empty(t, mail.sent)

	_, err = svc.UpdateStatus(ctx, application.UpdateStatusRequest{ID: created.ID, Status: application.StatusShortlisted})
	require.NoError(t, err)
	assert.Equal(t, []string{"status:Shortlisted"}, mail.sent)

	_, err = svc.UpdateStatus(ctx, application.UpdateStatusRequest{ID: created.ID, Status: "Hired"})
	assert.Error(t, err)
}

func TestDelete_RemovesResume(t *testing.T) {
	svc, _, files, _ := newTestService()
	ctx := context.Background()
	created, err := svc.Submit(ctx, submitRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Equal(t, []string{created.Resume}, files.Deleted)
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), application.ErrApplicationNotFound)
}
