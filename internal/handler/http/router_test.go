package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techdigi/hr-backoffice/internal/domain/application"
	"github.com/techdigi/hr-backoffice/internal/domain/attendance"
	"github.com/techdigi/hr-backoffice/internal/domain/auth"
	"github.com/techdigi/hr-backoffice/internal/domain/certificate"
	"github.com/techdigi/hr-backoffice/internal/domain/inquiry"
	"github.com/techdigi/hr-backoffice/internal/domain/job"
	"github.com/techdigi/hr-backoffice/internal/domain/letter"
	"github.com/techdigi/hr-backoffice/internal/domain/offering"
	"github.com/techdigi/hr-backoffice/internal/domain/profile"
	"github.com/techdigi/hr-backoffice/internal/domain/salary"
	"github.com/techdigi/hr-backoffice/internal/domain/technology"
	"github.com/techdigi/hr-backoffice/internal/domain/testimonial"
	"github.com/techdigi/hr-backoffice/internal/domain/user"
	"github.com/techdigi/hr-backoffice/internal/pkg/jwt"
)

const testSecret = "test-secret-key-for-jwt"

type memoryUsers struct {
	user.UserRepository
	byID map[string]user.User
}

func (m *memoryUsers) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

type fakeAttendance struct {
	attendance.AttendanceService
	clockIns  []attendance.ClockInRequest
	today     *attendance.AttendanceResponse
	export    attendance.ExportFile
	periods   []attendance.Period
	corrected []string
}

func (f *fakeAttendance) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	f.clockIns = append(f.clockIns, req)
	if len(f.clockIns) > 1 {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}
	return attendance.AttendanceResponse{ID: "a1", UserID: req.UserID, WorkPlan: req.WorkPlan, Status: attendance.StatusPresent}, nil
}

func (f *fakeAttendance) GetToday(ctx context.Context, userID string) (*attendance.AttendanceResponse, error) {
	return f.today, nil
}

func (f *fakeAttendance) AdminCorrect(ctx context.Context, id string, patch attendance.CorrectionPatch) (attendance.AttendanceResponse, error) {
	f.corrected = append(f.corrected, id)
	return attendance.AttendanceResponse{ID: id, Status: attendance.StatusPresent}, nil
}

func (f *fakeAttendance) ExportAll(ctx context.Context, period attendance.Period) (attendance.ExportFile, error) {
	f.periods = append(f.periods, period)
	return f.export, nil
}

type fakeTestimonials struct {
	testimonial.TestimonialService
	created []testimonial.CreateRequest
	avatars []string
}

func (f *fakeTestimonials) Create(ctx context.Context, req testimonial.CreateRequest) (testimonial.TestimonialResponse, error) {
	f.created = append(f.created, req)
	if req.Avatar == nil {
		return testimonial.TestimonialResponse{}, testimonial.ErrAvatarRequired
	}
	data, _ := io.ReadAll(req.Avatar.File)
	f.avatars = append(f.avatars, req.Avatar.Filename+":"+string(data))
	return testimonial.TestimonialResponse{ID: "t1", Name: req.Name}, nil
}

type fakeOfferings struct {
	offering.OfferingService
}

func (f *fakeOfferings) GetBySlug(ctx context.Context, slug string) (offering.OfferingResponse, error) {
	return offering.OfferingResponse{}, offering.ErrOfferingNotFound
}

func (f *fakeOfferings) Create(ctx context.Context, req offering.FormRequest) (offering.OfferingResponse, error) {
	return offering.OfferingResponse{}, &offering.SlugConflictError{Slug: offering.Slugify(req.Title)}
}

type testServer struct {
	handler      http.Handler
	jwt          jwt.Service
	users        *memoryUsers
	attendance   *fakeAttendance
	testimonials *fakeTestimonials
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	users := &memoryUsers{byID: map[string]user.User{
		"emp-1":   {ID: "emp-1", Name: "Asha Rao", Role: user.RoleUser},
		"admin-1": {ID: "admin-1", Name: "Ops", Role: user.RoleAdmin},
	}}
	jwtService := jwt.NewJWTService(testSecret, time.Hour, "token", false)
	att := &fakeAttendance{}
	tm := &fakeTestimonials{}

	type authService struct{ auth.AuthService }
	type adminService struct{ user.AdminService }
	type profileService struct{ profile.ProfileService }
	type salaryService struct{ salary.SalaryService }
	type certificateService struct{ certificate.CertificateService }
	type letterService struct{ letter.LetterService }
	type jobService struct{ job.JobService }
	type applicationService struct{ application.ApplicationService }
	type inquiryService struct{ inquiry.InquiryService }
	type technologyService struct{ technology.TechnologyService }

	router := NewRouter(RouterConfig{AllowedOrigins: []string{"http://localhost:3000"}}, jwtService, users, Handlers{
		Auth:        NewAuthHandler(jwtService, authService{}),
		Attendance:  NewAttendanceHandler(att),
		Employee:    NewEmployeeHandler(adminService{}),
		Profile:     NewProfileHandler(profileService{}),
		Salary:      NewSalaryHandler(salaryService{}),
		Certificate: NewCertificateHandler(certificateService{}),
		Letter:      NewLetterHandler(letterService{}),
		Job:         NewJobHandler(jobService{}),
		Application: NewApplicationHandler(applicationService{}),
		Inquiry:     NewInquiryHandler(inquiryService{}),
		Testimonial: NewTestimonialHandler(tm),
		Technology:  NewTechnologyHandler(technologyService{}),
		Offering:    NewOfferingHandler(&fakeOfferings{}),
	})

	return &testServer{handler: router, jwt: jwtService, users: users, attendance: att, testimonials: tm}
}

func (s *testServer) token(t *testing.T, userID string) string {
	t.Helper()
	u := s.users.byID[userID]
	token, _, err := s.jwt.GenerateToken(userID, u.Role)
	require.NoError(t, err)
	return token
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestAuthRequired(t *testing.T) {
	s := newTestServer(t)

	_, expired, err := s.jwt.JWTAuth().Encode(map[string]interface{}{
		"id": "emp-1", "role": "user", "exp": time.Now().Add(-2 * time.Hour).Unix(),
	})
	require.NoError(t, err)

	ghost, _, err := s.jwt.GenerateToken("deleted-user", user.RoleUser)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		status  int
		message string
	}{
		{"missing token", "", http.StatusUnauthorized, "Not authorized, no token."},
		{"garbage token", "not-a-jwt", http.StatusUnauthorized, "Not authorized, token failed."},
		{"expired token", expired, http.StatusUnauthorized, "Token has expired"},
		{"deleted user", ghost, http.StatusUnauthorized, "Not authorized, user not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/attendance/today", nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := s.do(req)
			assert.Equal(t, tt.status, rec.Code)
			env := decode(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.message, env.Error.Message)
		})
	}
}

func TestTokenFromCookie(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/attendance/today", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: s.token(t, "emp-1")})
	rec := s.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.JSONEq(t, `{"status":"NotClockedIn"}`, string(env.Data))
}

func TestAdminRoutesRejectEmployees(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/attendance/admin/export/all?year=2024&month=6", nil)
	req.Header.Set("Authorization", "Bearer "+s.token(t, "emp-1"))
	rec := s.do(req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", decode(t, rec).Error.Code)
	assert.Empty(t, s.attendance.periods)
}

func TestClockIn(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, "emp-1")

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/attendance/clock-in", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")
		return s.do(req)
	}

	rec := post(`{"workPlan":"Ship the export"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, s.attendance.clockIns, 1)
	assert.Equal(t, "emp-1", s.attendance.clockIns[0].UserID)

	rec = post(`{"workPlan":"again"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "You have already clocked in today.", decode(t, rec).Error.Message)

	rec = post(`{"workPlan":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Details, "workPlan")
	assert.Len(t, s.attendance.clockIns, 2)

	rec = post(`{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request format", decode(t, rec).Error.Message)
}

func TestExportAll(t *testing.T) {
	s := newTestServer(t)
	s.attendance.export = attendance.ExportFile{Filename: "All_Attendance_2024-6.xlsx", Content: []byte("xlsx-bytes")}
	token := s.token(t, "admin-1")

	req := httptest.NewRequest(http.MethodGet, "/api/attendance/admin/export/all?year=2024&month=6", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := s.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="All_Attendance_2024-6.xlsx"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "xlsx-bytes", rec.Body.String())
	assert.Equal(t, []attendance.Period{{Year: 2024, Month: time.June}}, s.attendance.periods)

	req = httptest.NewRequest(http.MethodGet, "/api/attendance/admin/export/all?year=2024", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = s.do(req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec).Error.Details, "month")
	assert.Len(t, s.attendance.periods, 1)
}

func TestTestimonialMultipart(t *testing.T) {
	s := newTestServer(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("name", "Priya"))
	require.NoError(t, mw.WriteField("review", "Great team"))
	require.NoError(t, mw.WriteField("rating", "5"))
	part, err := mw.CreateFormFile("avatar", "priya.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-data"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/testimonials", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.token(t, "admin-1"))
	rec := s.do(req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, s.testimonials.created, 1)
	assert.Equal(t, "Priya", s.testimonials.created[0].Name)
	assert.Equal(t, []string{"priya.png:png-data"}, s.testimonials.avatars)
}

func TestOfferingErrors(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/api/services/slug/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Service not found.", decode(t, rec).Error.Message)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("title", "Web Development"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/services", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.token(t, "admin-1"))
	rec = s.do(req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "A service with the slug 'web-development' already exists.", decode(t, rec).Error.Message)
}

func TestMalformedPathID(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, "admin-1")

	put := func(id string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPut, "/api/attendance/admin/update/"+id, strings.NewReader(`{"status":"Present"}`))
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")
		return s.do(req)
	}

	rec := put("abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Equal(t, "Invalid id format.", env.Error.Details["id"])
	assert.Empty(t, s.attendance.corrected)

	rec = put("5F0C8A52-7D0B-4B8E-9C39-2B1B7E3E6A10")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"5f0c8a52-7d0b-4b8e-9c39-2b1b7e3e6a10"}, s.attendance.corrected)

	// Public routes answer the same way without reaching the service.
	rec = s.do(httptest.NewRequest(http.MethodGet, "/api/jobs/42", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec).Error.Details, "id")
}
