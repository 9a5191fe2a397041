package response

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"unicode"

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
	"github.com/techdigi/hr-backoffice/internal/pkg/storage"
	"github.com/techdigi/hr-backoffice/internal/pkg/validator"
)

type errorStatus struct {
	err    error
	status int
}

// knownErrors is matched in order with errors.Is.
var knownErrors = []errorStatus{
	// Auth
	{auth.ErrInvalidCredentials, http.StatusUnauthorized},
	{auth.ErrInvalidToken, http.StatusUnauthorized},
	{auth.ErrTokenMissing, http.StatusUnauthorized},
	{auth.ErrTokenExpired, http.StatusUnauthorized},
	{auth.ErrInvalidResetToken, http.StatusBadRequest},
	{auth.ErrEmailSendFailed, http.StatusInternalServerError},
	{user.ErrAdminPrivilegeRequired, http.StatusForbidden},
	{user.ErrInsufficientPermissions, http.StatusForbidden},
	{user.ErrUserEmailExists, http.StatusBadRequest},
	{user.ErrUserMobileExists, http.StatusBadRequest},
	{user.ErrUserNotFound, http.StatusNotFound},

	// Attendance
	{attendance.ErrAlreadyClockedIn, http.StatusBadRequest},
	{attendance.ErrNotClockedIn, http.StatusBadRequest},
	{attendance.ErrAlreadyClockedOut, http.StatusBadRequest},
	{attendance.ErrAlreadyMarked, http.StatusBadRequest},
	{attendance.ErrDuplicateRecord, http.StatusBadRequest},
	{attendance.ErrAttendanceNotFound, http.StatusNotFound},
	{attendance.ErrNoRecordsForPeriod, http.StatusNotFound},

	// Profile
	{profile.ErrPANExists, http.StatusBadRequest},
	{profile.ErrInvalidDOB, http.StatusBadRequest},
	{profile.ErrProfileNotFound, http.StatusNotFound},

	// Salary
	{salary.ErrSlipExists, http.StatusConflict},
	{salary.ErrAlreadyPublished, http.StatusBadRequest},
	{salary.ErrInvalidPeriod, http.StatusBadRequest},
	{salary.ErrNegativeAmount, http.StatusBadRequest},
	{salary.ErrPeriodFilterPartial, http.StatusBadRequest},
	{salary.ErrSlipNotFound, http.StatusNotFound},
	{salary.ErrEmployeeNotFound, http.StatusNotFound},
	{salary.ErrProfileIncomplete, http.StatusNotFound},

	// Documents
	{certificate.ErrCertificateNotFound, http.StatusNotFound},
	{certificate.ErrVerificationFailed, http.StatusNotFound},
	{letter.ErrRecipientNotFound, http.StatusNotFound},
	{letter.ErrLetterNumberTaken, http.StatusConflict},

	// Careers and contact
	{job.ErrJobNotFound, http.StatusNotFound},
	{job.ErrJobInactive, http.StatusNotFound},
	{application.ErrApplicationNotFound, http.StatusNotFound},
	{application.ErrResumeRequired, http.StatusBadRequest},
	{inquiry.ErrInquiryNotFound, http.StatusNotFound},
	{inquiry.ErrReplyFailed, http.StatusInternalServerError},

	// Site content
	{testimonial.ErrTestimonialNotFound, http.StatusNotFound},
	{testimonial.ErrAvatarRequired, http.StatusBadRequest},
	{technology.ErrTechnologyNotFound, http.StatusNotFound},
	{technology.ErrTechnologyNameExists, http.StatusConflict},
	{offering.ErrOfferingNotFound, http.StatusNotFound},
	{offering.ErrSlugExists, http.StatusConflict},
	{offering.ErrInvalidJSONField, http.StatusBadRequest},

	// Uploads
	{storage.ErrFileTooLarge, http.StatusBadRequest},
	{storage.ErrUnsupportedFileType, http.StatusBadRequest},
	{storage.ErrFileRequired, http.StatusBadRequest},
}

// messageOverrides replace the sentinel text where clients expect exact wording.
var messageOverrides = map[error]string{
	auth.ErrTokenExpired:         "Token has expired",
	auth.ErrInvalidCredentials:   "Invalid email or password",
	user.ErrUserEmailExists:      "User with this email already exists",
	salary.ErrProfileIncomplete:  "Employee profile not found. Please ask the employee to complete their profile.",
	attendance.ErrAlreadyMarked:  "Attendance already marked for today.",
	auth.ErrInvalidResetToken:    "Token is invalid or has expired",
	auth.ErrEmailSendFailed:      "There was an error sending the email. Try again later.",
	offering.ErrInvalidJSONField: "Invalid JSON format in strategySteps, servicesOffered, or technologies.",
}

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Typed errors carry a message built for the client.
	var marked *attendance.AlreadyMarkedError
	if errors.As(err, &marked) {
		BadRequest(w, marked.Error(), nil)
		return
	}
	var slugConflict *offering.SlugConflictError
	if errors.As(err, &slugConflict) {
		Conflict(w, slugConflict.Error())
		return
	}

	for _, known := range knownErrors {
		if errors.Is(err, known.err) {
			message, ok := messageOverrides[known.err]
			if !ok {
				message = sentence(known.err.Error())
			}
			if known.status >= http.StatusInternalServerError {
				slog.Error("Request failed", "error", err)
			}
			writeError(w, known.status, message)
			return
		}
	}

	slog.Error("Unhandled error", "error", err)
	InternalServerError(w, "An unexpected error occurred")
}

// sentence capitalizes the first letter of a lower-case sentinel message.
func sentence(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	out := string(r)
	if !strings.HasSuffix(out, ".") {
		out += "."
	}
	return out
}

func writeError(w http.ResponseWriter, status int, message string) {
	switch status {
	case http.StatusBadRequest:
		BadRequest(w, message, nil)
	case http.StatusUnauthorized:
		Unauthorized(w, message)
	case http.StatusForbidden:
		Forbidden(w, message)
	case http.StatusNotFound:
		NotFound(w, message)
	case http.StatusConflict:
		Conflict(w, message)
	default:
		InternalServerError(w, message)
	}
}
