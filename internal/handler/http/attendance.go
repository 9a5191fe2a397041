package http

import (
	"log/slog"
	"net/http"

	"github.com/techdigi/hr-backoffice/internal/domain/attendance"
	"github.com/techdigi/hr-backoffice/internal/handler/http/response"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	RequestLeave(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
	GetMyMonth(w http.ResponseWriter, r *http.Request)
	ListByDate(w http.ResponseWriter, r *http.Request)
	ListForEmployee(w http.ResponseWriter, r *http.Request)
	Correct(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	ExportAll(w http.ResponseWriter, r *http.Request)
	ExportEmployee(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req attendance.ClockInRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.UserID = u.ID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.ClockIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Clock in recorded", "user_id", u.ID)
	response.Created(w, "Clocked in successfully", result)
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req attendance.ClockOutRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.UserID = u.ID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.ClockOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Clock out recorded", "user_id", u.ID)
	response.SuccessWithMessage(w, "Clocked out successfully", result)
}

// RequestLeave implements AttendanceHandler.
func (h *attendanceHandlerImpl) RequestLeave(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req attendance.LeaveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.UserID = u.ID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.RequestLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", result)
}

// GetToday implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(w, r)
	if !ok {
		return
	}

	today, err := h.attendanceService.GetToday(r.Context(), u.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if today == nil {
		response.Success(w, attendance.TodayResponse{Status: "NotClockedIn"})
		return
	}
	response.Success(w, today)
}

// GetMyMonth implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMyMonth(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(w, r)
	if !ok {
		return
	}

	period, err := attendance.ParsePeriod(r.URL.Query().Get("year"), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.attendanceService.GetMyMonth(r.Context(), u.ID, period)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessList(w, records)
}

// ListByDate implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	date, err := attendance.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.attendanceService.ListByDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessList(w, records)
}

// ListForEmployee implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListForEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	filter, err := attendance.ParseEmployeeFilter(r.URL.Query().Get("year"), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.attendanceService.ListForEmployee(r.Context(), id, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessList(w, records)
}

// Correct implements AttendanceHandler.
func (h *attendanceHandlerImpl) Correct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var patch attendance.CorrectionPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	if err := patch.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.AdminCorrect(r.Context(), id, patch)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance corrected by admin", "attendance_id", id)
	response.SuccessWithMessage(w, "Attendance updated successfully", result)
}

// Summary implements AttendanceHandler.
func (h *attendanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	period, err := attendance.ParsePeriod(r.URL.Query().Get("year"), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	summary, err := h.attendanceService.MonthlySummary(r.Context(), id, period)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}

// ExportAll implements AttendanceHandler.
func (h *attendanceHandlerImpl) ExportAll(w http.ResponseWriter, r *http.Request) {
	period, err := attendance.ParsePeriod(r.URL.Query().Get("year"), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	file, err := h.attendanceService.ExportAll(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Attachment(w, file.Filename, response.XLSXContentType, file.Content)
}

// ExportEmployee implements AttendanceHandler.
func (h *attendanceHandlerImpl) ExportEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	period, err := attendance.ParsePeriod(r.URL.Query().Get("year"), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	file, err := h.attendanceService.ExportEmployee(r.Context(), id, period)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Attachment(w, file.Filename, response.XLSXContentType, file.Content)
}
