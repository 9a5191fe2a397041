package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/techdigi/hr-backoffice/internal/domain/salary"
	"github.com/techdigi/hr-backoffice/internal/handler/http/response"
	"github.com/techdigi/hr-backoffice/internal/pkg/validator"
)

type SalaryHandler interface {
	Details(w http.ResponseWriter, r *http.Request)
	CreateManual(w http.ResponseWriter, r *http.Request)
	Publish(w http.ResponseWriter, r *http.Request)
	ListForUser(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	MySlips(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &salaryHandlerImpl{salaryService: salaryService}
}

func invalidYear() error {
	return validator.ValidationErrors{{Field: "year", Message: "year must be a number"}}
}

// Details implements SalaryHandler.
func (h *salaryHandlerImpl) Details(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.HandleError(w, invalidYear())
		return
	}

	details, err := h.salaryService.GetDetails(r.Context(), userID, chi.URLParam(r, "month"), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, details)
}

// CreateManual implements SalaryHandler.
func (h *salaryHandlerImpl) CreateManual(w http.ResponseWriter, r *http.Request) {
	var req salary.CreateSlipRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	req.UserID = userID

	slip, err := h.salaryService.CreateManual(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Salary slip created", "slip_id", slip.ID, "user_id", req.UserID)
	response.Created(w, "Salary slip created successfully", slip)
}

// Publish implements SalaryHandler.
func (h *salaryHandlerImpl) Publish(w http.ResponseWriter, r *http.Request) {
	slipID, ok := pathID(w, r, "slipId")
	if !ok {
		return
	}
	slip, err := h.salaryService.Publish(r.Context(), slipID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Salary slip published", "slip_id", slip.ID)
	response.SuccessWithMessage(w, "Salary slip published successfully", slip)
}

// ListForUser implements SalaryHandler.
func (h *salaryHandlerImpl) ListForUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	slips, err := h.salaryService.ListForUser(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessList(w, slips)
}

// History implements SalaryHandler.
func (h *salaryHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	year, ok := queryInt(r, "year")
	if !ok || year == nil {
		response.HandleError(w, invalidYear())
		return
	}

	history, err := h.salaryService.History(r.Context(), r.URL.Query().Get("month"), *year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, history)
}

// MySlips implements SalaryHandler.
func (h *salaryHandlerImpl) MySlips(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(w, r)
	if !ok {
		return
	}

	year, ok := queryInt(r, "year")
	if !ok {
		response.HandleError(w, invalidYear())
		return
	}
	var month *string
	if m := r.URL.Query().Get("month"); m != "" {
		month = &m
	}

	slips, err := h.salaryService.MySlips(r.Context(), u.ID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessList(w, slips)
}
