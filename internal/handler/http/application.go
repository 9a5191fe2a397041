package http

import (
	"log/slog"
	"net/http"

	"github.com/techdigi/hr-backoffice/internal/domain/application"
	"github.com/techdigi/hr-backoffice/internal/handler/http/response"
)

type ApplicationHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type applicationHandlerImpl struct {
	applicationService application.ApplicationService
}

func NewApplicationHandler(applicationService application.ApplicationService) ApplicationHandler {
	return &applicationHandlerImpl{applicationService: applicationService}
}

// Submit implements ApplicationHandler.
func (h *applicationHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	if !parseMultipart(w, r) {
		return
	}

	resume, err := formUpload(r, "resume")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req := application.SubmitRequest{
		Name:        r.FormValue("name"),
		Email:       r.FormValue("email"),
		Phone:       r.FormValue("phone"),
		Position:    r.FormValue("position"),
		Experience:  r.FormValue("experience"),
		Portfolio:   r.FormValue("portfolio"),
		CoverLetter: r.FormValue("coverLetter"),
		Resume:      resume,
	}

	created, err := h.applicationService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Job application received", "application_id", created.ID, "position", created.Position)
	response.Created(w, "Application submitted successfully!", created)
}

// List implements ApplicationHandler.
func (h *applicationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.applicationService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessList(w, list)
}

// UpdateStatus implements ApplicationHandler.
func (h *applicationHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req application.UpdateStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	req.ID = id

	updated, err := h.applicationService.UpdateStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Application status updated successfully", updated)
}

// Delete implements ApplicationHandler.
func (h *applicationHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.applicationService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Application deleted successfully", map[string]string{"id": id})
}
