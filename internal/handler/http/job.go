package http

import (
	"net/http"

	"github.com/techdigi/hr-backoffice/internal/domain/job"
	"github.com/techdigi/hr-backoffice/internal/handler/http/response"
)

type JobHandler interface {
	ListActive(w http.ResponseWriter, r *http.Request)
	GetActive(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type jobHandlerImpl struct {
	jobService job.JobService
}

func NewJobHandler(jobService job.JobService) JobHandler {
	return &jobHandlerImpl{jobService: jobService}
}

// ListActive implements JobHandler.
func (h *jobHandlerImpl) ListActive(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobService.ListActive(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessList(w, jobs)
}

// GetActive implements JobHandler.
func (h *jobHandlerImpl) GetActive(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	j, err := h.jobService.GetActive(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, j)
}

// ListAll implements JobHandler.
func (h *jobHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessList(w, jobs)
}

// Create implements JobHandler.
func (h *jobHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req job.CreateJobRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.jobService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Job opening created successfully", created)
}

// Update implements JobHandler.
func (h *jobHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req job.UpdateJobRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	req.ID = id

	updated, err := h.jobService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Job opening updated successfully", updated)
}

// Delete implements JobHandler.
func (h *jobHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.jobService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Job opening deleted successfully", map[string]string{"id": id})
}
