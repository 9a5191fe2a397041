package http

import (
	"net/http"

	"github.com/techdigi/hr-backoffice/internal/domain/technology"
	"github.com/techdigi/hr-backoffice/internal/handler/http/response"
)

type TechnologyHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type technologyHandlerImpl struct {
	technologyService technology.TechnologyService
}

func NewTechnologyHandler(technologyService technology.TechnologyService) TechnologyHandler {
	return &technologyHandlerImpl{technologyService: technologyService}
}

// List implements TechnologyHandler.
func (h *technologyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.technologyService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessList(w, list)
}

// Create implements TechnologyHandler.
func (h *technologyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req technology.CreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.technologyService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Technology created successfully", created)
}

// Update implements TechnologyHandler.
func (h *technologyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req technology.UpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	req.ID = id

	updated, err := h.technologyService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Technology updated successfully", updated)
}

// Delete implements TechnologyHandler.
func (h *technologyHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.technologyService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Technology deleted successfully", technology.DeleteResponse{ID: id})
}
