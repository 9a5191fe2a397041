package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/techdigi/hr-backoffice/internal/domain/offering"
	"github.com/techdigi/hr-backoffice/internal/handler/http/response"
)

// OfferingHandler serves the marketing service pages.
type OfferingHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	GetBySlug(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type offeringHandlerImpl struct {
	offeringService offering.OfferingService
}

func NewOfferingHandler(offeringService offering.OfferingService) OfferingHandler {
	return &offeringHandlerImpl{offeringService: offeringService}
}

func offeringForm(r *http.Request) (offering.FormRequest, error) {
	req := offering.FormRequest{
		Title:           r.FormValue("title"),
		Description:     r.FormValue("description"),
		Slug:            r.FormValue("slug"),
		HeroTitle:       r.FormValue("heroTitle"),
		HeroDescription: r.FormValue("heroDescription"),
		StrategySteps:   r.FormValue("strategySteps"),
		ServicesOffered: r.FormValue("servicesOffered"),
		Technologies:    r.FormValue("technologies"),
	}

	var err error
	if req.CardImage, err = formUpload(r, "cardImage"); err != nil {
		return req, err
	}
	if req.HeroImage, err = formUpload(r, "heroImage"); err != nil {
		return req, err
	}
	if req.OfferedImage, err = formUploads(r, "servicesOfferedImages"); err != nil {
		return req, err
	}
	return req, nil
}

// List implements OfferingHandler.
func (h *offeringHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.offeringService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessList(w, list)
}

// GetByID implements OfferingHandler.
func (h *offeringHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	o, err := h.offeringService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, o)
}

// GetBySlug implements OfferingHandler.
func (h *offeringHandlerImpl) GetBySlug(w http.ResponseWriter, r *http.Request) {
	o, err := h.offeringService.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, o)
}

// Create implements OfferingHandler.
func (h *offeringHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	if !parseMultipart(w, r) {
		return
	}
	req, err := offeringForm(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.offeringService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Service created successfully", created)
}

// Update implements OfferingHandler.
func (h *offeringHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if !parseMultipart(w, r) {
		return
	}
	req, err := offeringForm(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	req.ID = id

	updated, err := h.offeringService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Service updated successfully", updated)
}

// Delete implements OfferingHandler.
func (h *offeringHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.offeringService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Service deleted successfully", map[string]string{"id": id})
}
