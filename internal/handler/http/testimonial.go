package http

import (
	"net/http"

	"github.com/techdigi/hr-backoffice/internal/domain/testimonial"
	"github.com/techdigi/hr-backoffice/internal/handler/http/response"
)

type TestimonialHandler interface {
	ListPublished(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type testimonialHandlerImpl struct {
	testimonialService testimonial.TestimonialService
}

func NewTestimonialHandler(testimonialService testimonial.TestimonialService) TestimonialHandler {
	return &testimonialHandlerImpl{testimonialService: testimonialService}
}

// ListPublished implements TestimonialHandler.
func (h *testimonialHandlerImpl) ListPublished(w http.ResponseWriter, r *http.Request) {
	list, err := h.testimonialService.ListPublished(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessList(w, list)
}

// ListAll implements TestimonialHandler.
func (h *testimonialHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	list, err := h.testimonialService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessList(w, list)
}

// Create implements TestimonialHandler.
func (h *testimonialHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	if !parseMultipart(w, r) {
		return
	}
	avatar, err := formUpload(r, "avatar")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.testimonialService.Create(r.Context(), testimonial.CreateRequest{
		Name:        r.FormValue("name"),
		Review:      r.FormValue("review"),
		Rating:      r.FormValue("rating"),
		IsPublished: r.FormValue("isPublished"),
		Avatar:      avatar,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Testimonial created successfully", created)
}

// Update implements TestimonialHandler.
func (h *testimonialHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	if !parseMultipart(w, r) {
		return
	}
	avatar, err := formUpload(r, "avatar")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	updated, err := h.testimonialService.Update(r.Context(), testimonial.UpdateRequest{
		ID:          id,
		Name:        r.FormValue("name"),
		Review:      r.FormValue("review"),
		Rating:      r.FormValue("rating"),
		IsPublished: r.FormValue("isPublished"),
		Avatar:      avatar,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Testimonial updated successfully", updated)
}

// Delete implements TestimonialHandler.
func (h *testimonialHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.testimonialService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Testimonial deleted successfully", map[string]string{"id": id})
}
