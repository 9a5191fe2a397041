package http

import (
	"net/http"

	"github.com/techdigi/hr-backoffice/internal/domain/inquiry"
	"github.com/techdigi/hr-backoffice/internal/handler/http/response"
)

type InquiryHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Reply(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type inquiryHandlerImpl struct {
	inquiryService inquiry.InquiryService
}

func NewInquiryHandler(inquiryService inquiry.InquiryService) InquiryHandler {
	return &inquiryHandlerImpl{inquiryService: inquiryService}
}

// Submit implements InquiryHandler.
func (h *inquiryHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req inquiry.SubmitRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.inquiryService.Submit(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Thank you for your query! We will get back to you soon.", nil)
}

// List implements InquiryHandler.
func (h *inquiryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.inquiryService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessList(w, list)
}

// Reply implements InquiryHandler.
func (h *inquiryHandlerImpl) Reply(w http.ResponseWriter, r *http.Request) {
	var req inquiry.ReplyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	req.ID = id

	if err := h.inquiryService.Reply(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Reply sent successfully", nil)
}

// Delete implements InquiryHandler.
func (h *inquiryHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.inquiryService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Query deleted successfully", map[string]string{"id": id})
}
