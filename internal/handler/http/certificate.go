package http

import (
	"net/http"

	"github.com/techdigi/hr-backoffice/internal/domain/certificate"
	"github.com/techdigi/hr-backoffice/internal/handler/http/response"
)

type CertificateHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	MyRequests(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
}

type certificateHandlerImpl struct {
	certificateService certificate.CertificateService
}

func NewCertificateHandler(certificateService certificate.CertificateService) CertificateHandler {
	return &certificateHandlerImpl{certificateService: certificateService}
}

// Submit implements CertificateHandler.
func (h *certificateHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req certificate.SubmitRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.UserID = u.ID

	created, err := h.certificateService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Certificate request submitted successfully", created)
}

// MyRequests implements CertificateHandler.
func (h *certificateHandlerImpl) MyRequests(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(w, r)
	if !ok {
		return
	}

	list, err := h.certificateService.MyRequests(r.Context(), u.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessList(w, list)
}

// ListAll implements CertificateHandler.
func (h *certificateHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	list, err := h.certificateService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessList(w, list)
}

// Review implements CertificateHandler.
func (h *certificateHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	var req certificate.ReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	req.ID = id

	reviewed, err := h.certificateService.Review(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Certificate request updated successfully", reviewed)
}

// Delete implements CertificateHandler.
func (h *certificateHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.certificateService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Certificate request deleted successfully", map[string]string{"id": id})
}

// Verify implements CertificateHandler.
func (h *certificateHandlerImpl) Verify(w http.ResponseWriter, r *http.Request) {
	var req certificate.VerifyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	verified, err := h.certificateService.Verify(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Certificate verified successfully", verified)
}
