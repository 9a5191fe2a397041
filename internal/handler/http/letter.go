package http

import (
	"log/slog"
	"net/http"

	"github.com/techdigi/hr-backoffice/internal/domain/letter"
	"github.com/techdigi/hr-backoffice/internal/handler/http/response"
)

type LetterHandler interface {
	CreateOffer(w http.ResponseWriter, r *http.Request)
	CreateExperience(w http.ResponseWriter, r *http.Request)
	MyLetters(w http.ResponseWriter, r *http.Request)
}

type letterHandlerImpl struct {
	letterService letter.LetterService
}

func NewLetterHandler(letterService letter.LetterService) LetterHandler {
	return &letterHandlerImpl{letterService: letterService}
}

// CreateOffer implements LetterHandler.
func (h *letterHandlerImpl) CreateOffer(w http.ResponseWriter, r *http.Request) {
	var req letter.CreateOfferRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.letterService.CreateOffer(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Offer letter issued", "letter_id", created.ID, "user_id", created.UserID)
	response.Created(w, "Offer letter created successfully", created)
}

// CreateExperience implements LetterHandler.
func (h *letterHandlerImpl) CreateExperience(w http.ResponseWriter, r *http.Request) {
	var req letter.CreateExperienceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.letterService.CreateExperience(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Experience letter issued", "letter_id", created.ID, "user_id", created.UserID)
	response.Created(w, "Experience letter created successfully", created)
}

// MyLetters implements LetterHandler.
func (h *letterHandlerImpl) MyLetters(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(w, r)
	if !ok {
		return
	}

	letters, err := h.letterService.MyLetters(r.Context(), u.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessList(w, letters)
}
