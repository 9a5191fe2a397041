package http

import (
	"net/http"

	"github.com/techdigi/hr-backoffice/internal/domain/profile"
	"github.com/techdigi/hr-backoffice/internal/handler/http/response"
)

type ProfileHandler interface {
	GetMine(w http.ResponseWriter, r *http.Request)
	UpdateMine(w http.ResponseWriter, r *http.Request)
	GetByUserID(w http.ResponseWriter, r *http.Request)
}

type profileHandlerImpl struct {
	profileService profile.ProfileService
}

func NewProfileHandler(profileService profile.ProfileService) ProfileHandler {
	return &profileHandlerImpl{profileService: profileService}
}

// GetMine implements ProfileHandler.
func (h *profileHandlerImpl) GetMine(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(w, r)
	if !ok {
		return
	}

	p, err := h.profileService.GetMine(r.Context(), u.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, p)
}

// UpdateMine implements ProfileHandler. The body is multipart so a new
// profileImage can ride along with the text fields.
func (h *profileHandlerImpl) UpdateMine(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(w, r)
	if !ok {
		return
	}
	if !parseMultipart(w, r) {
		return
	}

	image, err := formUpload(r, "profileImage")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req := profile.UpdateProfileRequest{
		UserID:            u.ID,
		Name:              optionalFormValue(r, "name"),
		DOB:               optionalFormValue(r, "dob"),
		Address:           optionalFormValue(r, "address"),
		City:              optionalFormValue(r, "city"),
		State:             optionalFormValue(r, "state"),
		Pincode:           optionalFormValue(r, "pincode"),
		Designation:       optionalFormValue(r, "designation"),
		PANNumber:         optionalFormValue(r, "panNumber"),
		BankAccountNumber: optionalFormValue(r, "bankAccountNumber"),
		Image:             image,
	}

	updated, err := h.profileService.UpdateMine(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Profile updated successfully", updated)
}

// GetByUserID implements ProfileHandler.
func (h *profileHandlerImpl) GetByUserID(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	p, err := h.profileService.GetByUserID(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, p)
}
