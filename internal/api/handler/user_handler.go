package handler

import (
	"blogapi/internal/api/middleware"
	"blogapi/internal/app/service"
	"blogapi/internal/common"
	"blogapi/internal/domain/model"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService *service.UserService
	logger      *zap.Logger
}

func NewUserHandler(userService *service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{userService: userService, logger: logger}
}

func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Group(func(protected chi.Router) {
		protected.Use(middleware.Authenticator)
		protected.Get("/profile", h.profile)
		protected.Put("/profile", h.updateProfile)
	})
}

type profileData struct {
	User *model.User `json:"user"`
}

type updateProfileData struct {
	Message string      `json:"message"`
	User    *model.User `json:"user"`
}

func (h *UserHandler) profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Unauthorized - user not authenticated")
		return
	}

	user, err := h.userService.Profile(r.Context(), userID)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, profileData{User: user})
}

func (h *UserHandler) updateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Unauthorized - user not authenticated")
		return
	}

	var req service.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, updateProfileData{
		Message: "Profile updated successfully",
		User:    user,
	})
}
