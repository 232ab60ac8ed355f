package handler

import (
	"blogapi/internal/app/service"
	"blogapi/internal/common"
	"blogapi/internal/domain/model"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/signup", h.signup)
	r.Post("/login", h.login)
}

type signupData struct {
	Message string      `json:"message"`
	User    *model.User `json:"user"`
}

type loginData struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

func (h *AuthHandler) signup(w http.ResponseWriter, r *http.Request) {
	var req service.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := h.authService.Signup(r.Context(), req)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, signupData{
		Message: "User created successfully",
		User:    user,
	})
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	token, err := h.authService.Login(r.Context(), req)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, loginData{
		Message: "Login successful",
		Token:   token,
	})
}
