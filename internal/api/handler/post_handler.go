package handler

import (
	"blogapi/internal/api/middleware"
	"blogapi/internal/app/service"
	"blogapi/internal/common"
	"blogapi/internal/domain/model"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PostHandler struct {
	postService *service.PostService
	logger      *zap.Logger
}

func NewPostHandler(postService *service.PostService, logger *zap.Logger) *PostHandler {
	return &PostHandler{postService: postService, logger: logger}
}

func (h *PostHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listPosts)

	r.Group(func(protected chi.Router) {
		protected.Use(middleware.Authenticator)
		protected.Post("/create", h.createPost)
		protected.Delete("/delete/{id}", h.deletePost)
	})
}

type createPostData struct {
	Message string      `json:"message"`
	Post    *model.Post `json:"post"`
}

type listPostsData struct {
	Posts []service.PostSummary `json:"posts"`
}

func (h *PostHandler) createPost(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Unauthorized - user not authenticated")
		return
	}

	var req service.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	post, err := h.postService.Create(r.Context(), userID, req)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, createPostData{
		Message: "Post created successfully",
		Post:    post,
	})
}

func (h *PostHandler) listPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.List(r.Context())
	if err != nil {
		respondError(h.logger, w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, listPostsData{Posts: posts})
}

func (h *PostHandler) deletePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Unauthorized - user not authenticated")
		return
	}

	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	if err := h.postService.Delete(r.Context(), userID, postID); err != nil {
		respondError(h.logger, w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.MessageData{Message: "Post deleted successfully"})
}
