package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"fireguard-api/internal/dto/request"
	"fireguard-api/internal/usecase"
	"fireguard-api/pkg/utils"

	"go.uber.org/zap"
)

type PostHandler struct {
	service usecase.PostService
	log     *zap.Logger
}

func NewPostHandler(service usecase.PostService, log *zap.Logger) *PostHandler {
	return &PostHandler{
		service: service,
		log:     log,
	}
}

// GetFeed handles GET /api/posts (public)
func (h *PostHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.GetFeed(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get feed")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, posts)
}

// CreatePost handles POST /api/posts
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Type, title, and content are required", validationErrors)
		return
	}

	post, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create post")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, post)
}

func (h *PostHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "only administrators"):
		h.log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
