package wire

import (
	"fireguard-api/internal/adaptor"
	"fireguard-api/pkg/middleware"
	"fireguard-api/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePost(
	r chi.Router,
	postHandler *adaptor.PostHandler,
	tokens *token.Service,
	log *zap.Logger,
) {
	// Reading the feed is public; posting requires authentication
	r.Get("/api/posts", postHandler.GetFeed)
	r.With(middleware.Auth(tokens, log)).Post("/api/posts", postHandler.CreatePost)
}
