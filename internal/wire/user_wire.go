package wire

import (
	"fireguard-api/internal/adaptor"
	"fireguard-api/internal/data/repository"
	"fireguard-api/pkg/middleware"
	"fireguard-api/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures profile and admin user-management routes
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	tokens *token.Service,
	log *zap.Logger,
) {
	// Own profile - requires authentication
	r.With(middleware.Auth(tokens, log)).Get("/api/user/profile", userHandler.GetProfile)

	// Admin user management - requires authentication AND admin role
	r.With(
		middleware.Auth(tokens, log),
		middleware.Admin(repo.User, log),
	).Route("/api/admin/users", func(r chi.Router) {
		r.Get("/", userHandler.GetAllUsers)
		r.Delete("/{id}", userHandler.DeleteUser)
	})
}
