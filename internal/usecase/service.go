package usecase

import (
	"fireguard-api/internal/data/repository"
	"fireguard-api/pkg/mailer"
	"fireguard-api/pkg/token"
	"fireguard-api/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth   AuthService
	User   UserService
	Device DeviceService
	Post   PostService
}

func NewService(repo *repository.Repository, tokens *token.Service, mail mailer.Mailer, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:   NewAuthService(repo, tokens, mail, config, log),
		User:   NewUserService(repo.User, log),
		Device: NewDeviceService(repo.Device, log),
		Post:   NewPostService(repo, log),
	}
}
