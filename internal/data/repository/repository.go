package repository

import (
	"errors"

	"fireguard-api/pkg/database"

	"go.uber.org/zap"
)

// ErrDuplicate is returned when an insert trips a unique index. The service
// layer's existence check is only advisory; under concurrent requests this is
// the real safety net.
var ErrDuplicate = errors.New("duplicate record")

type Repository struct {
	User   UserRepository
	Device DeviceRepository
	Post   PostRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:   NewUserRepository(db, log),
		Device: NewDeviceRepository(db, log),
		Post:   NewPostRepository(db, log),
	}
}
