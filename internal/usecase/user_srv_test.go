package usecase

import (
	"context"
	"testing"

	"fireguard-api/internal/data/entity"
	"fireguard-api/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetProfile(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(users, zap.NewNop())
	userID := seedUser(t, users, entity.RoleUser)

	profile, err := svc.GetProfile(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), profile.ID)

	_, err = svc.GetProfile(context.Background(), uuid.New())
	require.ErrorContains(t, err, "user not found")
}

func TestGetAllUsers_Pagination(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(users, zap.NewNop())

	for i := 0; i < 5; i++ {
		seedUser(t, users, entity.RoleUser)
	}

	resp, err := svc.GetAllUsers(context.Background(), &request.PaginatedRequest{Page: 1, PerPage: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.Pagination.Total)
	assert.Equal(t, 1, resp.Pagination.Page)
	assert.Equal(t, 2, resp.Pagination.PerPage)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
}

func TestDeleteUser(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(users, zap.NewNop())
	userID := seedUser(t, users, entity.RoleUser)

	require.ErrorContains(t, svc.DeleteUser(context.Background(), "not-a-uuid"), "invalid user ID")
	require.ErrorContains(t, svc.DeleteUser(context.Background(), uuid.New().String()), "user not found")

	require.NoError(t, svc.DeleteUser(context.Background(), userID.String()))

	deleted, err := users.FindByID(context.Background(), userID)
	require.NoError(t, err)
	assert.Nil(t, deleted)
}
