package response

import (
	"time"

	"fireguard-api/internal/data/entity"
)

// UserResponse is the sanitized account view. The password hash and any
// pending verification code are never part of it.
type UserResponse struct {
	ID         string          `json:"id"`
	Email      string          `json:"email"`
	Username   string          `json:"username"`
	FullName   string          `json:"fullName"`
	Role       entity.UserRole `json:"role"`
	Avatar     *string         `json:"avatar,omitempty"`
	IsVerified bool            `json:"isVerified"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:         user.ID.String(),
		Email:      user.Email,
		Username:   user.Username,
		FullName:   user.FullName,
		Role:       user.Role,
		Avatar:     user.Avatar,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

// AuthorResponse is the short author summary attached to feed posts.
type AuthorResponse struct {
	ID         string          `json:"id"`
	FullName   string          `json:"fullName"`
	Username   string          `json:"username"`
	Avatar     *string         `json:"avatar,omitempty"`
	Role       entity.UserRole `json:"role"`
	IsVerified bool            `json:"isVerified"`
}

func AuthorToResponse(user *entity.User) *AuthorResponse {
	if user == nil {
		return nil
	}
	return &AuthorResponse{
		ID:         user.ID.String(),
		FullName:   user.FullName,
		Username:   user.Username,
		Avatar:     user.Avatar,
		Role:       user.Role,
		IsVerified: user.IsVerified,
	}
}
