package response

import (
	"time"

	"fireguard-api/internal/data/entity"
)

type CommunityPostResponse struct {
	ID        string               `json:"id"`
	Type      entity.PostType      `json:"type"`
	Title     string               `json:"title"`
	Content   string               `json:"content"`
	AuthorID  string               `json:"authorId"`
	Author    *AuthorResponse      `json:"author,omitempty"`
	Images    []string             `json:"images,omitempty"`
	Location  *LocationResponse    `json:"location,omitempty"`
	Priority  *entity.PostPriority `json:"priority,omitempty"`
	Likes     int                  `json:"likes"`
	Comments  []CommentResponse    `json:"comments"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// CommentResponse mirrors the feed's comment shape. Comments have no write
// endpoint; posts always serialize an empty list.
type CommentResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
}

func PostToResponse(post *entity.CommunityPost) CommunityPostResponse {
	resp := CommunityPostResponse{
		ID:        post.ID.String(),
		Type:      post.Type,
		Title:     post.Title,
		Content:   post.Content,
		AuthorID:  post.AuthorID.String(),
		Author:    AuthorToResponse(post.Author),
		Images:    post.Images,
		Priority:  post.Priority,
		Likes:     post.Likes,
		Comments:  []CommentResponse{},
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}

	if post.Lat != nil && post.Lng != nil && post.Address != nil {
		resp.Location = &LocationResponse{
			Lat:     *post.Lat,
			Lng:     *post.Lng,
			Address: *post.Address,
		}
	}

	return resp
}
