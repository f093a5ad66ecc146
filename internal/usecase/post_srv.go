package usecase

import (
	"context"
	"fmt"
	"time"

	"fireguard-api/internal/data/entity"
	"fireguard-api/internal/data/repository"
	"fireguard-api/internal/dto/request"
	"fireguard-api/internal/dto/response"
	"fireguard-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// feedLimit caps how many posts a single feed read returns.
const feedLimit = 50

type PostService interface {
	GetFeed(ctx context.Context) ([]response.CommunityPostResponse, error)
	Create(ctx context.Context, authorID uuid.UUID, req *request.CreatePostRequest) (*response.CommunityPostResponse, error)
}

type postService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPostService(repo *repository.Repository, log *zap.Logger) PostService {
	return &postService{
		repo: repo,
		log:  log,
	}
}

func (ps *postService) GetFeed(ctx context.Context) ([]response.CommunityPostResponse, error) {
	posts, err := ps.repo.Post.FindRecentWithAuthors(ctx, feedLimit)
	if err != nil {
		ps.log.Error("Failed to get feed", zap.Error(err))
		return nil, fmt.Errorf("failed to get posts")
	}

	responses := make([]response.CommunityPostResponse, len(posts))
	for i, post := range posts {
		responses[i] = response.PostToResponse(post)
	}

	return responses, nil
}

func (ps *postService) Create(ctx context.Context, authorID uuid.UUID, req *request.CreatePostRequest) (*response.CommunityPostResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		ps.log.Warn("Create post validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// News posts are reserved for administrators
	if entity.PostType(req.Type) == entity.PostNews {
		author, err := ps.repo.User.FindByID(ctx, authorID)
		if err != nil {
			ps.log.Error("Failed to load author", zap.Error(err), zap.String("author_id", authorID.String()))
			return nil, fmt.Errorf("failed to check author")
		}
		if author == nil || author.Role != entity.RoleAdmin {
			return nil, fmt.Errorf("only administrators can create news posts")
		}
	}

	now := time.Now()
	post := &entity.CommunityPost{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Type:     entity.PostType(req.Type),
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: authorID,
		Images:   req.Images,
	}

	if req.Location != nil {
		post.Lat = &req.Location.Lat
		post.Lng = &req.Location.Lng
		post.Address = &req.Location.Address
	}

	// Priority only means something on emergency posts
	if post.Type == entity.PostEmergency && req.Priority != "" {
		priority := entity.PostPriority(req.Priority)
		post.Priority = &priority
	}

	if err := ps.repo.Post.Create(ctx, post); err != nil {
		ps.log.Error("Failed to create post", zap.Error(err), zap.String("author_id", authorID.String()))
		return nil, fmt.Errorf("failed to create post")
	}

	ps.log.Info("Post created",
		zap.String("post_id", post.ID.String()),
		zap.String("type", string(post.Type)),
		zap.String("author_id", authorID.String()))

	resp := response.PostToResponse(post)
	return &resp, nil
}
