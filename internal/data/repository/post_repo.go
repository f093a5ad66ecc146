package repository

import (
	"context"
	"fmt"

	"fireguard-api/internal/data/entity"
	"fireguard-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PostRepository interface {
	Create(ctx context.Context, post *entity.CommunityPost) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CommunityPost, error)
	FindRecentWithAuthors(ctx context.Context, limit int) ([]*entity.CommunityPost, error)
}

type postRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPostRepository(db database.PgxIface, log *zap.Logger) PostRepository {
	return &postRepository{
		db:  db,
		log: log.With(zap.String("repository", "post")),
	}
}

const postColumns = `id, type, title, content, author_id, images, lat, lng,
	       address, priority, likes, created_at, updated_at`

func scanPost(row pgx.Row) (*entity.CommunityPost, error) {
	var post entity.CommunityPost
	err := row.Scan(
		&post.ID,
		&post.Type,
		&post.Title,
		&post.Content,
		&post.AuthorID,
		&post.Images,
		&post.Lat,
		&post.Lng,
		&post.Address,
		&post.Priority,
		&post.Likes,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (pr *postRepository) Create(ctx context.Context, post *entity.CommunityPost) error {
	query := `
		INSERT INTO community_posts (id, type, title, content, author_id,
		                            images, lat, lng, address, priority,
		                            likes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := pr.db.Exec(ctx, query,
		post.ID,
		post.Type,
		post.Title,
		post.Content,
		post.AuthorID,
		post.Images,
		post.Lat,
		post.Lng,
		post.Address,
		post.Priority,
		post.Likes,
		post.CreatedAt,
		post.UpdatedAt,
	)

	if err != nil {
		pr.log.Error("Failed to create post",
			zap.Error(err),
			zap.String("author_id", post.AuthorID.String()),
			zap.String("type", string(post.Type)),
		)
		return fmt.Errorf("create post by %s: %w", post.AuthorID.String(), err)
	}

	return nil
}

func (pr *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CommunityPost, error) {
	query := `
		SELECT ` + postColumns + `
		FROM community_posts
		WHERE id = $1
	`

	post, err := scanPost(pr.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find post",
			zap.Error(err),
			zap.String("post_id", id.String()),
		)
		return nil, fmt.Errorf("find post %s: %w", id.String(), err)
	}

	return post, nil
}

// FindRecentWithAuthors returns the newest posts joined with their authors.
// The inner join drops posts whose author was deleted.
func (pr *postRepository) FindRecentWithAuthors(ctx context.Context, limit int) ([]*entity.CommunityPost, error) {
	query := `
		SELECT p.id, p.type, p.title, p.content, p.author_id, p.images,
		       p.lat, p.lng, p.address, p.priority, p.likes,
		       p.created_at, p.updated_at,
		       u.id, u.username, u.full_name, u.role, u.avatar, u.is_verified
		FROM community_posts p
		JOIN users u ON u.id = p.author_id AND u.deleted_at IS NULL
		ORDER BY p.created_at DESC
		LIMIT $1
	`

	rows, err := pr.db.Query(ctx, query, limit)
	if err != nil {
		pr.log.Error("Failed to get recent posts", zap.Error(err), zap.Int("limit", limit))
		return nil, fmt.Errorf("find recent posts limit %d: %w", limit, err)
	}
	defer rows.Close()

	var posts []*entity.CommunityPost
	for rows.Next() {
		var post entity.CommunityPost
		var author entity.User

		err := rows.Scan(
			&post.ID,
			&post.Type,
			&post.Title,
			&post.Content,
			&post.AuthorID,
			&post.Images,
			&post.Lat,
			&post.Lng,
			&post.Address,
			&post.Priority,
			&post.Likes,
			&post.CreatedAt,
			&post.UpdatedAt,
			&author.ID,
			&author.Username,
			&author.FullName,
			&author.Role,
			&author.Avatar,
			&author.IsVerified,
		)
		if err != nil {
			pr.log.Error("Failed to scan post row", zap.Error(err))
			return nil, fmt.Errorf("scan post row: %w", err)
		}

		post.Author = &author
		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		pr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate posts rows: %w", err)
	}

	return posts, nil
}
