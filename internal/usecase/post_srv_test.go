package usecase

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"fireguard-api/internal/data/entity"
	"fireguard-api/internal/data/repository"
	"fireguard-api/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePostRepo struct {
	mu    sync.Mutex
	posts []*entity.CommunityPost
}

func (f *fakePostRepo) Create(ctx context.Context, post *entity.CommunityPost) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *post
	f.posts = append(f.posts, &copied)
	return nil
}

func (f *fakePostRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.CommunityPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, post := range f.posts {
		if post.ID == id {
			copied := *post
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakePostRepo) FindRecentWithAuthors(ctx context.Context, limit int) ([]*entity.CommunityPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	sorted := make([]*entity.CommunityPost, len(f.posts))
	copy(sorted, f.posts)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func newTestPostService() (PostService, *fakeUserRepo, *fakePostRepo) {
	users := newFakeUserRepo()
	posts := &fakePostRepo{}
	repo := &repository.Repository{User: users, Post: posts}
	return NewPostService(repo, zap.NewNop()), users, posts
}

func seedUser(t *testing.T, users *fakeUserRepo, role entity.UserRole) uuid.UUID {
	t.Helper()
	now := time.Now()
	id := uuid.New()
	require.NoError(t, users.Create(context.Background(), &entity.User{
		Base:     entity.Base{ID: id, CreatedAt: now, UpdatedAt: now},
		Email:    id.String() + "@example.com",
		Username: id.String(),
		Role:     role,
	}))
	return id
}

func TestCreatePost_Community(t *testing.T) {
	svc, users, _ := newTestPostService()
	authorID := seedUser(t, users, entity.RoleUser)

	resp, err := svc.Create(context.Background(), authorID, &request.CreatePostRequest{
		Type:    "community",
		Title:   "Smoke near the park",
		Content: "Seeing smoke rising behind the tree line.",
		Location: &request.Location{
			Lat:     -6.2,
			Lng:     106.8,
			Address: "Jakarta",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.PostCommunity, resp.Type)
	assert.Equal(t, authorID.String(), resp.AuthorID)
	require.NotNil(t, resp.Location)
	assert.Equal(t, "Jakarta", resp.Location.Address)
	assert.Nil(t, resp.Priority)
	assert.NotNil(t, resp.Comments)
	assert.Empty(t, resp.Comments)
}

func TestCreatePost_PriorityOnlyOnEmergency(t *testing.T) {
	svc, users, _ := newTestPostService()
	authorID := seedUser(t, users, entity.RoleUser)

	emergency, err := svc.Create(context.Background(), authorID, &request.CreatePostRequest{
		Type:     "emergency",
		Title:    "House fire on 5th street",
		Content:  "Flames visible from the road, fire department called.",
		Priority: "critical",
	})
	require.NoError(t, err)
	require.NotNil(t, emergency.Priority)
	assert.Equal(t, entity.PriorityCritical, *emergency.Priority)

	// The same priority on a community post is ignored
	community, err := svc.Create(context.Background(), authorID, &request.CreatePostRequest{
		Type:     "community",
		Title:    "Weekly safety reminder",
		Content:  "Check your smoke detector batteries.",
		Priority: "critical",
	})
	require.NoError(t, err)
	assert.Nil(t, community.Priority)
}

func TestCreatePost_NewsRequiresAdmin(t *testing.T) {
	svc, users, posts := newTestPostService()
	userID := seedUser(t, users, entity.RoleUser)
	adminID := seedUser(t, users, entity.RoleAdmin)

	news := &request.CreatePostRequest{
		Type:    "news",
		Title:   "Dry season advisory",
		Content: "Elevated fire risk expected through the weekend.",
	}

	_, err := svc.Create(context.Background(), userID, news)
	require.ErrorContains(t, err, "only administrators can create news posts")
	assert.Empty(t, posts.posts)

	resp, err := svc.Create(context.Background(), adminID, news)
	require.NoError(t, err)
	assert.Equal(t, entity.PostNews, resp.Type)
}

func TestCreatePost_ValidationFailed(t *testing.T) {
	svc, users, _ := newTestPostService()
	authorID := seedUser(t, users, entity.RoleUser)

	_, err := svc.Create(context.Background(), authorID, &request.CreatePostRequest{
		Type:    "broadcast",
		Title:   "Bad type",
		Content: "Type outside the allowed set.",
	})
	require.ErrorContains(t, err, "validation failed")
}

func TestGetFeed_NewestFirst(t *testing.T) {
	svc, users, _ := newTestPostService()
	authorID := seedUser(t, users, entity.RoleUser)

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		_, err := svc.Create(context.Background(), authorID, &request.CreatePostRequest{
			Type:    "community",
			Title:   title,
			Content: "content for " + title,
		})
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	feed, err := svc.GetFeed(context.Background())
	require.NoError(t, err)
	require.Len(t, feed, 3)
	assert.Equal(t, "third", feed[0].Title)
	assert.Equal(t, "first", feed[2].Title)
}
