package entity

import "github.com/google/uuid"

type PostType string

const (
	PostCommunity PostType = "community"
	PostEmergency PostType = "emergency"
	PostNews      PostType = "news"
)

type PostPriority string

const (
	PriorityLow      PostPriority = "low"
	PriorityMedium   PostPriority = "medium"
	PriorityHigh     PostPriority = "high"
	PriorityCritical PostPriority = "critical"
)

// CommunityPost is a feed entry. Priority is kept only for emergency posts;
// news posts may only be authored by admins.
type CommunityPost struct {
	BaseNoDelete
	Type     PostType      `db:"type"`
	Title    string        `db:"title"`
	Content  string        `db:"content"`
	AuthorID uuid.UUID     `db:"author_id"`
	Images   []string      `db:"images"`
	Lat      *float64      `db:"lat"`
	Lng      *float64      `db:"lng"`
	Address  *string       `db:"address"`
	Priority *PostPriority `db:"priority"`
	Likes    int           `db:"likes"`

	// Author is populated on feed reads via a join; nil elsewhere.
	Author *User `db:"-"`
}
