package domain

import "time"

// PostType discriminates the post kinds that can enter a feed.
type PostType string

const (
	PostTypeThought PostType = "thought"
	PostTypeReview  PostType = "review"
)

// Post is a read-only candidate row from the social store. Body is carried
// for completeness but never inspected by scoring.
type Post struct {
	ID        string    `bson:"_id" json:"id"`
	AuthorID  string    `bson:"author_id" json:"author_id"`
	Type      PostType  `bson:"post_type" json:"post_type"`
	ShowID    string    `bson:"show_id,omitempty" json:"show_id,omitempty"`
	Body      string    `bson:"body" json:"body"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Ref returns the (post, type) identity used to key engagement lookups and
// scored-feed upserts.
func (p Post) Ref() PostRef {
	return PostRef{PostID: p.ID, PostType: p.Type}
}

// PostRef identifies a post across collections. Posts of different types may
// share an ID space, so the pair is the key everywhere.
type PostRef struct {
	PostID   string   `bson:"post_id" json:"post_id"`
	PostType PostType `bson:"post_type" json:"post_type"`
}
