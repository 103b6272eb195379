package domain

import "time"

// ScoreReason breaks a score into its components so a persisted row can be
// inspected after the fact. It is written verbatim with the score and is not
// read by anything downstream.
type ScoreReason struct {
	Followed    bool    `bson:"followed" json:"followed"`
	SimilarShow bool    `bson:"similar_show" json:"similar_show"`
	Base        float64 `bson:"base" json:"base"`
	Decay       float64 `bson:"decay" json:"decay"`
	Social      float64 `bson:"social" json:"social"`
	Similarity  float64 `bson:"similarity" json:"similarity"`
	Exploration float64 `bson:"exploration" json:"exploration"`
}

// ScoredPost is one row of a user's materialized feed. Rows are upserted
// keyed by (user_id, post_id, post_type).
type ScoredPost struct {
	UserID   string      `bson:"user_id" json:"user_id"`
	PostID   string      `bson:"post_id" json:"post_id"`
	PostType PostType    `bson:"post_type" json:"post_type"`
	AuthorID string      `bson:"author_id" json:"author_id"`
	ShowID   string      `bson:"show_id,omitempty" json:"show_id,omitempty"`
	Score    float64     `bson:"score" json:"score"`
	Reason   ScoreReason `bson:"reason" json:"reason"`
	ScoredAt time.Time   `bson:"scored_at" json:"scored_at"`
}

// Ref returns the (post, type) part of the upsert key.
func (s ScoredPost) Ref() PostRef {
	return PostRef{PostID: s.PostID, PostType: s.PostType}
}
