package domain

// EngagementMetrics is a point-in-time snapshot of the aggregate counters for
// one post. The source counters only ever grow, but a scoring run treats the
// values it read as fixed.
type EngagementMetrics struct {
	PostID   string   `bson:"post_id" json:"post_id"`
	PostType PostType `bson:"post_type" json:"post_type"`
	Likes    int64    `bson:"likes" json:"likes"`
	Dislikes int64    `bson:"dislikes" json:"dislikes"`
	Comments int64    `bson:"comments" json:"comments"`
	Reshares int64    `bson:"reshares" json:"reshares"`
	Views    int64    `bson:"views" json:"views"`
}

// Ref returns the key this row is stored under.
func (m EngagementMetrics) Ref() PostRef {
	return PostRef{PostID: m.PostID, PostType: m.PostType}
}
