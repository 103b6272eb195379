package domain

const (
	CollectionSocialFollows = "social_graph_follows"
)
const (
	CollectionUserPreferences = "social_user_preferences"
)

const (
	CollectionPosts = "social_posts"
)
const (
	CollectionPostEngagement = "social_post_engagement"
)

const (
	CollectionFeedScores = "social_feed_scores"
)
