package model

// CandidateUser is the identity snapshot attached to feed candidates.
type CandidateUser struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Nickname   string `json:"nickname"`
	Avatar     string `json:"avatar"`
	IsVerified bool   `json:"is_verified"`
}

// AuthorStats carries the author aggregates the quality model scores on.
type AuthorStats struct {
	FollowerCount  int64 `json:"follower_count"`
	FollowingCount int64 `json:"following_count"`
	PostCount      int64 `json:"post_count"`
}

// OriginalPostSnapshot is the fully resolved parent of a quote candidate,
// captured during retrieval so shaping never issues another lookup.
type OriginalPostSnapshot struct {
	PostID           int64         `json:"post_id"`
	Content          string        `json:"content"`
	CreatedOn        int64         `json:"created_on"`
	LikeCount        int64         `json:"like_count"`
	ReshareCount     int64         `json:"reshare_count"`
	ReplyCount       int64         `json:"reply_count"`
	LikedByViewer    bool          `json:"liked_by_viewer"`
	ResharedByViewer bool          `json:"reshared_by_viewer"`
	Author           CandidateUser `json:"author"`
	Media            []*PostMedia  `json:"media"`
}

// CandidatePost is ephemeral: produced only by retrieval, scored and shaped
// within the request, never persisted.
type CandidatePost struct {
	PostID      int64     `json:"post_id"`
	AuthorID    int64     `json:"author_id"`
	Content     string    `json:"content"`
	Kind        PostKindT `json:"kind"`
	ParentID    *int64    `json:"parent_id"`
	InterestID  *int64    `json:"interest_id"`
	Summary     string    `json:"summary"`
	CreatedOn   int64     `json:"created_on"`
	EffectiveOn int64     `json:"effective_on"`

	IsReshare bool           `json:"is_reshare"`
	Resharer  *CandidateUser `json:"resharer"`

	Author      CandidateUser `json:"author"`
	AuthorStats AuthorStats   `json:"author_stats"`

	HasMedia     bool  `json:"has_media"`
	HashtagCount int64 `json:"hashtag_count"`
	MentionCount int64 `json:"mention_count"`

	LikeCount    int64 `json:"like_count"`
	ReshareCount int64 `json:"reshare_count"`
	ReplyCount   int64 `json:"reply_count"`
	QuoteCount   int64 `json:"quote_count"`

	LikedByViewer    bool `json:"liked_by_viewer"`
	FollowsAuthor    bool `json:"follows_author"`
	ResharedByViewer bool `json:"reshared_by_viewer"`

	Media        []*PostMedia          `json:"media"`
	OriginalPost *OriginalPostSnapshot `json:"original_post"`

	PersonalizationScore float64 `json:"personalization_score"`
}

// ScoredCandidate is a CandidatePost with the quality blend applied.
type ScoredCandidate struct {
	*CandidatePost
	QualityScore float64 `json:"quality_score"`
	FinalScore   float64 `json:"final_score"`
}
