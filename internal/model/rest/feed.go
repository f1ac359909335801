package rest

import (
	"ripplenet-backend/internal/model"
)

// FeedUser is the identity promoted to the top of a feed card; for simple
// reshares it belongs to the resharer, not the content author.
type FeedUser struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Nickname   string `json:"nickname"`
	Avatar     string `json:"avatar"`
	IsVerified bool   `json:"is_verified"`
}

type OriginalPostData struct {
	PostID           int64              `json:"post_id"`
	User             *FeedUser          `json:"user"`
	Content          string             `json:"content"`
	CreatedOn        int64              `json:"created_on"`
	LikeCount        int64              `json:"like_count"`
	ReshareCount     int64              `json:"reshare_count"`
	ReplyCount       int64              `json:"reply_count"`
	LikedByViewer    bool               `json:"liked_by_viewer"`
	ResharedByViewer bool               `json:"reshared_by_viewer"`
	Media            []*model.PostMedia `json:"media"`
}

type FeedItem struct {
	PostID      int64              `json:"post_id"`
	User        *FeedUser          `json:"user"`
	Content     string             `json:"content"`
	Media       []*model.PostMedia `json:"media"`
	Kind        model.PostKindT    `json:"kind"`
	CreatedOn   int64              `json:"created_on"`
	EffectiveOn int64              `json:"effective_on"`

	IsReshare bool `json:"is_reshare"`
	IsQuote   bool `json:"is_quote"`

	LikeCount    int64 `json:"like_count"`
	ReshareCount int64 `json:"reshare_count"`
	ReplyCount   int64 `json:"reply_count"`
	QuoteCount   int64 `json:"quote_count"`

	LikedByViewer    bool `json:"liked_by_viewer"`
	FollowsAuthor    bool `json:"follows_author"`
	ResharedByViewer bool `json:"reshared_by_viewer"`

	AuthorStats model.AuthorStats `json:"author_stats"`

	OriginalPostData *OriginalPostData `json:"original_post_data,omitempty"`

	PersonalizationScore float64 `json:"personalization_score"`
	QualityScore         float64 `json:"quality_score"`
	FinalScore           float64 `json:"final_score"`
}

type FeedResp struct {
	Posts []*FeedItem `json:"posts"`
}
