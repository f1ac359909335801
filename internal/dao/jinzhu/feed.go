package jinzhu

import (
	"time"

	"ripplenet-backend/internal/core"
	"ripplenet-backend/internal/model"

	"gorm.io/gorm"
)

var (
	_ core.FeedCandidateService = (*feedCandidateServant)(nil)
)

type feedCandidateServant struct {
	db *gorm.DB
}

// candidateRow is the flat projection the candidate queries produce; it is
// folded into model.CandidatePost before leaving the dao layer.
type candidateRow struct {
	PostID               int64   `gorm:"column:post_id"`
	AuthorID             int64   `gorm:"column:author_id"`
	Content              string  `gorm:"column:content"`
	Kind                 uint8   `gorm:"column:kind"`
	ParentID             *int64  `gorm:"column:parent_id"`
	InterestID           *int64  `gorm:"column:interest_id"`
	Summary              string  `gorm:"column:summary"`
	CreatedOn            int64   `gorm:"column:created_on"`
	EffectiveOn          int64   `gorm:"column:effective_on"`
	IsReshare            bool    `gorm:"column:is_reshare"`
	ResharerID           *int64  `gorm:"column:resharer_id"`
	PersonalizationScore float64 `gorm:"column:personalization_score"`

	AuthorUsername       string `gorm:"column:author_username"`
	AuthorNickname       string `gorm:"column:author_nickname"`
	AuthorAvatar         string `gorm:"column:author_avatar"`
	AuthorVerified       bool   `gorm:"column:author_verified"`
	AuthorFollowerCount  int64  `gorm:"column:author_follower_count"`
	AuthorFollowingCount int64  `gorm:"column:author_following_count"`
	AuthorPostCount      int64  `gorm:"column:author_post_count"`

	ResharerUsername *string `gorm:"column:resharer_username"`
	ResharerNickname *string `gorm:"column:resharer_nickname"`
	ResharerAvatar   *string `gorm:"column:resharer_avatar"`
	ResharerVerified *bool   `gorm:"column:resharer_verified"`

	HasMedia     bool  `gorm:"column:has_media"`
	HashtagCount int64 `gorm:"column:hashtag_count"`
	MentionCount int64 `gorm:"column:mention_count"`
	LikeCount    int64 `gorm:"column:like_count"`
	ReshareCount int64 `gorm:"column:reshare_count"`
	ReplyCount   int64 `gorm:"column:reply_count"`
	QuoteCount   int64 `gorm:"column:quote_count"`

	LikedByViewer    bool `gorm:"column:liked_by_viewer"`
	FollowsAuthor    bool `gorm:"column:follows_author"`
	ResharedByViewer bool `gorm:"column:reshared_by_viewer"`

	ParentPostID           *int64  `gorm:"column:parent_post_id"`
	ParentContent          *string `gorm:"column:parent_content"`
	ParentCreatedOn        *int64  `gorm:"column:parent_created_on"`
	ParentAuthorID         *int64  `gorm:"column:parent_author_id"`
	ParentAuthorUsername   *string `gorm:"column:parent_author_username"`
	ParentAuthorNickname   *string `gorm:"column:parent_author_nickname"`
	ParentAuthorAvatar     *string `gorm:"column:parent_author_avatar"`
	ParentAuthorVerified   *bool   `gorm:"column:parent_author_verified"`
	ParentLikeCount        *int64  `gorm:"column:parent_like_count"`
	ParentReshareCount     *int64  `gorm:"column:parent_reshare_count"`
	ParentReplyCount       *int64  `gorm:"column:parent_reply_count"`
	ParentLikedByViewer    *bool   `gorm:"column:parent_liked_by_viewer"`
	ParentResharedByViewer *bool   `gorm:"column:parent_reshared_by_viewer"`
}

func newFeedCandidateService(db *gorm.DB) core.FeedCandidateService {
	return &feedCandidateServant{
		db: db,
	}
}

func (s *feedCandidateServant) ForYouCandidates(viewerId int64, offset, limit int) ([]*model.CandidatePost, error) {
	since := time.Now().AddDate(0, 0, -forYouWindowDays).Unix()
	return s.runCandidateQuery(forYouQuery, map[string]interface{}{
		"viewer": viewerId,
		"since":  since,
		"limit":  limit,
		"offset": offset,
	})
}

func (s *feedCandidateServant) FollowingCandidates(viewerId int64, offset, limit int) ([]*model.CandidatePost, error) {
	return s.runCandidateQuery(followingQuery, map[string]interface{}{
		"viewer": viewerId,
		"limit":  limit,
		"offset": offset,
	})
}

func (s *feedCandidateServant) InterestCandidates(viewerId int64, interestNames []string, sortBy core.FeedSortT, offset, limit int) ([]*model.CandidatePost, error) {
	interestIds, err := (&model.Interest{}).IDsByNames(s.db, interestNames)
	if err != nil {
		return nil, err
	}
	if len(interestIds) == 0 {
		return []*model.CandidatePost{}, nil
	}

	query := exploreQuery
	if sortBy == core.FeedSortLatest {
		query = exploreLatestQuery
	}
	since := time.Now().AddDate(0, 0, -exploreWindowDays).Unix()
	return s.runCandidateQuery(query, map[string]interface{}{
		"viewer":      viewerId,
		"interestIds": interestIds,
		"since":       since,
		"limit":       limit,
		"offset":      offset,
	})
}

func (s *feedCandidateServant) runCandidateQuery(query string, args map[string]interface{}) ([]*model.CandidatePost, error) {
	var rows []*candidateRow
	if err := s.db.Raw(query, args).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return s.mergeCandidates(rows)
}

// mergeCandidates folds the flat rows into candidates and attaches media
// lists with one batched lookup covering candidates and quote parents alike.
func (s *feedCandidateServant) mergeCandidates(rows []*candidateRow) ([]*model.CandidatePost, error) {
	candidates := make([]*model.CandidatePost, 0, len(rows))
	if len(rows) == 0 {
		return candidates, nil
	}

	mediaIds := make([]int64, 0, len(rows))
	seen := make(map[int64]bool, len(rows))
	for _, r := range rows {
		if r.HasMedia && !seen[r.PostID] {
			mediaIds = append(mediaIds, r.PostID)
			seen[r.PostID] = true
		}
		if r.ParentPostID != nil && !seen[*r.ParentPostID] {
			mediaIds = append(mediaIds, *r.ParentPostID)
			seen[*r.ParentPostID] = true
		}
	}
	mediaByPost := make(map[int64][]*model.PostMedia, len(mediaIds))
	if len(mediaIds) > 0 {
		mediaList, err := (&model.PostMedia{}).ListByPostIDs(s.db, mediaIds)
		if err != nil {
			return nil, err
		}
		for _, m := range mediaList {
			mediaByPost[m.PostID] = append(mediaByPost[m.PostID], m)
		}
	}

	for _, r := range rows {
		c := &model.CandidatePost{
			PostID:      r.PostID,
			AuthorID:    r.AuthorID,
			Content:     r.Content,
			Kind:        model.PostKindT(r.Kind),
			ParentID:    r.ParentID,
			InterestID:  r.InterestID,
			Summary:     r.Summary,
			CreatedOn:   r.CreatedOn,
			EffectiveOn: r.EffectiveOn,
			IsReshare:   r.IsReshare,
			Author: model.CandidateUser{
				ID:         r.AuthorID,
				Username:   r.AuthorUsername,
				Nickname:   r.AuthorNickname,
				Avatar:     r.AuthorAvatar,
				IsVerified: r.AuthorVerified,
			},
			AuthorStats: model.AuthorStats{
				FollowerCount:  r.AuthorFollowerCount,
				FollowingCount: r.AuthorFollowingCount,
				PostCount:      r.AuthorPostCount,
			},
			HasMedia:             r.HasMedia,
			HashtagCount:         r.HashtagCount,
			MentionCount:         r.MentionCount,
			LikeCount:            r.LikeCount,
			ReshareCount:         r.ReshareCount,
			ReplyCount:           r.ReplyCount,
			QuoteCount:           r.QuoteCount,
			LikedByViewer:        r.LikedByViewer,
			FollowsAuthor:        r.FollowsAuthor,
			ResharedByViewer:     r.ResharedByViewer,
			Media:                mediaByPost[r.PostID],
			PersonalizationScore: r.PersonalizationScore,
		}
		if r.IsReshare && r.ResharerID != nil {
			c.Resharer = &model.CandidateUser{
				ID: *r.ResharerID,
			}
			if r.ResharerUsername != nil {
				c.Resharer.Username = *r.ResharerUsername
			}
			if r.ResharerNickname != nil {
				c.Resharer.Nickname = *r.ResharerNickname
			}
			if r.ResharerAvatar != nil {
				c.Resharer.Avatar = *r.ResharerAvatar
			}
			if r.ResharerVerified != nil {
				c.Resharer.IsVerified = *r.ResharerVerified
			}
		}
		if r.ParentPostID != nil && r.ParentAuthorID != nil {
			snapshot := &model.OriginalPostSnapshot{
				PostID: *r.ParentPostID,
				Author: model.CandidateUser{
					ID: *r.ParentAuthorID,
				},
				Media: mediaByPost[*r.ParentPostID],
			}
			if r.ParentContent != nil {
				snapshot.Content = *r.ParentContent
			}
			if r.ParentCreatedOn != nil {
				snapshot.CreatedOn = *r.ParentCreatedOn
			}
			if r.ParentLikeCount != nil {
				snapshot.LikeCount = *r.ParentLikeCount
			}
			if r.ParentReshareCount != nil {
				snapshot.ReshareCount = *r.ParentReshareCount
			}
			if r.ParentReplyCount != nil {
				snapshot.ReplyCount = *r.ParentReplyCount
			}
			if r.ParentLikedByViewer != nil {
				snapshot.LikedByViewer = *r.ParentLikedByViewer
			}
			if r.ParentResharedByViewer != nil {
				snapshot.ResharedByViewer = *r.ParentResharedByViewer
			}
			if r.ParentAuthorUsername != nil {
				snapshot.Author.Username = *r.ParentAuthorUsername
			}
			if r.ParentAuthorNickname != nil {
				snapshot.Author.Nickname = *r.ParentAuthorNickname
			}
			if r.ParentAuthorAvatar != nil {
				snapshot.Author.Avatar = *r.ParentAuthorAvatar
			}
			if r.ParentAuthorVerified != nil {
				snapshot.Author.IsVerified = *r.ParentAuthorVerified
			}
			c.OriginalPost = snapshot
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}
