package service

import (
	"context"
	"errors"
	"sort"

	"ripplenet-backend/internal/core"
	"ripplenet-backend/internal/model"
	"ripplenet-backend/internal/model/rest"

	"github.com/sirupsen/logrus"
)

// Blend weights for the hybrid ranker. Personalization dominates by design
// of the product: quality only breaks near-ties.
const (
	qualityWeight         = 0.3
	personalizationWeight = 0.7
)

var errQualityServiceUnset = errors.New("quality score service not initialized")

func pageOffset(page, limit int) int {
	if page <= 0 {
		page = 1
	}
	return (page - 1) * limit
}

func GetForYouFeed(ctx context.Context, viewerId int64, page, limit int) (*rest.FeedResp, error) {
	offset := pageOffset(page, limit)
	candidates, err := ds.ForYouCandidates(viewerId, offset, limit)
	if err != nil {
		logrus.Errorf("service.GetForYouFeed retrieve candidates err: %v", err)
		return nil, err
	}
	return rankFeed(ctx, qualityGateway, candidates)
}

func GetFollowingFeed(ctx context.Context, viewerId int64, page, limit int) (*rest.FeedResp, error) {
	offset := pageOffset(page, limit)
	candidates, err := ds.FollowingCandidates(viewerId, offset, limit)
	if err != nil {
		logrus.Errorf("service.GetFollowingFeed retrieve candidates err: %v", err)
		return nil, err
	}
	return rankFeed(ctx, qualityGateway, candidates)
}

func GetInterestFeed(ctx context.Context, viewerId int64, interestNames []string, sortBy core.FeedSortT, page, limit int) (*rest.FeedResp, error) {
	offset := pageOffset(page, limit)
	candidates, err := ds.InterestCandidates(viewerId, interestNames, sortBy, offset, limit)
	if err != nil {
		logrus.Errorf("service.GetInterestFeed retrieve candidates err: %v", err)
		return nil, err
	}
	if sortBy == core.FeedSortLatest {
		return passthroughFeed(candidates), nil
	}
	return rankFeed(ctx, qualityGateway, candidates)
}

// rankFeed blends quality into the retrieval scores and re-orders the page.
// An empty page short-circuits before the scoring client is ever touched.
//
// TODO: over-fetch 3x the page size before blending so a high-quality
// candidate just below the personalization cutoff can still make the page.
func rankFeed(ctx context.Context, qss core.QualityScoreService, candidates []*model.CandidatePost) (*rest.FeedResp, error) {
	if len(candidates) == 0 {
		return &rest.FeedResp{Posts: []*rest.FeedItem{}}, nil
	}
	if qss == nil {
		return nil, errQualityServiceUnset
	}

	scores := qss.ScorePosts(ctx, buildFeatureRecords(candidates))

	scored := make([]*model.ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		// missing entries mean "no quality signal", scored as zero
		qualityScore := scores[c.PostID]
		scored = append(scored, &model.ScoredCandidate{
			CandidatePost: c,
			QualityScore:  qualityScore,
			FinalScore:    qualityScore*qualityWeight + c.PersonalizationScore*personalizationWeight,
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].FinalScore > scored[j].FinalScore
	})

	return shapeFeed(scored), nil
}

// passthroughFeed keeps retrieval order and leaves the quality blend unset.
func passthroughFeed(candidates []*model.CandidatePost) *rest.FeedResp {
	scored := make([]*model.ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		scored = append(scored, &model.ScoredCandidate{
			CandidatePost: c,
		})
	}
	return shapeFeed(scored)
}

func buildFeatureRecords(candidates []*model.CandidatePost) []core.QualityFeatureRecord {
	records := make([]core.QualityFeatureRecord, 0, len(candidates))
	for _, c := range candidates {
		records = append(records, core.QualityFeatureRecord{
			PostID:        c.PostID,
			ContentLength: len(c.Content),
			HasMedia:      c.HasMedia,
			HashtagCount:  c.HashtagCount,
			MentionCount:  c.MentionCount,
			Author: core.QualityAuthorRecord{
				FollowersCount:     c.AuthorStats.FollowerCount,
				FollowingCount:     c.AuthorStats.FollowingCount,
				PublishedPostCount: c.AuthorStats.PostCount,
				IsVerified:         c.Author.IsVerified,
			},
		})
	}
	return records
}

func shapeFeed(scored []*model.ScoredCandidate) *rest.FeedResp {
	items := make([]*rest.FeedItem, 0, len(scored))
	for _, sc := range scored {
		items = append(items, shapeFeedItem(sc))
	}
	return &rest.FeedResp{Posts: items}
}

// shapeFeedItem resolves the repost/quote/original display rules. A simple
// reshare promotes the resharer's identity and bares out the top-level card;
// a quote keeps the quoting author on top and describes the quoted parent in
// original_post_data.
func shapeFeedItem(sc *model.ScoredCandidate) *rest.FeedItem {
	c := sc.CandidatePost
	isQuote := c.Kind == model.PostKindQuote && c.ParentID != nil
	isSimpleReshare := c.IsReshare && !isQuote

	item := &rest.FeedItem{
		PostID:      c.PostID,
		Kind:        c.Kind,
		CreatedOn:   c.CreatedOn,
		EffectiveOn: c.EffectiveOn,

		IsReshare: c.IsReshare,
		IsQuote:   isQuote,

		LikeCount:    c.LikeCount,
		ReshareCount: c.ReshareCount,
		ReplyCount:   c.ReplyCount,
		QuoteCount:   c.QuoteCount,

		LikedByViewer:    c.LikedByViewer,
		FollowsAuthor:    c.FollowsAuthor,
		ResharedByViewer: c.ResharedByViewer,

		AuthorStats: c.AuthorStats,

		PersonalizationScore: c.PersonalizationScore,
		QualityScore:         sc.QualityScore,
		FinalScore:           sc.FinalScore,
	}

	author := feedUserFrom(&c.Author)
	if isSimpleReshare {
		item.User = feedUserFrom(c.Resharer)
		if item.User == nil {
			item.User = author
		}
		item.Content = ""
		item.Media = []*model.PostMedia{}
		item.OriginalPostData = &rest.OriginalPostData{
			PostID:           c.PostID,
			User:             author,
			Content:          c.Content,
			CreatedOn:        c.CreatedOn,
			LikeCount:        c.LikeCount,
			ReshareCount:     c.ReshareCount,
			ReplyCount:       c.ReplyCount,
			LikedByViewer:    c.LikedByViewer,
			ResharedByViewer: c.ResharedByViewer,
			Media:            mediaOrEmpty(c.Media),
		}
		return item
	}

	item.User = author
	item.Content = c.Content
	item.Media = mediaOrEmpty(c.Media)
	if isQuote && c.OriginalPost != nil {
		parent := c.OriginalPost
		item.OriginalPostData = &rest.OriginalPostData{
			PostID:           parent.PostID,
			User:             feedUserFrom(&parent.Author),
			Content:          parent.Content,
			CreatedOn:        parent.CreatedOn,
			LikeCount:        parent.LikeCount,
			ReshareCount:     parent.ReshareCount,
			ReplyCount:       parent.ReplyCount,
			LikedByViewer:    parent.LikedByViewer,
			ResharedByViewer: parent.ResharedByViewer,
			Media:            mediaOrEmpty(parent.Media),
		}
	}
	return item
}

func feedUserFrom(u *model.CandidateUser) *rest.FeedUser {
	if u == nil {
		return nil
	}
	return &rest.FeedUser{
		ID:         u.ID,
		Username:   u.Username,
		Nickname:   u.Nickname,
		Avatar:     u.Avatar,
		IsVerified: u.IsVerified,
	}
}

func mediaOrEmpty(media []*model.PostMedia) []*model.PostMedia {
	if media == nil {
		return []*model.PostMedia{}
	}
	return media
}
