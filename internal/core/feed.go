package core

import (
	"ripplenet-backend/internal/model"
)

// FeedSortT ordering mode requested by the caller; latest is only honored
// by the interest variant.
type FeedSortT string

const (
	FeedSortScore  FeedSortT = "score"
	FeedSortLatest FeedSortT = "latest"
)

// FeedCandidateService retrieves one page-bounded, pre-sorted candidate
// list per feed variant, with every feature scoring needs already attached.
type FeedCandidateService interface {
	ForYouCandidates(viewerId int64, offset, limit int) ([]*model.CandidatePost, error)
	FollowingCandidates(viewerId int64, offset, limit int) ([]*model.CandidatePost, error)
	InterestCandidates(viewerId int64, interestNames []string, sortBy FeedSortT, offset, limit int) ([]*model.CandidatePost, error)
}
