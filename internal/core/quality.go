package core

import (
	"context"

	"ripplenet-backend/pkg/quality"
)

type (
	QualityFeatureRecord = quality.PostRecord
	QualityAuthorRecord  = quality.AuthorRecord
)

// QualityScoreService scores a candidate page in one batched call. An empty
// input never reaches the wire, and transport failures degrade to an empty
// mapping: callers treat a missing entry as "no quality signal", not as an
// error.
type QualityScoreService interface {
	ScorePosts(ctx context.Context, records []QualityFeatureRecord) map[int64]float64
}
