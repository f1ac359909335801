package quality

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// Gateway talks to the external quality scoring model. Scoring is advisory:
// any transport, status or decode failure degrades to an empty mapping so
// feed requests never fail on the scorer's account.
type Gateway struct {
	baseUrl string
	client  *resty.Client
}

func New(baseUrl string, timeout time.Duration) *Gateway {
	return &Gateway{
		baseUrl: strings.TrimRight(baseUrl, "/"),
		client:  resty.New().SetTimeout(timeout),
	}
}

func (g *Gateway) ScorePosts(ctx context.Context, records []PostRecord) map[int64]float64 {
	scores := make(map[int64]float64, len(records))
	if len(records) == 0 {
		return scores
	}

	var result scoreResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("accept", "application/json").
		SetBody(&scoreRequest{Posts: records}).
		SetResult(&result).
		Post(g.baseUrl + "/v1/scores")
	if err != nil {
		logrus.Errorf("quality.ScorePosts request error: %v", err)
		return scores
	}
	if resp.StatusCode() != http.StatusOK {
		logrus.Errorf("quality.ScorePosts status: %s", resp.Status())
		return scores
	}

	for _, item := range result.RankedPosts {
		scores[item.PostID] = item.QualityScore
	}
	return scores
}
