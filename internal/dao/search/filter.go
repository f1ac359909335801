package search

import (
	"ripplenet-backend/internal/core"
	"ripplenet-backend/internal/model"
)

type postSearchFilter struct{}

// filterResp drops anything a public search must never surface; the index
// may briefly lag deletions and visibility flips.
func (s *postSearchFilter) filterResp(resp *core.QueryResp) {
	var item *model.PostFormatted
	items := resp.Items
	latestIndex := len(items) - 1
	for i := 0; i <= latestIndex; i++ {
		item = items[i]
		if item.Visibility != model.PostVisitPublic {
			items[i] = items[latestIndex]
			items = items[:latestIndex]
			resp.Total--
			latestIndex--
			i--
		}
	}
	resp.Items = items
}
