package search

import (
	"fmt"

	"ripplenet-backend/internal/conf"
	"ripplenet-backend/internal/core"
	"ripplenet-backend/internal/model"

	"github.com/meilisearch/meilisearch-go"
	"github.com/sirupsen/logrus"
)

func publicFilter() string {
	return fmt.Sprintf("visibility = %d", model.PostVisitPublic)
}

func NewMeiliPostSearchService() (core.PostSearchService, core.VersionInfo) {
	s := conf.MeiliSetting
	client := meilisearch.NewClient(meilisearch.ClientConfig{
		Host:   s.Endpoint(),
		APIKey: s.ApiKey,
	})

	if _, err := client.Index(s.Index).FetchInfo(); err != nil {
		logrus.Debugf("create index because fetch index info error: %v", err)
		client.CreateIndex(&meilisearch.IndexConfig{
			Uid:        s.Index,
			PrimaryKey: "id",
		})
		searchableAttributes := []string{"content", "tags"}
		sortableAttributes := []string{"created_on"}
		filterableAttributes := []string{"tags", "user_id", "visibility"}

		index := client.Index(s.Index)
		index.UpdateSearchableAttributes(&searchableAttributes)
		index.UpdateSortableAttributes(&sortableAttributes)
		index.UpdateFilterableAttributes(&filterableAttributes)
	}

	mps := &meiliPostSearchServant{
		client: client,
		index:  client.Index(s.Index),
	}
	return mps, mps
}

func NewBridgePostSearchService(ps core.PostSearchService) core.PostSearchService {
	bps := &bridgePostSearchServant{
		ps:           ps,
		updateDocsCh: make(chan *documents, 100),
	}

	numWorker := 5
	logrus.Debugf("use %d backend worker to update documents to search engine", numWorker)
	for ; numWorker > 0; numWorker-- {
		go bps.startUpdateDocs()
	}

	return bps
}
