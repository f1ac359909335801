package search

import (
	"ripplenet-backend/internal/core"
	"ripplenet-backend/pkg/json"

	"github.com/Masterminds/semver/v3"
	"github.com/meilisearch/meilisearch-go"
	"github.com/sirupsen/logrus"
)

var (
	_ core.PostSearchService = (*meiliPostSearchServant)(nil)
	_ core.VersionInfo       = (*meiliPostSearchServant)(nil)
)

type meiliPostSearchServant struct {
	postSearchFilter

	client *meilisearch.Client
	index  *meilisearch.Index
}

func (s *meiliPostSearchServant) Name() string {
	return "Meili"
}

func (s *meiliPostSearchServant) Version() *semver.Version {
	return semver.MustParse("v0.2.0")
}

func (s *meiliPostSearchServant) IndexName() string {
	return s.index.UID
}

func (s *meiliPostSearchServant) AddDocuments(data core.DocItems, primaryKey ...string) (bool, error) {
	if len(data) == 0 {
		return true, nil
	}
	if _, err := s.index.AddDocuments(data, primaryKey...); err != nil {
		logrus.Errorf("meiliPostSearchServant.AddDocuments error: %s", err)
		return false, err
	}
	return true, nil
}

func (s *meiliPostSearchServant) DeleteDocuments(identifiers []string) error {
	task, err := s.index.DeleteDocuments(identifiers)
	if err != nil {
		logrus.Errorf("meiliPostSearchServant.DeleteDocuments error: %s", err)
		return err
	}
	logrus.Debugf("meiliPostSearchServant.DeleteDocuments task: (taskUID:%d, indexUID:%s, status:%s)", task.TaskUID, task.IndexUID, task.Status)
	return nil
}

func (s *meiliPostSearchServant) Search(q *core.QueryReq, offset, limit int) (resp *core.QueryResp, err error) {
	if q.Tag != "" {
		resp, err = s.queryByTag(q, offset, limit)
	} else {
		resp, err = s.queryByContent(q, offset, limit)
	}
	if err != nil {
		logrus.Errorf("meiliPostSearchServant.Search query:%s tag:%s error:%v", q.Query, q.Tag, err)
		return
	}

	logrus.Debugf("meiliPostSearchServant.Search query:%s resp Hits:%d NbHits:%d offset:%d limit:%d", q.Query, len(resp.Items), resp.Total, offset, limit)
	s.filterResp(resp)
	return
}

func (s *meiliPostSearchServant) queryByContent(q *core.QueryReq, offset, limit int) (*core.QueryResp, error) {
	request := &meilisearch.SearchRequest{
		Offset: int64(offset),
		Limit:  int64(limit),
		Sort:   []string{"created_on:desc"},
		Filter: publicFilter(),
	}

	resp, err := s.index.Search(q.Query, request)
	if err != nil {
		return nil, err
	}
	return s.postsFrom(resp)
}

func (s *meiliPostSearchServant) queryByTag(q *core.QueryReq, offset, limit int) (*core.QueryResp, error) {
	request := &meilisearch.SearchRequest{
		Offset: int64(offset),
		Limit:  int64(limit),
		Sort:   []string{"created_on:desc"},
		Filter: [][]string{{"tags = " + q.Tag}, {publicFilter()}},
	}

	resp, err := s.index.Search("#"+q.Tag, request)
	if err != nil {
		return nil, err
	}
	return s.postsFrom(resp)
}

func (s *meiliPostSearchServant) postsFrom(resp *meilisearch.SearchResponse) (*core.QueryResp, error) {
	posts := make([]*core.PostFormatted, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		item := &core.PostFormatted{}
		raw, err := json.Marshal(hit)
		if err != nil {
			return nil, err
		}
		if err = json.Unmarshal(raw, item); err != nil {
			return nil, err
		}
		posts = append(posts, item)
	}

	return &core.QueryResp{
		Items: posts,
		Total: resp.TotalHits,
	}, nil
}
