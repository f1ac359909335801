package search

import (
	"ripplenet-backend/internal/core"

	"github.com/sirupsen/logrus"
)

var (
	_ core.PostSearchService = (*bridgePostSearchServant)(nil)
)

type documents struct {
	primaryKey  []string
	docItems    core.DocItems
	identifiers []string
}

// bridgePostSearchServant makes index writes asynchronous so request paths
// never wait on the search engine.
type bridgePostSearchServant struct {
	ps           core.PostSearchService
	updateDocsCh chan *documents
}

func (s *bridgePostSearchServant) IndexName() string {
	return s.ps.IndexName()
}

func (s *bridgePostSearchServant) AddDocuments(data core.DocItems, primaryKey ...string) (bool, error) {
	s.updateDocs(&documents{
		primaryKey: primaryKey,
		docItems:   data,
	})
	return true, nil
}

func (s *bridgePostSearchServant) DeleteDocuments(identifiers []string) error {
	s.updateDocs(&documents{
		identifiers: identifiers,
	})
	return nil
}

func (s *bridgePostSearchServant) Search(q *core.QueryReq, offset, limit int) (*core.QueryResp, error) {
	return s.ps.Search(q, offset, limit)
}

func (s *bridgePostSearchServant) updateDocs(doc *documents) {
	select {
	case s.updateDocsCh <- doc:
		logrus.Debugln("bridgePostSearchServant.updateDocs send documents by chan")
	default:
		go func(ch chan<- *documents, doc *documents) {
			logrus.Debugln("bridgePostSearchServant.updateDocs send documents by goroutine")
			ch <- doc
		}(s.updateDocsCh, doc)
	}
}

func (s *bridgePostSearchServant) startUpdateDocs() {
	for doc := range s.updateDocsCh {
		if len(doc.docItems) > 0 {
			if _, err := s.ps.AddDocuments(doc.docItems, doc.primaryKey...); err != nil {
				logrus.Errorf("bridgePostSearchServant.startUpdateDocs add documents error: %v", err)
			}
		} else if len(doc.identifiers) > 0 {
			if err := s.ps.DeleteDocuments(doc.identifiers); err != nil {
				logrus.Errorf("bridgePostSearchServant.startUpdateDocs delete documents error: %v", err)
			}
		}
	}
}
