package core

type (
	SearchType string

	QueryReq struct {
		Query string
		Tag   string
	}

	QueryResp struct {
		Items []*PostFormatted
		Total int64
	}
)

const (
	SearchTypeDefault SearchType = "search"
	SearchTypeTag     SearchType = "tag"
)

type DocItems []map[string]interface{}

// PostSearchService post search service interface
type PostSearchService interface {
	IndexName() string
	AddDocuments(documents DocItems, primaryKey ...string) (bool, error)
	DeleteDocuments(identifiers []string) error
	Search(q *QueryReq, offset, limit int) (*QueryResp, error)
}
