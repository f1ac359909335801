package service

import (
	"ripplenet-backend/internal/core"
)

func SearchPosts(q *core.QueryReq, offset, limit int) (*core.QueryResp, error) {
	return ps.Search(q, offset, limit)
}
