package api

import (
	"ripplenet-backend/internal/core"
	"ripplenet-backend/internal/service"
	"ripplenet-backend/pkg/app"
	"ripplenet-backend/pkg/errcode"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func SearchPosts(c *gin.Context) {
	response := app.NewResponse(c)

	q := &core.QueryReq{
		Query: c.Query("query"),
		Tag:   c.Query("tag"),
	}
	offset, limit := app.GetPageOffset(c)

	resp, err := service.SearchPosts(q, offset, limit)
	if err != nil {
		logrus.Errorf("service.SearchPosts err: %v", err)
		response.ToErrorResponse(errcode.SearchPostsFailed)
		return
	}
	response.ToResponseList(resp.Items, resp.Total)
}
