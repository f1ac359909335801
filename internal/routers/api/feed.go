package api

import (
	"strings"

	"ripplenet-backend/internal/core"
	"ripplenet-backend/internal/service"
	"ripplenet-backend/pkg/app"
	"ripplenet-backend/pkg/errcode"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func GetForYouFeed(c *gin.Context) {
	response := app.NewResponse(c)
	user, exist := userFrom(c)
	if !exist {
		response.ToErrorResponse(errcode.UnauthorizedAuthNotExist)
		return
	}

	resp, err := service.GetForYouFeed(c, user.ID, app.GetPage(c), app.GetPageSize(c))
	if err != nil {
		logrus.Errorf("service.GetForYouFeed err: %v", err)
		response.ToErrorResponse(errcode.GetFeedFailed)
		return
	}
	response.ToResponse(resp)
}

func GetFollowingFeed(c *gin.Context) {
	response := app.NewResponse(c)
	user, exist := userFrom(c)
	if !exist {
		response.ToErrorResponse(errcode.UnauthorizedAuthNotExist)
		return
	}

	resp, err := service.GetFollowingFeed(c, user.ID, app.GetPage(c), app.GetPageSize(c))
	if err != nil {
		logrus.Errorf("service.GetFollowingFeed err: %v", err)
		response.ToErrorResponse(errcode.GetFeedFailed)
		return
	}
	response.ToResponse(resp)
}

// GetInterestFeed serves explore. Interests default to the viewer's saved
// selection when the query leaves them out; sort_by=latest bypasses ranking.
func GetInterestFeed(c *gin.Context) {
	response := app.NewResponse(c)
	user, exist := userFrom(c)
	if !exist {
		response.ToErrorResponse(errcode.UnauthorizedAuthNotExist)
		return
	}

	var interestNames []string
	if interests := c.Query("interests"); interests != "" {
		interestNames = strings.Split(interests, ",")
	} else {
		var err error
		if interestNames, err = service.GetUserInterests(user.ID); err != nil {
			logrus.Errorf("service.GetUserInterests err: %v", err)
			response.ToErrorResponse(errcode.GetFeedFailed)
			return
		}
	}

	sortBy := core.FeedSortScore
	if c.Query("sort_by") == string(core.FeedSortLatest) {
		sortBy = core.FeedSortLatest
	}

	resp, err := service.GetInterestFeed(c, user.ID, interestNames, sortBy, app.GetPage(c), app.GetPageSize(c))
	if err != nil {
		logrus.Errorf("service.GetInterestFeed err: %v", err)
		response.ToErrorResponse(errcode.RankFeedFailed)
		return
	}
	response.ToResponse(resp)
}
