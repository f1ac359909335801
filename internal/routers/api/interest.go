package api

import (
	"ripplenet-backend/internal/service"
	"ripplenet-backend/pkg/app"
	"ripplenet-backend/pkg/errcode"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type setInterestsReq struct {
	Interests []string `json:"interests" binding:"required"`
}

func GetInterests(c *gin.Context) {
	response := app.NewResponse(c)

	interests, err := service.GetInterests()
	if err != nil {
		logrus.Errorf("service.GetInterests err: %v", err)
		response.ToErrorResponse(errcode.GetInterestsFailed)
		return
	}
	response.ToResponse(interests)
}

func GetUserInterests(c *gin.Context) {
	response := app.NewResponse(c)
	user, _ := userFrom(c)

	names, err := service.GetUserInterests(user.ID)
	if err != nil {
		logrus.Errorf("service.GetUserInterests err: %v", err)
		response.ToErrorResponse(errcode.GetInterestsFailed)
		return
	}
	response.ToResponse(names)
}

func SetUserInterests(c *gin.Context) {
	param := setInterestsReq{}
	response := app.NewResponse(c)
	valid, errs := app.BindAndValid(c, &param)
	if !valid {
		logrus.Errorf("app.BindAndValid errs: %v", errs)
		response.ToErrorResponse(errcode.InvalidParams.WithDetails(errs.Errors()...))
		return
	}
	user, _ := userFrom(c)

	if err := service.SetUserInterests(user.ID, param.Interests); err != nil {
		logrus.Errorf("service.SetUserInterests err: %v", err)
		response.ToErrorResponse(errcode.SetInterestsFailed)
		return
	}
	response.ToResponse(nil)
}
