package api

import (
	"ripplenet-backend/internal/service"
	"ripplenet-backend/pkg/app"
	"ripplenet-backend/pkg/convert"
	"ripplenet-backend/pkg/errcode"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func GetPost(c *gin.Context) {
	postId := convert.StrTo(c.Query("id")).MustInt64()
	response := app.NewResponse(c)

	postFormatted, err := service.GetPost(postId)
	if err != nil {
		logrus.Errorf("service.GetPost err: %v", err)
		response.ToErrorResponse(errcode.GetPostFailed)
		return
	}
	response.ToResponse(postFormatted)
}

func GetUserPosts(c *gin.Context) {
	userId := convert.StrTo(c.Query("user_id")).MustInt64()
	response := app.NewResponse(c)

	offset, limit := app.GetPageOffset(c)
	posts, total, err := service.GetUserPosts(userId, offset, limit)
	if err != nil {
		logrus.Errorf("service.GetUserPosts err: %v", err)
		response.ToErrorResponse(errcode.GetPostsFailed)
		return
	}
	response.ToResponseList(posts, total)
}

func CreatePost(c *gin.Context) {
	param := service.PostCreationReq{}
	response := app.NewResponse(c)
	valid, errs := app.BindAndValid(c, &param)
	if !valid {
		logrus.Errorf("app.BindAndValid errs: %v", errs)
		response.ToErrorResponse(errcode.InvalidParams.WithDetails(errs.Errors()...))
		return
	}
	user, _ := userFrom(c)

	postFormatted, err := service.CreatePost(user.ID, &param)
	if err != nil {
		logrus.Errorf("service.CreatePost err: %v", err)
		if e, ok := err.(*errcode.Error); ok {
			response.ToErrorResponse(e)
		} else {
			response.ToErrorResponse(errcode.CreatePostFailed)
		}
		return
	}
	response.ToResponse(postFormatted)
}

func DeletePost(c *gin.Context) {
	postId := convert.StrTo(c.Query("id")).MustInt64()
	response := app.NewResponse(c)
	user, _ := userFrom(c)

	if err := service.DeletePost(user.ID, postId); err != nil {
		logrus.Errorf("service.DeletePost err: %v", err)
		if e, ok := err.(*errcode.Error); ok {
			response.ToErrorResponse(e)
		} else {
			response.ToErrorResponse(errcode.DeletePostFailed)
		}
		return
	}
	response.ToResponse(nil)
}

func SetPostSummary(c *gin.Context) {
	param := service.PostSummaryReq{}
	response := app.NewResponse(c)
	valid, errs := app.BindAndValid(c, &param)
	if !valid {
		logrus.Errorf("app.BindAndValid errs: %v", errs)
		response.ToErrorResponse(errcode.InvalidParams.WithDetails(errs.Errors()...))
		return
	}
	user, _ := userFrom(c)

	if err := service.SetPostSummary(user.ID, &param); err != nil {
		logrus.Errorf("service.SetPostSummary err: %v", err)
		if e, ok := err.(*errcode.Error); ok {
			response.ToErrorResponse(e)
		} else {
			response.ToErrorResponse(errcode.SummarizePostFailed)
		}
		return
	}
	response.ToResponse(nil)
}

func LikePost(c *gin.Context) {
	postId := convert.StrTo(c.Query("id")).MustInt64()
	response := app.NewResponse(c)
	user, _ := userFrom(c)

	if err := service.LikePost(user.ID, postId); err != nil {
		logrus.Errorf("service.LikePost err: %v", err)
		response.ToErrorResponse(errcode.LikePostFailed)
		return
	}
	response.ToResponse(nil)
}

func UnlikePost(c *gin.Context) {
	postId := convert.StrTo(c.Query("id")).MustInt64()
	response := app.NewResponse(c)
	user, _ := userFrom(c)

	if err := service.UnlikePost(user.ID, postId); err != nil {
		logrus.Errorf("service.UnlikePost err: %v", err)
		response.ToErrorResponse(errcode.LikePostFailed)
		return
	}
	response.ToResponse(nil)
}

func ResharePost(c *gin.Context) {
	postId := convert.StrTo(c.Query("id")).MustInt64()
	response := app.NewResponse(c)
	user, _ := userFrom(c)

	if err := service.ResharePost(user.ID, postId); err != nil {
		logrus.Errorf("service.ResharePost err: %v", err)
		response.ToErrorResponse(errcode.ResharePostFailed)
		return
	}
	response.ToResponse(nil)
}

func UnresharePost(c *gin.Context) {
	postId := convert.StrTo(c.Query("id")).MustInt64()
	response := app.NewResponse(c)
	user, _ := userFrom(c)

	if err := service.UnresharePost(user.ID, postId); err != nil {
		logrus.Errorf("service.UnresharePost err: %v", err)
		response.ToErrorResponse(errcode.ResharePostFailed)
		return
	}
	response.ToResponse(nil)
}
