package api

import (
	"ripplenet-backend/internal/service"
	"ripplenet-backend/pkg/app"
	"ripplenet-backend/pkg/convert"
	"ripplenet-backend/pkg/errcode"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func Register(c *gin.Context) {
	param := service.RegisterReq{}
	response := app.NewResponse(c)
	valid, errs := app.BindAndValid(c, &param)
	if !valid {
		logrus.Errorf("app.BindAndValid errs: %v", errs)
		response.ToErrorResponse(errcode.InvalidParams.WithDetails(errs.Errors()...))
		return
	}

	user, err := service.Register(&param)
	if err != nil {
		logrus.Errorf("service.Register err: %v", err)
		if e, ok := err.(*errcode.Error); ok {
			response.ToErrorResponse(e)
		} else {
			response.ToErrorResponse(errcode.ServerError)
		}
		return
	}
	response.ToResponse(user.Format())
}

func Login(c *gin.Context) {
	param := service.LoginReq{}
	response := app.NewResponse(c)
	valid, errs := app.BindAndValid(c, &param)
	if !valid {
		logrus.Errorf("app.BindAndValid errs: %v", errs)
		response.ToErrorResponse(errcode.InvalidParams.WithDetails(errs.Errors()...))
		return
	}

	resp, err := service.DoLogin(c, &param)
	if err != nil {
		logrus.Errorf("service.DoLogin err: %v", err)
		if e, ok := err.(*errcode.Error); ok {
			response.ToErrorResponse(e)
		} else {
			response.ToErrorResponse(errcode.UnauthorizedAuthFailed)
		}
		return
	}
	response.ToResponse(resp)
}

func Logout(c *gin.Context) {
	response := app.NewResponse(c)
	if err := service.Logout(c, c.GetHeader("X-Session-Token")); err != nil {
		logrus.Errorf("service.Logout err: %v", err)
		response.ToErrorResponse(errcode.ServerError)
		return
	}
	response.ToResponse(nil)
}

func GetUserInfo(c *gin.Context) {
	response := app.NewResponse(c)
	user, exist := userFrom(c)
	if !exist {
		response.ToErrorResponse(errcode.UnauthorizedAuthNotExist)
		return
	}
	response.ToResponse(user.Format())
}

func GetUserProfile(c *gin.Context) {
	userId := convert.StrTo(c.Query("user_id")).MustInt64()
	response := app.NewResponse(c)

	profile, err := service.GetUserProfile(userId)
	if err != nil {
		logrus.Errorf("service.GetUserProfile err: %v", err)
		response.ToErrorResponse(errcode.GetUserFailed)
		return
	}
	response.ToResponse(profile)
}

func ChangeNickname(c *gin.Context) {
	param := service.ChangeNicknameReq{}
	response := app.NewResponse(c)
	valid, errs := app.BindAndValid(c, &param)
	if !valid {
		logrus.Errorf("app.BindAndValid errs: %v", errs)
		response.ToErrorResponse(errcode.InvalidParams.WithDetails(errs.Errors()...))
		return
	}
	user, _ := userFrom(c)

	if err := service.ChangeNickname(user, param.Nickname); err != nil {
		logrus.Errorf("service.ChangeNickname err: %v", err)
		response.ToErrorResponse(errcode.ServerError)
		return
	}
	response.ToResponse(nil)
}

func ChangeAvatar(c *gin.Context) {
	param := service.ChangeAvatarReq{}
	response := app.NewResponse(c)
	valid, errs := app.BindAndValid(c, &param)
	if !valid {
		logrus.Errorf("app.BindAndValid errs: %v", errs)
		response.ToErrorResponse(errcode.InvalidParams.WithDetails(errs.Errors()...))
		return
	}
	user, _ := userFrom(c)

	if err := service.ChangeAvatar(user, param.Avatar); err != nil {
		logrus.Errorf("service.ChangeAvatar err: %v", err)
		response.ToErrorResponse(errcode.ServerError)
		return
	}
	response.ToResponse(nil)
}

func FollowUser(c *gin.Context) {
	followId := convert.StrTo(c.Query("user_id")).MustInt64()
	response := app.NewResponse(c)
	user, _ := userFrom(c)

	if err := service.FollowUser(user.ID, followId); err != nil {
		logrus.Errorf("service.FollowUser err: %v", err)
		response.ToErrorResponse(errcode.FollowUserFailed)
		return
	}
	response.ToResponse(nil)
}

func UnfollowUser(c *gin.Context) {
	followId := convert.StrTo(c.Query("user_id")).MustInt64()
	response := app.NewResponse(c)
	user, _ := userFrom(c)

	if err := service.UnfollowUser(user.ID, followId); err != nil {
		logrus.Errorf("service.UnfollowUser err: %v", err)
		response.ToErrorResponse(errcode.UnfollowUserFailed)
		return
	}
	response.ToResponse(nil)
}

func BlockUser(c *gin.Context) {
	blockId := convert.StrTo(c.Query("user_id")).MustInt64()
	response := app.NewResponse(c)
	user, _ := userFrom(c)

	if err := service.BlockUser(user.ID, blockId); err != nil {
		logrus.Errorf("service.BlockUser err: %v", err)
		response.ToErrorResponse(errcode.BlockUserFailed)
		return
	}
	response.ToResponse(nil)
}

func UnblockUser(c *gin.Context) {
	blockId := convert.StrTo(c.Query("user_id")).MustInt64()
	response := app.NewResponse(c)
	user, _ := userFrom(c)

	if err := service.UnblockUser(user.ID, blockId); err != nil {
		logrus.Errorf("service.UnblockUser err: %v", err)
		response.ToErrorResponse(errcode.BlockUserFailed)
		return
	}
	response.ToResponse(nil)
}

func MuteUser(c *gin.Context) {
	muteId := convert.StrTo(c.Query("user_id")).MustInt64()
	response := app.NewResponse(c)
	user, _ := userFrom(c)

	if err := service.MuteUser(user.ID, muteId); err != nil {
		logrus.Errorf("service.MuteUser err: %v", err)
		response.ToErrorResponse(errcode.MuteUserFailed)
		return
	}
	response.ToResponse(nil)
}

func UnmuteUser(c *gin.Context) {
	muteId := convert.StrTo(c.Query("user_id")).MustInt64()
	response := app.NewResponse(c)
	user, _ := userFrom(c)

	if err := service.UnmuteUser(user.ID, muteId); err != nil {
		logrus.Errorf("service.UnmuteUser err: %v", err)
		response.ToErrorResponse(errcode.MuteUserFailed)
		return
	}
	response.ToResponse(nil)
}
