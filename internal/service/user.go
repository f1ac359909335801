package service

import (
	"context"
	"fmt"
	"time"

	"ripplenet-backend/internal/conf"
	"ripplenet-backend/internal/model"
	"ripplenet-backend/internal/model/rest"
	"ripplenet-backend/pkg/app"
	"ripplenet-backend/pkg/errcode"
	"ripplenet-backend/pkg/json"

	"github.com/gin-gonic/gin"
)

const sessionLifetime = 7 * 24 * time.Hour

type LoginReq struct {
	Username string `json:"username" form:"username" binding:"required"`
}

type RegisterReq struct {
	Username string `json:"username" form:"username" binding:"required"`
	Nickname string `json:"nickname" form:"nickname"`
}

type ChangeNicknameReq struct {
	Nickname string `json:"nickname" form:"nickname" binding:"required"`
}

type ChangeAvatarReq struct {
	Avatar string `json:"avatar" form:"avatar" binding:"required"`
}

// DoLogin issues a session token for an existing account. Credentials live
// upstream: the trusted gateway has already authenticated the caller.
func DoLogin(ctx *gin.Context, param *LoginReq) (*rest.LoginResp, error) {
	user, err := ds.GetUserByUsername(param.Username)
	if err != nil {
		return nil, errcode.NoExistUsername
	}

	token, err := app.GenerateToken()
	if err != nil {
		return nil, errcode.UnauthorizedTokenGenerate
	}
	session := &app.Session{
		ID:       token,
		UserID:   user.ID,
		Username: user.Username,
	}
	raw, err := json.Marshal(session)
	if err != nil {
		return nil, err
	}
	if err = conf.Redis.Set(ctx, sessionKey(token), raw, sessionLifetime).Err(); err != nil {
		return nil, err
	}

	return &rest.LoginResp{
		Token: token,
		User:  user.Format(),
	}, nil
}

func Logout(ctx context.Context, token string) error {
	return conf.Redis.Del(ctx, sessionKey(token)).Err()
}

func Register(param *RegisterReq) (*model.User, error) {
	if len(param.Username) < 3 || len(param.Username) > 24 {
		return nil, errcode.UsernameLengthErr
	}
	if _, err := ds.GetUserByUsername(param.Username); err == nil {
		return nil, errcode.UsernameTaken
	}

	nickname := param.Nickname
	if nickname == "" {
		nickname = param.Username
	}
	user := &model.User{
		Model:    &model.Model{},
		Username: param.Username,
		Nickname: nickname,
	}
	return ds.CreateUser(user)
}

func GetUserProfile(userId int64) (*rest.UserProfileResp, error) {
	return ups.GetUserProfile(userId)
}

func ChangeNickname(user *model.User, nickname string) error {
	user.Nickname = nickname
	return ds.UpdateUser(user)
}

func ChangeAvatar(user *model.User, avatar string) error {
	user.Avatar = avatar
	return ds.UpdateUser(user)
}

func FollowUser(userId, followId int64) error {
	if userId == followId {
		return errcode.FollowUserFailed
	}
	if _, err := ds.GetUserByID(followId); err != nil {
		return errcode.NoExistUsername
	}
	if ds.IsBlocked(followId, userId) || ds.IsBlocked(userId, followId) {
		return errcode.FollowUserFailed
	}
	return ds.FollowUser(userId, followId)
}

func UnfollowUser(userId, followId int64) error {
	return ds.UnfollowUser(userId, followId)
}

func BlockUser(userId, blockId int64) error {
	if userId == blockId {
		return errcode.BlockUserFailed
	}
	if _, err := ds.GetUserByID(blockId); err != nil {
		return errcode.NoExistUsername
	}
	return ds.BlockUser(userId, blockId)
}

func UnblockUser(userId, blockId int64) error {
	return ds.UnblockUser(userId, blockId)
}

func MuteUser(userId, muteId int64) error {
	if userId == muteId {
		return errcode.MuteUserFailed
	}
	if _, err := ds.GetUserByID(muteId); err != nil {
		return errcode.NoExistUsername
	}
	return ds.MuteUser(userId, muteId)
}

func UnmuteUser(userId, muteId int64) error {
	return ds.UnmuteUser(userId, muteId)
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}
