package rest

import (
	"ripplenet-backend/internal/model"
)

type UserProfileResp struct {
	ID             int64    `json:"id"`
	Username       string   `json:"username"`
	Nickname       string   `json:"nickname"`
	Avatar         string   `json:"avatar"`
	IsVerified     bool     `json:"is_verified"`
	FollowerCount  int64    `json:"follower_count"`
	FollowingCount int64    `json:"following_count"`
	PostCount      int64    `json:"post_count"`
	Interests      []string `json:"interests"`
}

type LoginResp struct {
	Token string               `json:"token"`
	User  *model.UserFormatted `json:"user"`
}
