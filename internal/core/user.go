package core

import (
	"ripplenet-backend/internal/model"
)

type UserManageService interface {
	GetUserByID(id int64) (*model.User, error)
	GetUserByUsername(username string) (*model.User, error)
	GetUsersByIDs(ids []int64) ([]*model.User, error)
	CreateUser(user *model.User) (*model.User, error)
	UpdateUser(user *model.User) error
	GetUserStats(userID int64) (*model.AuthorStats, error)
}

type ContactManageService interface {
	FollowUser(userId, followId int64) error
	UnfollowUser(userId, followId int64) error
	IsFollowing(userId, followId int64) bool
	BlockUser(userId, blockId int64) error
	UnblockUser(userId, blockId int64) error
	IsBlocked(userId, blockId int64) bool
	MuteUser(userId, muteId int64) error
	UnmuteUser(userId, muteId int64) error
}
