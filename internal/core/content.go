package core

import (
	"ripplenet-backend/internal/model"
)

type ContentService interface {
	GetPostByID(id int64) (*model.Post, error)
	GetPosts(conditions *model.ConditionsT, offset, limit int) ([]*model.Post, error)
	GetPostCount(conditions *model.ConditionsT) (int64, error)
	GetPostMediaByIDs(ids []int64) ([]*model.PostMedia, error)
	GetUserPostLike(postID, userID int64) (*model.PostLike, error)
	GetUserReshare(postID, userID int64) (*model.Reshare, error)
}

type ContentManageService interface {
	CreatePost(post *model.Post, media []*model.PostMedia, hashtags []string, mentionIds []int64) (*model.Post, error)
	DeletePost(post *model.Post) error
	UpdatePost(post *model.Post) error
	CreatePostLike(postID, userID int64) (*model.PostLike, error)
	DeletePostLike(like *model.PostLike) error
	CreateReshare(postID, userID int64) (*model.Reshare, error)
	DeleteReshare(reshare *model.Reshare) error
}

type ContentHelpService interface {
	MergePosts(posts []*model.Post) ([]*model.PostFormatted, error)
}
