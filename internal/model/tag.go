package model

import (
	"gorm.io/gorm"
)

type PostHashtag struct {
	*Model
	PostID int64  `json:"post_id"`
	Tag    string `json:"tag"`
}

type PostMention struct {
	*Model
	PostID int64 `json:"post_id"`
	UserID int64 `json:"user_id"`
}

func (t *PostHashtag) Create(db *gorm.DB) (*PostHashtag, error) {
	err := db.Create(&t).Error

	return t, err
}

func (t *PostHashtag) DeleteByPostId(db *gorm.DB, postId int64) error {
	return db.Model(&PostHashtag{}).Where("post_id = ?", postId).Delete(&PostHashtag{}).Error
}

func (m *PostMention) Create(db *gorm.DB) (*PostMention, error) {
	err := db.Create(&m).Error

	return m, err
}

func (m *PostMention) DeleteByPostId(db *gorm.DB, postId int64) error {
	return db.Model(&PostMention{}).Where("post_id = ?", postId).Delete(&PostMention{}).Error
}
