package model

import (
	"gorm.io/gorm"
)

// MediaT attachment type, 1 image, 2 video, 3 audio
type MediaT uint8

const (
	MediaImage MediaT = iota + 1
	MediaVideo
	MediaAudio
)

type PostMedia struct {
	*Model
	PostID int64  `json:"post_id"`
	URL    string `json:"url"`
	Type   MediaT `json:"type"`
}

func (m *PostMedia) Create(db *gorm.DB) (*PostMedia, error) {
	err := db.Create(&m).Error

	return m, err
}

func (m *PostMedia) ListByPostIDs(db *gorm.DB, ids []int64) ([]*PostMedia, error) {
	var media []*PostMedia
	if len(ids) == 0 {
		return media, nil
	}
	if err := db.Where("post_id IN ?", ids).Order("id ASC").Find(&media).Error; err != nil {
		return nil, err
	}
	return media, nil
}

func (m *PostMedia) DeleteByPostId(db *gorm.DB, postId int64) error {
	return db.Model(&PostMedia{}).Where("post_id = ?", postId).Delete(&PostMedia{}).Error
}
