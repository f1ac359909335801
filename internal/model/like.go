package model

import (
	"gorm.io/gorm"
)

type PostLike struct {
	*Model
	PostID int64 `json:"post_id"`
	UserID int64 `json:"user_id"`
}

func (p *PostLike) Create(db *gorm.DB) (*PostLike, error) {
	err := db.Create(&p).Error

	return p, err
}

func (p *PostLike) Delete(db *gorm.DB) error {
	return db.Model(&PostLike{}).Where("post_id = ? AND user_id = ?", p.PostID, p.UserID).Delete(&PostLike{}).Error
}

func (p *PostLike) Get(db *gorm.DB) (*PostLike, error) {
	var like PostLike
	if err := db.Where("post_id = ? AND user_id = ?", p.PostID, p.UserID).First(&like).Error; err != nil {
		return nil, err
	}
	return &like, nil
}
