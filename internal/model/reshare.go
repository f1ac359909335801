package model

import (
	"gorm.io/gorm"
)

// Reshare is an event record, not new content: many users may reference
// the same post.
type Reshare struct {
	*Model
	PostID int64 `json:"post_id"`
	UserID int64 `json:"user_id"`
}

func (r *Reshare) Create(db *gorm.DB) (*Reshare, error) {
	err := db.Create(&r).Error

	return r, err
}

func (r *Reshare) Delete(db *gorm.DB) error {
	return db.Model(&Reshare{}).Where("post_id = ? AND user_id = ?", r.PostID, r.UserID).Delete(&Reshare{}).Error
}

func (r *Reshare) Get(db *gorm.DB) (*Reshare, error) {
	var reshare Reshare
	if err := db.Where("post_id = ? AND user_id = ?", r.PostID, r.UserID).First(&reshare).Error; err != nil {
		return nil, err
	}
	return &reshare, nil
}

func (r *Reshare) Count(db *gorm.DB, conditions *ConditionsT) (int64, error) {
	var count int64
	if r.PostID > 0 {
		db = db.Where("post_id = ?", r.PostID)
	}
	for k, v := range *conditions {
		if k != "ORDER" {
			db = db.Where(k, v)
		}
	}
	if err := db.Model(r).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
