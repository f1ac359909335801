package model

import (
	"gorm.io/gorm"
)

type Blacklist struct {
	*Model
	UserID      int64 `json:"user_id"`
	BlockUserID int64 `json:"block_user_id"`
}

func (b *Blacklist) Create(db *gorm.DB) (*Blacklist, error) {
	err := db.Create(&b).Error

	return b, err
}

func (b *Blacklist) Delete(db *gorm.DB) error {
	return db.Model(&Blacklist{}).Where("user_id = ? AND block_user_id = ?", b.UserID, b.BlockUserID).Delete(&Blacklist{}).Error
}

func (b *Blacklist) Get(db *gorm.DB) (*Blacklist, error) {
	var blacklist Blacklist
	if err := db.Where("user_id = ? AND block_user_id = ?", b.UserID, b.BlockUserID).First(&blacklist).Error; err != nil {
		return nil, err
	}
	return &blacklist, nil
}
