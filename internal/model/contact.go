package model

import (
	"gorm.io/gorm"
)

type Following struct {
	*Model
	UserID       int64 `json:"user_id"`
	FollowUserID int64 `json:"follow_user_id"`
}

type Mute struct {
	*Model
	UserID     int64 `json:"user_id"`
	MuteUserID int64 `json:"mute_user_id"`
}

func (f *Following) Create(db *gorm.DB) (*Following, error) {
	err := db.Create(&f).Error

	return f, err
}

func (f *Following) Delete(db *gorm.DB) error {
	return db.Model(&Following{}).Where("user_id = ? AND follow_user_id = ?", f.UserID, f.FollowUserID).Delete(&Following{}).Error
}

func (f *Following) Get(db *gorm.DB) (*Following, error) {
	var following Following
	if err := db.Where("user_id = ? AND follow_user_id = ?", f.UserID, f.FollowUserID).First(&following).Error; err != nil {
		return nil, err
	}
	return &following, nil
}

func (f *Following) FollowIDs(db *gorm.DB, userId int64) (ids []int64, err error) {
	err = db.Model(&Following{}).Where("user_id = ?", userId).Pluck("follow_user_id", &ids).Error
	return
}

func (m *Mute) Create(db *gorm.DB) (*Mute, error) {
	err := db.Create(&m).Error

	return m, err
}

func (m *Mute) Delete(db *gorm.DB) error {
	return db.Model(&Mute{}).Where("user_id = ? AND mute_user_id = ?", m.UserID, m.MuteUserID).Delete(&Mute{}).Error
}

func (m *Mute) Get(db *gorm.DB) (*Mute, error) {
	var mute Mute
	if err := db.Where("user_id = ? AND mute_user_id = ?", m.UserID, m.MuteUserID).First(&mute).Error; err != nil {
		return nil, err
	}
	return &mute, nil
}
