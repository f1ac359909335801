package model

import (
	"gorm.io/gorm"
)

type Interest struct {
	*Model
	Name string `json:"name"`
}

type UserInterest struct {
	*Model
	UserID     int64 `json:"user_id"`
	InterestID int64 `json:"interest_id"`
}

func (i *Interest) List(db *gorm.DB) ([]*Interest, error) {
	var interests []*Interest
	if err := db.Order("id ASC").Find(&interests).Error; err != nil {
		return nil, err
	}
	return interests, nil
}

func (i *Interest) IDsByNames(db *gorm.DB, names []string) (ids []int64, err error) {
	if len(names) == 0 {
		return
	}
	err = db.Model(&Interest{}).Where("name IN ?", names).Pluck("id", &ids).Error
	return
}

func (i *Interest) Create(db *gorm.DB) (*Interest, error) {
	err := db.Create(&i).Error

	return i, err
}

func (u *UserInterest) Create(db *gorm.DB) (*UserInterest, error) {
	err := db.Create(&u).Error

	return u, err
}

func (u *UserInterest) DeleteByUserId(db *gorm.DB, userId int64) error {
	return db.Model(&UserInterest{}).Where("user_id = ?", userId).Delete(&UserInterest{}).Error
}

func (u *UserInterest) ListByUserId(db *gorm.DB, userId int64) ([]*UserInterest, error) {
	var interests []*UserInterest
	if err := db.Where("user_id = ?", userId).Find(&interests).Error; err != nil {
		return nil, err
	}
	return interests, nil
}
