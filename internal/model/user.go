package model

import (
	"gorm.io/gorm"
)

type User struct {
	*Model
	Username   string `json:"username"`
	Nickname   string `json:"nickname"`
	Avatar     string `json:"avatar"`
	IsVerified bool   `json:"is_verified"`
}

type UserFormatted struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Nickname   string `json:"nickname"`
	Avatar     string `json:"avatar"`
	IsVerified bool   `json:"is_verified"`
}

func (u *User) Format() *UserFormatted {
	if u.Model == nil {
		return &UserFormatted{}
	}

	return &UserFormatted{
		ID:         u.ID,
		Username:   u.Username,
		Nickname:   u.Nickname,
		Avatar:     u.Avatar,
		IsVerified: u.IsVerified,
	}
}

func (u *User) Get(db *gorm.DB) (*User, error) {
	var user User
	if u.Model != nil && u.ID > 0 {
		db = db.Where("id = ?", u.ID)
	} else {
		db = db.Where("username = ?", u.Username)
	}

	if err := db.First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *User) List(db *gorm.DB, conditions *ConditionsT, offset, limit int) ([]*User, error) {
	var users []*User
	if offset >= 0 && limit > 0 {
		db = db.Offset(offset).Limit(limit)
	}
	for k, v := range *conditions {
		if k == "ORDER" {
			db = db.Order(v)
		} else {
			db = db.Where(k, v)
		}
	}

	if err := db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (u *User) Create(db *gorm.DB) (*User, error) {
	err := db.Create(&u).Error

	return u, err
}

func (u *User) Update(db *gorm.DB) error {
	return db.Model(&User{}).Where("id = ?", u.ID).Save(u).Error
}
