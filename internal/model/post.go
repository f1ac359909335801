package model

import (
	"time"

	"gorm.io/gorm"
)

// PostKindT content kind, 0 original, 1 reply, 2 quote
type PostKindT uint8

const (
	PostKindOriginal PostKindT = iota
	PostKindReply
	PostKindQuote
)

// PostVisibleT accessible type, 0 public, 1 private
type PostVisibleT uint8

const (
	PostVisitPublic PostVisibleT = iota
	PostVisitPrivate
)

type Post struct {
	*Model
	UserID     int64        `json:"user_id"`
	Content    string       `json:"content"`
	Kind       PostKindT    `json:"kind"`
	ParentID   *int64       `json:"parent_id"`
	Visibility PostVisibleT `json:"visibility"`
	InterestID *int64       `json:"interest_id"`
	Summary    string       `json:"summary"`
}

type PostFormatted struct {
	ID           int64            `json:"id"`
	CreatedOn    int64            `json:"created_on"`
	UserID       int64            `json:"user_id"`
	User         *UserFormatted   `json:"user"`
	Content      string           `json:"content"`
	Kind         PostKindT        `json:"kind"`
	ParentID     *int64           `json:"parent_id"`
	Visibility   PostVisibleT     `json:"visibility"`
	InterestID   *int64           `json:"interest_id"`
	Summary      string           `json:"summary"`
	Media        []*PostMedia     `json:"media"`
	LikeCount    int64            `json:"like_count"`
	ReshareCount int64            `json:"reshare_count"`
	ReplyCount   int64            `json:"reply_count"`
}

func (p *Post) Format() *PostFormatted {
	if p.Model == nil {
		return &PostFormatted{}
	}

	return &PostFormatted{
		ID:         p.ID,
		CreatedOn:  p.CreatedOn,
		UserID:     p.UserID,
		User:       &UserFormatted{},
		Content:    p.Content,
		Kind:       p.Kind,
		ParentID:   p.ParentID,
		Visibility: p.Visibility,
		InterestID: p.InterestID,
		Summary:    p.Summary,
		Media:      []*PostMedia{},
	}
}

func (p *Post) Create(db *gorm.DB) (*Post, error) {
	err := db.Create(&p).Error

	return p, err
}

func (p *Post) Delete(db *gorm.DB) error {
	return db.Model(&Post{}).Where("id = ? AND is_del = ?", p.ID, 0).Updates(map[string]interface{}{
		"deleted_on": time.Now().Unix(),
		"is_del":     1,
	}).Error
}

func (p *Post) Get(db *gorm.DB) (*Post, error) {
	var post Post
	if p.Model == nil || p.ID <= 0 {
		return nil, gorm.ErrRecordNotFound
	}
	if err := db.Where("id = ? AND is_del = ?", p.ID, 0).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (p *Post) List(db *gorm.DB, conditions *ConditionsT, offset, limit int) ([]*Post, error) {
	var posts []*Post
	if offset >= 0 && limit > 0 {
		db = db.Offset(offset).Limit(limit)
	}
	if p.UserID > 0 {
		db = db.Where("user_id = ?", p.UserID)
	}
	for k, v := range *conditions {
		if k == "ORDER" {
			db = db.Order(v)
		} else {
			db = db.Where(k, v)
		}
	}

	if err := db.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (p *Post) Count(db *gorm.DB, conditions *ConditionsT) (int64, error) {
	var count int64
	if p.UserID > 0 {
		db = db.Where("user_id = ?", p.UserID)
	}
	for k, v := range *conditions {
		if k != "ORDER" {
			db = db.Where(k, v)
		}
	}
	if err := db.Model(p).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (p *Post) Update(db *gorm.DB) error {
	return db.Model(&Post{}).Where("id = ? AND is_del = ?", p.ID, 0).Save(p).Error
}
