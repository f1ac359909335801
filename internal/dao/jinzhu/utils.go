package jinzhu

import (
	"ripplenet-backend/internal/model"

	"gorm.io/gorm"
)

func getUsersByIDs(db *gorm.DB, ids []int64) ([]*model.User, error) {
	user := &model.User{}

	return user.List(db, &model.ConditionsT{
		"id IN ?": ids,
	}, 0, 0)
}

type postGroupCount struct {
	PostID int64 `gorm:"column:post_id"`
	Total  int64 `gorm:"column:total"`
}

func countByPostIDs(db *gorm.DB, m interface{}, column string, postIds []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(postIds))
	if len(postIds) == 0 {
		return counts, nil
	}
	var rows []*postGroupCount
	err := db.Model(m).
		Select(column+" AS post_id, COUNT(*) AS total").
		Where(column+" IN ?", postIds).
		Group(column).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.PostID] = row.Total
	}
	return counts, nil
}

func countReplies(db *gorm.DB, postIds []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(postIds))
	if len(postIds) == 0 {
		return counts, nil
	}
	var rows []*postGroupCount
	err := db.Model(&model.Post{}).
		Select("parent_id AS post_id, COUNT(*) AS total").
		Where("parent_id IN ? AND kind = ?", postIds, model.PostKindReply).
		Group("parent_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.PostID] = row.Total
	}
	return counts, nil
}
