package jinzhu

import (
	"ripplenet-backend/internal/core"
	"ripplenet-backend/internal/model"

	"gorm.io/gorm"
)

var (
	_ core.UserManageService = (*userManageServant)(nil)
)

type userManageServant struct {
	db *gorm.DB
}

func newUserManageService(db *gorm.DB) core.UserManageService {
	return &userManageServant{
		db: db,
	}
}

func (s *userManageServant) GetUserByID(id int64) (*model.User, error) {
	user := &model.User{
		Model: &model.Model{
			ID: id,
		},
	}
	return user.Get(s.db)
}

func (s *userManageServant) GetUserByUsername(username string) (*model.User, error) {
	user := &model.User{
		Username: username,
	}
	return user.Get(s.db)
}

func (s *userManageServant) GetUsersByIDs(ids []int64) ([]*model.User, error) {
	return getUsersByIDs(s.db, ids)
}

func (s *userManageServant) CreateUser(user *model.User) (*model.User, error) {
	return user.Create(s.db)
}

func (s *userManageServant) UpdateUser(user *model.User) error {
	return user.Update(s.db)
}

func (s *userManageServant) GetUserStats(userID int64) (*model.AuthorStats, error) {
	stats := &model.AuthorStats{}
	if err := s.db.Model(&model.Following{}).Where("follow_user_id = ?", userID).Count(&stats.FollowerCount).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&model.Following{}).Where("user_id = ?", userID).Count(&stats.FollowingCount).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&model.Post{}).Where("user_id = ?", userID).Count(&stats.PostCount).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
