package jinzhu

import (
	"ripplenet-backend/internal/core"
	"ripplenet-backend/internal/model"

	"gorm.io/gorm"
)

var (
	_ core.InterestService = (*interestServant)(nil)
)

type interestServant struct {
	db *gorm.DB
}

func newInterestService(db *gorm.DB) core.InterestService {
	return &interestServant{
		db: db,
	}
}

func (s *interestServant) GetInterests() ([]*model.Interest, error) {
	return (&model.Interest{}).List(s.db)
}

func (s *interestServant) GetUserInterests(userId int64) ([]string, error) {
	userInterests, err := (&model.UserInterest{}).ListByUserId(s.db, userId)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(userInterests))
	for _, ui := range userInterests {
		ids = append(ids, ui.InterestID)
	}
	names := make([]string, 0, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	if err := s.db.Model(&model.Interest{}).Where("id IN ?", ids).Order("id ASC").Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

// SetUserInterests replaces the whole selection; unknown names are dropped
// rather than auto-created.
func (s *interestServant) SetUserInterests(userId int64, names []string) error {
	ids, err := (&model.Interest{}).IDsByNames(s.db, names)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := (&model.UserInterest{}).DeleteByUserId(tx, userId); err != nil {
			return err
		}
		for _, id := range ids {
			userInterest := &model.UserInterest{
				Model:      &model.Model{},
				UserID:     userId,
				InterestID: id,
			}
			if _, err := userInterest.Create(tx); err != nil {
				return err
			}
		}
		return nil
	})
}
