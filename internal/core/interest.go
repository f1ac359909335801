package core

import (
	"ripplenet-backend/internal/model"
)

type InterestService interface {
	GetInterests() ([]*model.Interest, error)
	GetUserInterests(userId int64) ([]string, error)
	SetUserInterests(userId int64, names []string) error
}
