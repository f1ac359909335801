package service

import (
	"ripplenet-backend/internal/model"
)

func GetInterests() ([]*model.Interest, error) {
	return ds.GetInterests()
}

func GetUserInterests(userId int64) ([]string, error) {
	return ds.GetUserInterests(userId)
}

func SetUserInterests(userId int64, names []string) error {
	return ds.SetUserInterests(userId, names)
}
