package app

import (
	"github.com/gofrs/uuid"
)

type Session struct {
	ID       string `json:"id"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

func GenerateToken() (string, error) {
	token, err := uuid.NewV4()
	if err != nil {
		return "", err
	}

	return token.String(), nil
}
