package core

import (
	"ripplenet-backend/internal/model/rest"
)

// UserProfileService serves profile reads, possibly through a cache.
type UserProfileService interface {
	GetUserProfile(userId int64) (*rest.UserProfileResp, error)
}
