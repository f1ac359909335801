package cache

import (
	"ripplenet-backend/internal/core"
	"ripplenet-backend/internal/model/rest"

	"github.com/Masterminds/semver/v3"
)

var (
	_ core.UserProfileService = (*noneProfileServant)(nil)
	_ core.VersionInfo        = (*noneProfileServant)(nil)
)

type noneProfileServant struct {
	ums core.UserManageService
	is  core.InterestService
}

func NewNoneProfileService(ums core.UserManageService, is core.InterestService) (core.UserProfileService, core.VersionInfo) {
	s := &noneProfileServant{
		ums: ums,
		is:  is,
	}
	return s, s
}

func (s *noneProfileServant) GetUserProfile(userId int64) (*rest.UserProfileResp, error) {
	return buildUserProfile(s.ums, s.is, userId)
}

func (s *noneProfileServant) Name() string {
	return "NoneProfile"
}

func (s *noneProfileServant) Version() *semver.Version {
	return semver.MustParse("v0.1.0")
}

func buildUserProfile(ums core.UserManageService, is core.InterestService, userId int64) (*rest.UserProfileResp, error) {
	user, err := ums.GetUserByID(userId)
	if err != nil {
		return nil, err
	}
	stats, err := ums.GetUserStats(userId)
	if err != nil {
		return nil, err
	}
	interests, err := is.GetUserInterests(userId)
	if err != nil {
		return nil, err
	}
	return &rest.UserProfileResp{
		ID:             user.ID,
		Username:       user.Username,
		Nickname:       user.Nickname,
		Avatar:         user.Avatar,
		IsVerified:     user.IsVerified,
		FollowerCount:  stats.FollowerCount,
		FollowingCount: stats.FollowingCount,
		PostCount:      stats.PostCount,
		Interests:      interests,
	}, nil
}
