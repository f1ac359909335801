package cache

import (
	"testing"

	"ripplenet-backend/internal/core"
	"ripplenet-backend/internal/model"
)

type stubUserService struct {
	core.UserManageService
	user  *model.User
	stats *model.AuthorStats
}

func (s *stubUserService) GetUserByID(id int64) (*model.User, error) {
	return s.user, nil
}

func (s *stubUserService) GetUserStats(userID int64) (*model.AuthorStats, error) {
	return s.stats, nil
}

type stubInterestService struct {
	core.InterestService
	names []string
}

func (s *stubInterestService) GetUserInterests(userId int64) ([]string, error) {
	return s.names, nil
}

func TestNoneProfileService(t *testing.T) {
	ums := &stubUserService{
		user: &model.User{
			Model:    &model.Model{ID: 1},
			Username: "alice",
			Nickname: "Alice",
		},
		stats: &model.AuthorStats{
			FollowerCount:  3,
			FollowingCount: 2,
			PostCount:      7,
		},
	}
	is := &stubInterestService{names: []string{"golang", "music"}}

	ups, v := NewNoneProfileService(ums, is)
	if v.Name() != "NoneProfile" {
		t.Errorf("servant name: %s", v.Name())
	}
	if v.Version() == nil {
		t.Error("servant version must not be nil")
	}

	profile, err := ups.GetUserProfile(1)
	if err != nil {
		t.Fatalf("GetUserProfile err: %v", err)
	}
	if profile.ID != 1 || profile.Username != "alice" {
		t.Errorf("identity mismatch: %+v", profile)
	}
	if profile.FollowerCount != 3 || profile.FollowingCount != 2 || profile.PostCount != 7 {
		t.Errorf("stats mismatch: %+v", profile)
	}
	if len(profile.Interests) != 2 {
		t.Errorf("interests mismatch: %v", profile.Interests)
	}
}
