package jinzhu

import (
	"ripplenet-backend/internal/core"
	"ripplenet-backend/internal/model"

	"gorm.io/gorm"
)

var (
	_ core.ContactManageService = (*contactManageServant)(nil)
)

type contactManageServant struct {
	db *gorm.DB
}

func newContactManageService(db *gorm.DB) core.ContactManageService {
	return &contactManageServant{
		db: db,
	}
}

func (s *contactManageServant) FollowUser(userId, followId int64) error {
	following := &model.Following{
		Model:        &model.Model{},
		UserID:       userId,
		FollowUserID: followId,
	}
	if _, err := following.Get(s.db); err == nil {
		return nil
	}
	_, err := following.Create(s.db)
	return err
}

func (s *contactManageServant) UnfollowUser(userId, followId int64) error {
	following := &model.Following{
		UserID:       userId,
		FollowUserID: followId,
	}
	return following.Delete(s.db)
}

func (s *contactManageServant) IsFollowing(userId, followId int64) bool {
	following := &model.Following{
		UserID:       userId,
		FollowUserID: followId,
	}
	_, err := following.Get(s.db)
	return err == nil
}

// BlockUser also severs the follow edges in both directions so blocked
// accounts drop out of each other's Following feeds immediately.
func (s *contactManageServant) BlockUser(userId, blockId int64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		blacklist := &model.Blacklist{
			Model:       &model.Model{},
			UserID:      userId,
			BlockUserID: blockId,
		}
		if _, err := blacklist.Get(tx); err == nil {
			return nil
		}
		if _, err := blacklist.Create(tx); err != nil {
			return err
		}
		following := &model.Following{
			UserID:       userId,
			FollowUserID: blockId,
		}
		if err := following.Delete(tx); err != nil {
			return err
		}
		reverse := &model.Following{
			UserID:       blockId,
			FollowUserID: userId,
		}
		return reverse.Delete(tx)
	})
}

func (s *contactManageServant) UnblockUser(userId, blockId int64) error {
	blacklist := &model.Blacklist{
		UserID:      userId,
		BlockUserID: blockId,
	}
	return blacklist.Delete(s.db)
}

func (s *contactManageServant) IsBlocked(userId, blockId int64) bool {
	blacklist := &model.Blacklist{
		UserID:      userId,
		BlockUserID: blockId,
	}
	_, err := blacklist.Get(s.db)
	return err == nil
}

func (s *contactManageServant) MuteUser(userId, muteId int64) error {
	mute := &model.Mute{
		Model:      &model.Model{},
		UserID:     userId,
		MuteUserID: muteId,
	}
	if _, err := mute.Get(s.db); err == nil {
		return nil
	}
	_, err := mute.Create(s.db)
	return err
}

func (s *contactManageServant) UnmuteUser(userId, muteId int64) error {
	mute := &model.Mute{
		UserID:     userId,
		MuteUserID: muteId,
	}
	return mute.Delete(s.db)
}
