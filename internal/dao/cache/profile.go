package cache

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"

	"ripplenet-backend/internal/conf"
	"ripplenet-backend/internal/core"
	"ripplenet-backend/internal/model/rest"

	"github.com/Masterminds/semver/v3"
	"github.com/allegro/bigcache/v3"
	"github.com/sirupsen/logrus"
)

var (
	_ core.UserProfileService = (*bigCacheProfileServant)(nil)
	_ core.VersionInfo        = (*bigCacheProfileServant)(nil)
)

type bigCacheProfileServant struct {
	ums core.UserManageService
	is  core.InterestService

	cache *bigcache.BigCache
}

func NewBigCacheProfileService(ums core.UserManageService, is core.InterestService) (core.UserProfileService, core.VersionInfo) {
	config := bigcache.DefaultConfig(conf.CacheSetting.ExpireInSecond)
	config.Verbose = false
	cache, err := bigcache.New(context.Background(), config)
	if err != nil {
		panic(fmt.Errorf("initial bigCacheProfile cache error: %w", err))
	}

	s := &bigCacheProfileServant{
		ums:   ums,
		is:    is,
		cache: cache,
	}
	return s, s
}

func (s *bigCacheProfileServant) GetUserProfile(userId int64) (*rest.UserProfileResp, error) {
	key := s.keyFrom(userId)
	profile, err := s.getProfile(key)
	if err == nil {
		logrus.Debugf("bigCacheProfileServant.GetUserProfile get profile from cache by key: %s", key)
		return profile, nil
	}

	if profile, err = buildUserProfile(s.ums, s.is, userId); err != nil {
		return nil, err
	}
	s.setProfile(key, profile)
	return profile, nil
}

func (s *bigCacheProfileServant) getProfile(key string) (*rest.UserProfileResp, error) {
	data, err := s.cache.Get(key)
	if err != nil {
		return nil, err
	}
	dec := gob.NewDecoder(bytes.NewBuffer(data))
	var resp rest.UserProfileResp
	if err := dec.Decode(&resp); err != nil {
		logrus.Debugf("bigCacheProfileServant.getProfile decode err: %v", err)
		return nil, err
	}
	return &resp, nil
}

func (s *bigCacheProfileServant) setProfile(key string, profile *rest.UserProfileResp) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(profile); err != nil {
		logrus.Debugf("bigCacheProfileServant.setProfile encode err: %v", err)
		return
	}
	if err := s.cache.Set(key, buf.Bytes()); err != nil {
		logrus.Debugf("bigCacheProfileServant.setProfile set cache err: %v", err)
	}
}

func (s *bigCacheProfileServant) keyFrom(userId int64) string {
	return fmt.Sprintf("profile:%d", userId)
}

func (s *bigCacheProfileServant) Name() string {
	return "BigCacheProfile"
}

func (s *bigCacheProfileServant) Version() *semver.Version {
	return semver.MustParse("v0.2.0")
}
