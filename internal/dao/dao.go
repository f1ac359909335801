package dao

import (
	"sync"

	"ripplenet-backend/internal/conf"
	"ripplenet-backend/internal/core"
	"ripplenet-backend/internal/dao/cache"
	"ripplenet-backend/internal/dao/jinzhu"
	"ripplenet-backend/internal/dao/search"

	"github.com/sirupsen/logrus"
)

var (
	ds  core.DataService
	ps  core.PostSearchService
	ups core.UserProfileService

	onceDs, oncePs, onceUps sync.Once
)

func DataService() core.DataService {
	onceDs.Do(func() {
		var v core.VersionInfo
		ds, v = jinzhu.NewDataService()
		logrus.Infof("use %s as data service with version %s", v.Name(), v.Version())
	})
	return ds
}

func PostSearchService() core.PostSearchService {
	oncePs.Do(func() {
		var v core.VersionInfo
		ps, v = search.NewMeiliPostSearchService()
		logrus.Infof("use %s as post search service by version %s", v.Name(), v.Version())

		ps = search.NewBridgePostSearchService(ps)
	})
	return ps
}

func UserProfileService() core.UserProfileService {
	onceUps.Do(func() {
		var v core.VersionInfo
		d := DataService()
		if conf.CfgIf("BigCacheProfile") {
			ups, v = cache.NewBigCacheProfileService(d, d)
		} else {
			ups, v = cache.NewNoneProfileService(d, d)
		}
		logrus.Infof("use %s as user profile service by version %s", v.Name(), v.Version())
	})
	return ups
}
