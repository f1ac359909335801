// Core service implement base gorm+postgresql.
// Jinzhu is the primary developer of gorm so use his name as
// pakcage name as a saluter.

package jinzhu

import (
	"ripplenet-backend/internal/conf"
	"ripplenet-backend/internal/core"

	"github.com/Masterminds/semver/v3"
)

var (
	_ core.DataService = (*dataServant)(nil)
	_ core.VersionInfo = (*dataServant)(nil)
)

type dataServant struct {
	core.FeedCandidateService
	core.ContentService
	core.ContentManageService
	core.ContentHelpService
	core.UserManageService
	core.ContactManageService
	core.InterestService
}

func NewDataService() (core.DataService, core.VersionInfo) {
	db := conf.MustGormDB()
	ds := &dataServant{
		FeedCandidateService: newFeedCandidateService(db),
		ContentService:       newContentService(db),
		ContentManageService: newContentManageService(db),
		ContentHelpService:   newContentHelpService(db),
		UserManageService:    newUserManageService(db),
		ContactManageService: newContactManageService(db),
		InterestService:      newInterestService(db),
	}
	return ds, ds
}

func (s *dataServant) Name() string {
	return "Jinzhu"
}

func (s *dataServant) Version() *semver.Version {
	return semver.MustParse("v0.2.0")
}
