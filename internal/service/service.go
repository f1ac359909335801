package service

import (
	"ripplenet-backend/internal/conf"
	"ripplenet-backend/internal/core"
	"ripplenet-backend/internal/dao"
	"ripplenet-backend/pkg/notify"
	"ripplenet-backend/pkg/quality"
)

var (
	ds  core.DataService
	ps  core.PostSearchService
	ups core.UserProfileService

	qualityGateway core.QualityScoreService
	notifyGateway  *notify.Gateway
)

func Initialize() {
	ds = dao.DataService()
	ps = dao.PostSearchService()
	ups = dao.UserProfileService()

	qualityGateway = quality.New(conf.QualitySetting.Gateway, conf.QualitySetting.Timeout)
	notifyGateway = notify.New(conf.NotifySetting.Gateway)
}
