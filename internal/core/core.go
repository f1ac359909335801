package core

type DataService interface {
	FeedCandidateService

	ContentService
	ContentManageService
	ContentHelpService

	UserManageService
	ContactManageService

	InterestService
}
