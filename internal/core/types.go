package core

import "ripplenet-backend/internal/model"

type (
	User          = model.User
	Post          = model.Post
	ConditionsT   = model.ConditionsT
	PostFormatted = model.PostFormatted
	UserFormatted = model.UserFormatted
	CandidatePost = model.CandidatePost
)

const (
	PostVisitPublic  = model.PostVisitPublic
	PostVisitPrivate = model.PostVisitPrivate
)

type (
	PostVisibleT = model.PostVisibleT
	PostKindT    = model.PostKindT
)
