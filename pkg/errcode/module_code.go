package errcode

var (
	NoPermission      = NewError(20007, "No Permission")
	UsernameTaken     = NewError(20020, "Username Already Taken")
	UsernameLengthErr = NewError(20021, "Username length 3~24")
	NoExistUsername   = NewError(20022, "No Exist Username")
	GetUserFailed     = NewError(20023, "Get User Failed")

	CreatePostFailed    = NewError(30002, "Create Post Failed")
	GetPostFailed       = NewError(30003, "Get Post Failed")
	DeletePostFailed    = NewError(30004, "Delete Post Failed")
	GetPostsFailed      = NewError(30005, "Get Posts Failed")
	LikePostFailed      = NewError(30007, "Like Post Failed")
	ResharePostFailed   = NewError(30008, "Reshare Post Failed")
	NoExistParentPost   = NewError(30009, "Parent Post Not Found")
	SummarizePostFailed = NewError(30010, "Summarize Post Failed")

	GetFeedFailed  = NewError(31001, "Get Feed Failed")
	RankFeedFailed = NewError(31002, "Rank Feed Failed")

	FollowUserFailed   = NewError(32001, "Follow User Failed")
	UnfollowUserFailed = NewError(32002, "Unfollow User Failed")
	BlockUserFailed    = NewError(32003, "Block User Failed")
	MuteUserFailed     = NewError(32004, "Mute User Failed")

	GetInterestsFailed = NewError(33001, "Get Interests Failed")
	SetInterestsFailed = NewError(33002, "Set Interests Failed")

	SearchPostsFailed = NewError(34001, "Search Posts Failed")
)
