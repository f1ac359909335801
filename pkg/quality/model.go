package quality

// PostRecord is one candidate in a scoring request.
type PostRecord struct {
	PostID        int64        `json:"postId"`
	ContentLength int          `json:"contentLength"`
	HasMedia      bool         `json:"hasMedia"`
	HashtagCount  int64        `json:"hashtagCount"`
	MentionCount  int64        `json:"mentionCount"`
	Author        AuthorRecord `json:"author"`
}

type AuthorRecord struct {
	FollowersCount     int64 `json:"followersCount"`
	FollowingCount     int64 `json:"followingCount"`
	PublishedPostCount int64 `json:"publishedPostCount"`
	IsVerified         bool  `json:"isVerified"`
}

type scoreRequest struct {
	Posts []PostRecord `json:"posts"`
}

type rankedPost struct {
	PostID       int64   `json:"postId"`
	QualityScore float64 `json:"qualityScore"`
}

type scoreResponse struct {
	RankedPosts []rankedPost `json:"rankedPosts"`
}
