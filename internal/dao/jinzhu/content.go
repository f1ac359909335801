package jinzhu

import (
	"ripplenet-backend/internal/core"
	"ripplenet-backend/internal/model"

	"gorm.io/gorm"
)

var (
	_ core.ContentService       = (*contentServant)(nil)
	_ core.ContentManageService = (*contentManageServant)(nil)
	_ core.ContentHelpService   = (*contentHelpServant)(nil)
)

type contentServant struct {
	db *gorm.DB
}

type contentManageServant struct {
	db *gorm.DB
}

type contentHelpServant struct {
	db *gorm.DB
}

func newContentService(db *gorm.DB) core.ContentService {
	return &contentServant{
		db: db,
	}
}

func newContentManageService(db *gorm.DB) core.ContentManageService {
	return &contentManageServant{
		db: db,
	}
}

func newContentHelpService(db *gorm.DB) core.ContentHelpService {
	return &contentHelpServant{
		db: db,
	}
}

func (s *contentServant) GetPostByID(id int64) (*model.Post, error) {
	post := &model.Post{
		Model: &model.Model{
			ID: id,
		},
	}
	return post.Get(s.db)
}

func (s *contentServant) GetPosts(conditions *model.ConditionsT, offset, limit int) ([]*model.Post, error) {
	return (&model.Post{}).List(s.db, conditions, offset, limit)
}

func (s *contentServant) GetPostCount(conditions *model.ConditionsT) (int64, error) {
	return (&model.Post{}).Count(s.db, conditions)
}

func (s *contentServant) GetPostMediaByIDs(ids []int64) ([]*model.PostMedia, error) {
	return (&model.PostMedia{}).ListByPostIDs(s.db, ids)
}

func (s *contentServant) GetUserPostLike(postID, userID int64) (*model.PostLike, error) {
	like := &model.PostLike{
		PostID: postID,
		UserID: userID,
	}
	return like.Get(s.db)
}

func (s *contentServant) GetUserReshare(postID, userID int64) (*model.Reshare, error) {
	reshare := &model.Reshare{
		PostID: postID,
		UserID: userID,
	}
	return reshare.Get(s.db)
}

func (s *contentManageServant) CreatePost(post *model.Post, media []*model.PostMedia, hashtags []string, mentionIds []int64) (*model.Post, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		created, err := post.Create(tx)
		if err != nil {
			return err
		}
		post = created
		for _, m := range media {
			m.PostID = post.ID
			if _, err := m.Create(tx); err != nil {
				return err
			}
		}
		for _, tag := range hashtags {
			hashtag := &model.PostHashtag{
				PostID: post.ID,
				Tag:    tag,
			}
			if _, err := hashtag.Create(tx); err != nil {
				return err
			}
		}
		for _, userId := range mentionIds {
			mention := &model.PostMention{
				PostID: post.ID,
				UserID: userId,
			}
			if _, err := mention.Create(tx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (s *contentManageServant) DeletePost(post *model.Post) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := post.Delete(tx); err != nil {
			return err
		}
		if err := (&model.PostMedia{}).DeleteByPostId(tx, post.ID); err != nil {
			return err
		}
		if err := (&model.PostHashtag{}).DeleteByPostId(tx, post.ID); err != nil {
			return err
		}
		return (&model.PostMention{}).DeleteByPostId(tx, post.ID)
	})
}

func (s *contentManageServant) UpdatePost(post *model.Post) error {
	return post.Update(s.db)
}

func (s *contentManageServant) CreatePostLike(postID, userID int64) (*model.PostLike, error) {
	like := &model.PostLike{
		Model:  &model.Model{},
		PostID: postID,
		UserID: userID,
	}
	return like.Create(s.db)
}

func (s *contentManageServant) DeletePostLike(like *model.PostLike) error {
	return like.Delete(s.db)
}

func (s *contentManageServant) CreateReshare(postID, userID int64) (*model.Reshare, error) {
	reshare := &model.Reshare{
		Model:  &model.Model{},
		PostID: postID,
		UserID: userID,
	}
	return reshare.Create(s.db)
}

func (s *contentManageServant) DeleteReshare(reshare *model.Reshare) error {
	return reshare.Delete(s.db)
}

// MergePosts attaches author, media and engagement counts to raw posts.
func (s *contentHelpServant) MergePosts(posts []*model.Post) ([]*model.PostFormatted, error) {
	postIds := make([]int64, 0, len(posts))
	userIds := make([]int64, 0, len(posts))
	for _, post := range posts {
		postIds = append(postIds, post.ID)
		userIds = append(userIds, post.UserID)
	}

	users, err := getUsersByIDs(s.db, userIds)
	if err != nil {
		return nil, err
	}
	media, err := (&model.PostMedia{}).ListByPostIDs(s.db, postIds)
	if err != nil {
		return nil, err
	}
	likeCounts, err := countByPostIDs(s.db, &model.PostLike{}, "post_id", postIds)
	if err != nil {
		return nil, err
	}
	reshareCounts, err := countByPostIDs(s.db, &model.Reshare{}, "post_id", postIds)
	if err != nil {
		return nil, err
	}
	replyCounts, err := countReplies(s.db, postIds)
	if err != nil {
		return nil, err
	}

	userMap := make(map[int64]*model.UserFormatted, len(users))
	for _, user := range users {
		userMap[user.ID] = user.Format()
	}
	mediaMap := make(map[int64][]*model.PostMedia, len(postIds))
	for _, m := range media {
		mediaMap[m.PostID] = append(mediaMap[m.PostID], m)
	}

	postsFormatted := make([]*model.PostFormatted, 0, len(posts))
	for _, post := range posts {
		postFormatted := post.Format()
		postFormatted.User = userMap[post.UserID]
		if ms, ok := mediaMap[post.ID]; ok {
			postFormatted.Media = ms
		}
		postFormatted.LikeCount = likeCounts[post.ID]
		postFormatted.ReshareCount = reshareCounts[post.ID]
		postFormatted.ReplyCount = replyCounts[post.ID]
		postsFormatted = append(postsFormatted, postFormatted)
	}
	return postsFormatted, nil
}
