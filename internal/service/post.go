package service

import (
	"context"
	"regexp"
	"strconv"
	"time"

	"ripplenet-backend/internal/core"
	"ripplenet-backend/internal/model"
	"ripplenet-backend/pkg/errcode"
	"ripplenet-backend/pkg/notify"

	"github.com/sirupsen/logrus"
)

var (
	hashtagRegexp = regexp.MustCompile(`#([^\s#@]+)`)
	mentionRegexp = regexp.MustCompile(`@([0-9A-Za-z_]+)`)
)

type PostMediaItem struct {
	URL  string       `json:"url" binding:"required"`
	Type model.MediaT `json:"type" binding:"required"`
}

type PostCreationReq struct {
	Content    string             `json:"content" binding:"required"`
	Kind       model.PostKindT    `json:"kind"`
	ParentID   *int64             `json:"parent_id"`
	Visibility model.PostVisibleT `json:"visibility"`
	Interest   string             `json:"interest"`
	Media      []*PostMediaItem   `json:"media"`
}

type PostSummaryReq struct {
	ID      int64  `json:"id" binding:"required"`
	Summary string `json:"summary" binding:"required"`
}

func CreatePost(userId int64, param *PostCreationReq) (*model.PostFormatted, error) {
	post := &model.Post{
		Model:      &model.Model{},
		UserID:     userId,
		Content:    param.Content,
		Kind:       param.Kind,
		ParentID:   param.ParentID,
		Visibility: param.Visibility,
	}

	switch param.Kind {
	case model.PostKindQuote, model.PostKindReply:
		if param.ParentID == nil {
			return nil, errcode.NoExistParentPost
		}
		if _, err := ds.GetPostByID(*param.ParentID); err != nil {
			return nil, errcode.NoExistParentPost
		}
	default:
		post.ParentID = nil
	}

	if param.Interest != "" {
		ids, err := ds.GetInterests()
		if err != nil {
			return nil, err
		}
		for _, interest := range ids {
			if interest.Name == param.Interest {
				interestId := interest.ID
				post.InterestID = &interestId
				break
			}
		}
	}

	media := make([]*model.PostMedia, 0, len(param.Media))
	for _, item := range param.Media {
		media = append(media, &model.PostMedia{
			Model: &model.Model{},
			URL:   item.URL,
			Type:  item.Type,
		})
	}
	hashtags := parseHashtags(param.Content)
	mentionIds := parseMentionIds(param.Content)

	post, err := ds.CreatePost(post, media, hashtags, mentionIds)
	if err != nil {
		return nil, err
	}

	PushPostToSearch(post, hashtags)
	notifyMentioned(post, mentionIds)

	formatted, err := ds.MergePosts([]*model.Post{post})
	if err != nil {
		return nil, err
	}
	return formatted[0], nil
}

func DeletePost(userId, postId int64) error {
	post, err := ds.GetPostByID(postId)
	if err != nil {
		return errcode.GetPostFailed
	}
	if post.UserID != userId {
		return errcode.NoPermission
	}
	if err := ds.DeletePost(post); err != nil {
		return err
	}
	DeleteSearchPost(post)
	return nil
}

func GetPost(postId int64) (*model.PostFormatted, error) {
	post, err := ds.GetPostByID(postId)
	if err != nil {
		return nil, err
	}
	formatted, err := ds.MergePosts([]*model.Post{post})
	if err != nil {
		return nil, err
	}
	return formatted[0], nil
}

func GetUserPosts(userId int64, offset, limit int) ([]*model.PostFormatted, int64, error) {
	conditions := &model.ConditionsT{
		"user_id = ?": userId,
		"ORDER":       "id DESC",
	}
	posts, err := ds.GetPosts(conditions, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := ds.GetPostCount(conditions)
	if err != nil {
		return nil, 0, err
	}
	formatted, err := ds.MergePosts(posts)
	if err != nil {
		return nil, 0, err
	}
	return formatted, total, nil
}

// SetPostSummary records the digest produced by the external summarizer.
func SetPostSummary(userId int64, param *PostSummaryReq) error {
	post, err := ds.GetPostByID(param.ID)
	if err != nil {
		return errcode.GetPostFailed
	}
	if post.UserID != userId {
		return errcode.NoPermission
	}
	post.Summary = param.Summary
	return ds.UpdatePost(post)
}

// LikePost toggles nothing: repeated likes are absorbed.
func LikePost(userId, postId int64) error {
	if _, err := ds.GetPostByID(postId); err != nil {
		return errcode.GetPostFailed
	}
	if _, err := ds.GetUserPostLike(postId, userId); err == nil {
		return nil
	}
	_, err := ds.CreatePostLike(postId, userId)
	return err
}

func UnlikePost(userId, postId int64) error {
	like, err := ds.GetUserPostLike(postId, userId)
	if err != nil {
		return nil
	}
	return ds.DeletePostLike(like)
}

// ResharePost keeps one reshare per user and post.
func ResharePost(userId, postId int64) error {
	post, err := ds.GetPostByID(postId)
	if err != nil {
		return errcode.GetPostFailed
	}
	if post.Kind == model.PostKindReply {
		return errcode.ResharePostFailed
	}
	if _, err := ds.GetUserReshare(postId, userId); err == nil {
		return nil
	}
	_, err = ds.CreateReshare(postId, userId)
	return err
}

func UnresharePost(userId, postId int64) error {
	reshare, err := ds.GetUserReshare(postId, userId)
	if err != nil {
		return nil
	}
	return ds.DeleteReshare(reshare)
}

func PushPostToSearch(post *model.Post, tags []string) {
	data := core.DocItems{{
		"id":         post.ID,
		"user_id":    post.UserID,
		"content":    post.Content,
		"tags":       tags,
		"visibility": post.Visibility,
		"created_on": post.CreatedOn,
	}}
	if _, err := ps.AddDocuments(data); err != nil {
		logrus.Errorf("service.PushPostToSearch add document err: %v", err)
	}
}

func DeleteSearchPost(post *model.Post) {
	if err := ps.DeleteDocuments([]string{strconv.FormatInt(post.ID, 10)}); err != nil {
		logrus.Errorf("service.DeleteSearchPost delete document err: %v", err)
	}
}

func notifyMentioned(post *model.Post, mentionIds []int64) {
	if len(mentionIds) == 0 {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := notifyGateway.Notify(ctx, notify.PushNotifyRequest{
			UserIDs: mentionIds,
			Title:   "You were mentioned",
			Content: post.Content,
		})
		if err != nil {
			logrus.Errorf("service.notifyMentioned notify err: %v", err)
		}
	}()
}

func parseHashtags(content string) []string {
	matches := hashtagRegexp.FindAllStringSubmatch(content, -1)
	tags := make([]string, 0, len(matches))
	seen := make(map[string]bool, len(matches))
	for _, match := range matches {
		if !seen[match[1]] {
			tags = append(tags, match[1])
			seen[match[1]] = true
		}
	}
	return tags
}

func parseMentionIds(content string) []int64 {
	matches := mentionRegexp.FindAllStringSubmatch(content, -1)
	ids := make([]int64, 0, len(matches))
	seen := make(map[int64]bool, len(matches))
	for _, match := range matches {
		user, err := ds.GetUserByUsername(match[1])
		if err != nil {
			continue
		}
		if !seen[user.ID] {
			ids = append(ids, user.ID)
			seen[user.ID] = true
		}
	}
	return ids
}
