package service

import (
	"context"
	"testing"

	"ripplenet-backend/internal/core"
	"ripplenet-backend/internal/model"
)

type fakeQualityService struct {
	scores map[int64]float64
	calls  int
}

func (f *fakeQualityService) ScorePosts(_ context.Context, records []core.QualityFeatureRecord) map[int64]float64 {
	f.calls++
	if f.scores == nil {
		return map[int64]float64{}
	}
	return f.scores
}

func candidate(postId int64, personalization float64) *model.CandidatePost {
	return &model.CandidatePost{
		PostID:               postId,
		AuthorID:             postId * 10,
		Content:              "content",
		PersonalizationScore: personalization,
	}
}

func TestRankFeedEmptyPageSkipsScoring(t *testing.T) {
	fake := &fakeQualityService{}
	resp, err := rankFeed(context.Background(), fake, nil)
	if err != nil {
		t.Fatalf("rankFeed err: %v", err)
	}
	if resp.Posts == nil || len(resp.Posts) != 0 {
		t.Errorf("want empty posts list, got %#v", resp.Posts)
	}
	if fake.calls != 0 {
		t.Errorf("scoring client called %d times on empty page", fake.calls)
	}
}

func TestRankFeedNilQualityServiceFails(t *testing.T) {
	_, err := rankFeed(context.Background(), nil, []*model.CandidatePost{candidate(1, 10)})
	if err == nil {
		t.Fatal("want hard failure when quality service is missing")
	}
}

func TestRankFeedQualityDefaultsToZero(t *testing.T) {
	fake := &fakeQualityService{scores: map[int64]float64{1: 0.5}}
	resp, err := rankFeed(context.Background(), fake, []*model.CandidatePost{
		candidate(1, 10),
		candidate(2, 10),
	})
	if err != nil {
		t.Fatalf("rankFeed err: %v", err)
	}
	for _, item := range resp.Posts {
		if item.PostID == 2 {
			if item.QualityScore != 0 {
				t.Errorf("unscored candidate quality = %v, want 0", item.QualityScore)
			}
			if item.FinalScore != 10*personalizationWeight {
				t.Errorf("unscored candidate final = %v, want %v", item.FinalScore, 10*personalizationWeight)
			}
		}
	}
}

func TestRankFeedPersonalizationDominates(t *testing.T) {
	// personalization=30, quality=0.7 => 21.21 must outrank
	// personalization=20, quality=0.9 => 14.27
	fake := &fakeQualityService{scores: map[int64]float64{1: 0.7, 2: 0.9}}
	resp, err := rankFeed(context.Background(), fake, []*model.CandidatePost{
		candidate(2, 20),
		candidate(1, 30),
	})
	if err != nil {
		t.Fatalf("rankFeed err: %v", err)
	}
	if fake.calls != 1 {
		t.Fatalf("want exactly one batched scoring call, got %d", fake.calls)
	}
	if len(resp.Posts) != 2 {
		t.Fatalf("want 2 items, got %d", len(resp.Posts))
	}
	first, second := resp.Posts[0], resp.Posts[1]
	if first.PostID != 1 || second.PostID != 2 {
		t.Fatalf("order = [%d %d], want [1 2]", first.PostID, second.PostID)
	}
	if !almostEqual(first.FinalScore, 21.21) {
		t.Errorf("finalScore = %v, want 21.21", first.FinalScore)
	}
	if !almostEqual(second.FinalScore, 14.27) {
		t.Errorf("finalScore = %v, want 14.27", second.FinalScore)
	}
}

func TestRankFeedStableOnTies(t *testing.T) {
	fake := &fakeQualityService{}
	resp, err := rankFeed(context.Background(), fake, []*model.CandidatePost{
		candidate(7, 10),
		candidate(8, 10),
		candidate(9, 10),
	})
	if err != nil {
		t.Fatalf("rankFeed err: %v", err)
	}
	want := []int64{7, 8, 9}
	for i, item := range resp.Posts {
		if item.PostID != want[i] {
			t.Fatalf("tie order not preserved: got %d at %d, want %d", item.PostID, i, want[i])
		}
	}
}

func TestPassthroughFeedPreservesOrderAndSkipsScores(t *testing.T) {
	resp := passthroughFeed([]*model.CandidatePost{
		candidate(3, 5),
		candidate(1, 50),
		candidate(2, 25),
	})
	want := []int64{3, 1, 2}
	for i, item := range resp.Posts {
		if item.PostID != want[i] {
			t.Fatalf("retrieval order not preserved: got %d at %d, want %d", item.PostID, i, want[i])
		}
		if item.QualityScore != 0 || item.FinalScore != 0 {
			t.Errorf("latest mode must leave blend unset, got quality=%v final=%v", item.QualityScore, item.FinalScore)
		}
		if item.PersonalizationScore == 0 {
			t.Errorf("personalization score must still be emitted")
		}
	}
}

func TestShapeFeedItemSimpleReshare(t *testing.T) {
	c := candidate(1, 10)
	c.Content = "hello world"
	c.Media = []*model.PostMedia{{PostID: 1, URL: "img", Type: model.MediaImage}}
	c.IsReshare = true
	c.Author = model.CandidateUser{ID: 10, Username: "author"}
	c.Resharer = &model.CandidateUser{ID: 42, Username: "resharer"}

	item := shapeFeedItem(&model.ScoredCandidate{CandidatePost: c})
	if !item.IsReshare || item.IsQuote {
		t.Fatalf("want simple reshare flags, got isReshare=%v isQuote=%v", item.IsReshare, item.IsQuote)
	}
	if item.User == nil || item.User.ID != 42 {
		t.Errorf("top-level identity must be the resharer, got %+v", item.User)
	}
	if item.Content != "" || len(item.Media) != 0 {
		t.Errorf("top-level card must be bare, got content=%q media=%d", item.Content, len(item.Media))
	}
	original := item.OriginalPostData
	if original == nil {
		t.Fatal("original_post_data must be populated for a reshare")
	}
	if original.User == nil || original.User.ID != 10 {
		t.Errorf("original author mismatch: %+v", original.User)
	}
	if original.Content != "hello world" || len(original.Media) != 1 {
		t.Errorf("original must mirror the candidate's own content")
	}
}

func TestShapeFeedItemQuote(t *testing.T) {
	parentId := int64(99)
	c := candidate(1, 10)
	c.Content = "my commentary"
	c.Kind = model.PostKindQuote
	c.ParentID = &parentId
	c.Author = model.CandidateUser{ID: 10, Username: "quoter"}
	c.OriginalPost = &model.OriginalPostSnapshot{
		PostID:  parentId,
		Content: "the quoted text",
		Author:  model.CandidateUser{ID: 7, Username: "original"},
	}

	item := shapeFeedItem(&model.ScoredCandidate{CandidatePost: c})
	if !item.IsQuote {
		t.Fatal("want isQuote=true")
	}
	if item.Content != "my commentary" {
		t.Errorf("quote keeps its own commentary on top, got %q", item.Content)
	}
	if item.User == nil || item.User.ID != 10 {
		t.Errorf("quote keeps the quoting author on top, got %+v", item.User)
	}
	original := item.OriginalPostData
	if original == nil {
		t.Fatal("original_post_data must be populated for a quote")
	}
	if original.PostID != parentId {
		t.Errorf("original post id = %d, want parent %d", original.PostID, parentId)
	}
	if original.Content != "the quoted text" || original.User.ID != 7 {
		t.Errorf("original must come from the parent snapshot")
	}
}

func TestShapeFeedItemResharedQuoteKeepsQuoteShape(t *testing.T) {
	parentId := int64(99)
	c := candidate(1, 10)
	c.Content = "quoting again"
	c.Kind = model.PostKindQuote
	c.ParentID = &parentId
	c.IsReshare = true
	c.Author = model.CandidateUser{ID: 10}
	c.Resharer = &model.CandidateUser{ID: 42}
	c.OriginalPost = &model.OriginalPostSnapshot{PostID: parentId, Author: model.CandidateUser{ID: 7}}

	item := shapeFeedItem(&model.ScoredCandidate{CandidatePost: c})
	if !item.IsQuote {
		t.Fatal("reshared quote is still a quote")
	}
	if item.Content != "quoting again" {
		t.Errorf("reshared quote keeps its commentary, got %q", item.Content)
	}
	if item.OriginalPostData == nil || item.OriginalPostData.PostID != parentId {
		t.Errorf("reshared quote describes the parent in original_post_data")
	}
}

func almostEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}
