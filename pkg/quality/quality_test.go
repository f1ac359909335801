package quality

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestScorePosts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/scores" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"rankedPosts":[{"postId":1,"qualityScore":0.8},{"postId":2,"qualityScore":0.3}]}`))
	}))
	defer server.Close()

	g := New(server.URL, 5*time.Second)
	scores := g.ScorePosts(context.Background(), []PostRecord{
		{PostID: 1}, {PostID: 2}, {PostID: 3},
	})
	if len(scores) != 2 {
		t.Fatalf("want 2 scores, got %d", len(scores))
	}
	if scores[1] != 0.8 || scores[2] != 0.3 {
		t.Errorf("unexpected scores: %v", scores)
	}
	if _, ok := scores[3]; ok {
		t.Errorf("post 3 should have no score")
	}
}

func TestScorePostsEmptyInput(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	g := New(server.URL, 5*time.Second)
	scores := g.ScorePosts(context.Background(), nil)
	if len(scores) != 0 {
		t.Errorf("want empty mapping, got %v", scores)
	}
	if called {
		t.Errorf("empty input must not reach the wire")
	}
}

func TestScorePostsDegradesOnFailure(t *testing.T) {
	for name, handler := range map[string]http.HandlerFunc{
		"server error": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
		"bad payload": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"rankedPosts":`))
		},
	} {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(handler)
			defer server.Close()

			g := New(server.URL, 5*time.Second)
			scores := g.ScorePosts(context.Background(), []PostRecord{{PostID: 1}})
			if len(scores) != 0 {
				t.Errorf("want empty mapping, got %v", scores)
			}
		})
	}
}

func TestScorePostsTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	g := New(server.URL, 50*time.Millisecond)
	scores := g.ScorePosts(context.Background(), []PostRecord{{PostID: 1}})
	if len(scores) != 0 {
		t.Errorf("want empty mapping on timeout, got %v", scores)
	}
}
