package rss

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const hotFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>hot posts : golang</title>
  <entry>
    <author><name>/u/gopher</name><uri>https://www.reddit.com/user/gopher</uri></author>
    <title>Go 1.24 released</title>
    <link href="https://www.reddit.com/r/golang/comments/abc/go_124_released/"/>
    <published>2026-08-20T10:00:00+00:00</published>
    <id>t3_abc</id>
  </entry>
  <entry>
    <title>Untitled thread</title>
    <link href="https://www.reddit.com/r/golang/comments/def/untitled_thread/"/>
    <id>t3_def</id>
  </entry>
</feed>`

func TestHotParsesFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/r/golang/hot.rss" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/atom+xml")
		fmt.Fprint(w, hotFeed)
	}))
	defer server.Close()

	source := newSource(server.URL, "test-agent", 5*time.Second)
	posts, err := source.Hot(context.Background(), "golang", 10)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(posts) != 2 {
		t.Fatalf("Expected 2 posts, got %d", len(posts))
	}

	post := posts[0]
	if post.Title == nil || *post.Title != "Go 1.24 released" {
		t.Errorf("Expected title 'Go 1.24 released', got %v", post.Title)
	}
	if post.Author == nil || *post.Author != "gopher" {
		t.Errorf("Expected author 'gopher' without /u/ prefix, got %v", post.Author)
	}
	if post.Subreddit != "golang" {
		t.Errorf("Expected subreddit 'golang', got '%s'", post.Subreddit)
	}
	if post.PermalinkPath == nil || *post.PermalinkPath != "/r/golang/comments/abc/go_124_released/" {
		t.Errorf("Unexpected permalink path: %v", post.PermalinkPath)
	}
	if post.CreatedUTC == nil {
		t.Error("Expected created time from published element")
	}

	// Fields the feed cannot carry stay absent.
	if post.Score != nil || post.UpvoteRatio != nil || post.IsSelf != nil || post.Flair != nil {
		t.Error("Feed-sourced posts should leave unrepresented fields nil")
	}

	if posts[1].Author != nil {
		t.Errorf("Expected nil author for entry without one, got %v", *posts[1].Author)
	}
}

func TestHotRespectsLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/atom+xml")
		fmt.Fprint(w, hotFeed)
	}))
	defer server.Close()

	source := newSource(server.URL, "test-agent", 5*time.Second)
	posts, err := source.Hot(context.Background(), "golang", 1)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(posts) != 1 {
		t.Errorf("Expected 1 post with limit 1, got %d", len(posts))
	}
}

func TestSearchPassesQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/r/golang/search.rss" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if q := r.URL.Query().Get("q"); q != "error handling" {
			t.Errorf("Expected query 'error handling', got '%s'", q)
		}
		w.Header().Set("Content-Type", "application/atom+xml")
		fmt.Fprint(w, hotFeed)
	}))
	defer server.Close()

	source := newSource(server.URL, "test-agent", 5*time.Second)
	_, err := source.Search(context.Background(), "golang", "error handling", 10)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
}

func TestHotHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	source := newSource(server.URL, "test-agent", 5*time.Second)
	_, err := source.Hot(context.Background(), "private", 10)
	if err == nil {
		t.Error("Expected error for non-200 response")
	}
}
