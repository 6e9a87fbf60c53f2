package rss

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/lysyi3m/reddit-comb/app/collector"
)

var _ collector.Source = (*Source)(nil)

// Source reads subreddit listings from Reddit's public RSS feeds. It needs no
// credentials, at the cost of a much thinner record: the feed carries no
// score, vote ratio, comment count, self flag, body or flair, so those fields
// normalize to null downstream.
type Source struct {
	baseURL    string
	httpClient *http.Client
	parser     *gofeed.Parser
	userAgent  string
}

func NewSource(userAgent string, timeout time.Duration) *Source {
	return newSource(collector.BaseURL, userAgent, timeout)
}

func newSource(baseURL, userAgent string, timeout time.Duration) *Source {
	return &Source{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		parser:     gofeed.NewParser(),
		userAgent:  userAgent,
	}
}

// Hot returns up to limit posts from the subreddit's hot feed.
func (s *Source) Hot(ctx context.Context, subreddit string, limit int) ([]collector.Post, error) {
	feedURL := fmt.Sprintf("%s/r/%s/hot.rss?limit=%d", s.baseURL, subreddit, limit)
	return s.fetchFeed(ctx, feedURL, subreddit, limit)
}

// Search returns up to limit posts matching query within the subreddit's
// search feed.
func (s *Source) Search(ctx context.Context, subreddit string, query string, limit int) ([]collector.Post, error) {
	feedURL := fmt.Sprintf("%s/r/%s/search.rss?q=%s&restrict_sr=on&limit=%d",
		s.baseURL, subreddit, url.QueryEscape(query), limit)
	return s.fetchFeed(ctx, feedURL, subreddit, limit)
}

func (s *Source) fetchFeed(ctx context.Context, feedURL, subreddit string, limit int) ([]collector.Post, error) {
	data, err := s.fetch(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	feed, err := s.parser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	posts := make([]collector.Post, 0, len(feed.Items))
	for _, item := range feed.Items {
		if len(posts) == limit {
			break
		}
		posts = append(posts, s.toPost(item, subreddit))
	}

	slog.Debug("Feed fetched", "subreddit", subreddit, "posts", len(posts))
	return posts, nil
}

func (s *Source) fetch(ctx context.Context, feedURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}

// toPost maps a feed entry onto the collector's raw post. Only title, author,
// permalink and publication time survive the feed representation.
func (s *Source) toPost(item *gofeed.Item, subreddit string) collector.Post {
	post := collector.Post{
		Subreddit: subreddit,
	}

	if item.Title != "" {
		title := item.Title
		post.Title = &title
	}

	if author := s.extractAuthor(item); author != "" {
		post.Author = &author
	}

	if path := s.permalinkPath(item.Link); path != "" {
		post.PermalinkPath = &path
	}

	if item.PublishedParsed != nil {
		epoch := float64(item.PublishedParsed.Unix())
		post.CreatedUTC = &epoch
	}

	return post
}

// extractAuthor strips the "/u/" prefix Reddit feeds put on author names.
func (s *Source) extractAuthor(item *gofeed.Item) string {
	var name string
	if len(item.Authors) > 0 && item.Authors[0] != nil {
		name = item.Authors[0].Name
	} else if item.Author != nil {
		name = item.Author.Name
	}
	return strings.TrimPrefix(strings.TrimSpace(name), "/u/")
}

// permalinkPath reduces the feed entry link to the relative permalink the
// normalizer expects.
func (s *Source) permalinkPath(link string) string {
	if link == "" {
		return ""
	}
	if strings.HasPrefix(link, collector.BaseURL) {
		return strings.TrimPrefix(link, collector.BaseURL)
	}

	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	return u.Path
}
