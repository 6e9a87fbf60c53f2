package reddit

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/lysyi3m/reddit-comb/app/collector"
)

const (
	defaultAuthURL = "https://www.reddit.com"
	defaultAPIURL  = "https://oauth.reddit.com"

	// Reddit caps listing pages at 100 items.
	maxPageSize = 100

	deletedAuthor = "[deleted]"
)

var _ collector.Source = (*Client)(nil)

// Client is an app-only (client credentials) Reddit API client. It fetches an
// OAuth token lazily and pages through listing endpoints up to the requested
// limit.
type Client struct {
	http *resty.Client
	auth *resty.Client

	clientID     string
	clientSecret string

	token       string
	tokenExpiry time.Time
}

func NewClient(clientID, clientSecret, userAgent string, timeout time.Duration) *Client {
	return newClient(defaultAuthURL, defaultAPIURL, clientID, clientSecret, userAgent, timeout)
}

func newClient(authURL, apiURL, clientID, clientSecret, userAgent string, timeout time.Duration) *Client {
	http := resty.New()
	http.SetBaseURL(apiURL)
	http.SetHeader("User-Agent", userAgent)
	http.SetTimeout(timeout)
	http.SetRetryCount(2)
	http.SetRetryWaitTime(2 * time.Second)

	auth := resty.New()
	auth.SetBaseURL(authURL)
	auth.SetHeader("User-Agent", userAgent)
	auth.SetTimeout(timeout)

	return &Client{
		http:         http,
		auth:         auth,
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

// Hot returns up to limit posts from the subreddit's hot listing.
func (c *Client) Hot(ctx context.Context, subreddit string, limit int) ([]collector.Post, error) {
	path := fmt.Sprintf("/r/%s/hot", subreddit)
	return c.fetchListing(ctx, path, nil, limit)
}

// Search returns up to limit posts matching query, restricted to the subreddit.
func (c *Client) Search(ctx context.Context, subreddit string, query string, limit int) ([]collector.Post, error) {
	path := fmt.Sprintf("/r/%s/search", subreddit)
	params := map[string]string{
		"q":           query,
		"restrict_sr": "on",
	}
	return c.fetchListing(ctx, path, params, limit)
}

// fetchListing pages through a listing endpoint until limit posts are
// gathered or the listing is exhausted.
func (c *Client) fetchListing(ctx context.Context, path string, params map[string]string, limit int) ([]collector.Post, error) {
	if err := c.ensureToken(ctx); err != nil {
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	posts := make([]collector.Post, 0, limit)
	after := ""

	for len(posts) < limit {
		pageSize := limit - len(posts)
		if pageSize > maxPageSize {
			pageSize = maxPageSize
		}

		var page listing
		req := c.http.R().
			SetContext(ctx).
			SetAuthToken(c.token).
			SetQueryParam("limit", strconv.Itoa(pageSize)).
			SetQueryParam("raw_json", "1").
			SetResult(&page)

		for k, v := range params {
			req.SetQueryParam(k, v)
		}
		if after != "" {
			req.SetQueryParam("after", after)
		}

		resp, err := req.Get(path)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch listing: %w", err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode(), resp.Status())
		}

		if len(page.Data.Children) == 0 {
			break
		}

		for _, child := range page.Data.Children {
			posts = append(posts, toPost(child.Data))
			if len(posts) == limit {
				break
			}
		}

		after = page.Data.After
		if after == "" {
			break
		}
	}

	slog.Debug("Listing fetched", "path", path, "posts", len(posts))
	return posts, nil
}

// ensureToken fetches an app-only OAuth token when none is cached or the
// cached one is about to expire.
func (c *Client) ensureToken(ctx context.Context) error {
	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return nil
	}

	var token tokenResponse
	resp, err := c.auth.R().
		SetContext(ctx).
		SetBasicAuth(c.clientID, c.clientSecret).
		SetFormData(map[string]string{"grant_type": "client_credentials"}).
		SetResult(&token).
		Post("/api/v1/access_token")
	if err != nil {
		return fmt.Errorf("token request failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("token request failed: %d %s", resp.StatusCode(), resp.Status())
	}
	if token.AccessToken == "" {
		return fmt.Errorf("token response carried no access token")
	}

	c.token = token.AccessToken
	// Renew a minute early to avoid racing the expiry mid-pass.
	c.tokenExpiry = time.Now().Add(time.Duration(token.ExpiresIn)*time.Second - time.Minute)

	slog.Debug("OAuth token acquired", "expires_in", token.ExpiresIn)
	return nil
}

// toPost maps the wire record onto the collector's raw post. Deleted or
// suspended accounts come back as the "[deleted]" sentinel and map to nil.
func toPost(raw rawPost) collector.Post {
	post := collector.Post{
		Title:         raw.Title,
		Score:         raw.Score,
		UpvoteRatio:   raw.UpvoteRatio,
		NumComments:   raw.NumComments,
		URL:           raw.URL,
		PermalinkPath: raw.Permalink,
		CreatedUTC:    raw.CreatedUTC,
		IsSelf:        raw.IsSelf,
		Selftext:      raw.Selftext,
		Flair:         raw.LinkFlairText,
	}

	if raw.Author != nil && *raw.Author != "" && *raw.Author != deletedAuthor {
		post.Author = raw.Author
	}

	if raw.Subreddit != nil {
		post.Subreddit = *raw.Subreddit
	}

	return post
}
