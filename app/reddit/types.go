package reddit

// listing is the envelope Reddit wraps around every listing endpoint.
type listing struct {
	Data listingData `json:"data"`
}

type listingData struct {
	After    string         `json:"after"`
	Children []listingChild `json:"children"`
}

type listingChild struct {
	Data rawPost `json:"data"`
}

// rawPost mirrors the subset of the post object the collector consumes.
// Pointer fields distinguish absent/null attributes from zero values.
type rawPost struct {
	Title         *string  `json:"title"`
	Score         *int     `json:"score"`
	UpvoteRatio   *float64 `json:"upvote_ratio"`
	NumComments   *int     `json:"num_comments"`
	Author        *string  `json:"author"`
	Subreddit     *string  `json:"subreddit"`
	URL           *string  `json:"url"`
	Permalink     *string  `json:"permalink"`
	CreatedUTC    *float64 `json:"created_utc"`
	IsSelf        *bool    `json:"is_self"`
	Selftext      *string  `json:"selftext"`
	LinkFlairText *string  `json:"link_flair_text"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}
