package cfg

type Cfg struct {
	// Reddit API credentials
	ClientID     string
	ClientSecret string
	UserAgent    string

	// Application configuration
	JobFile    string
	OutputPath string
	Source     string

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}
