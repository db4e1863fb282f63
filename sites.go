package remodel

// siteURLs maps well-known developer site names to their canonical urls
var siteURLs = map[string]string{
	"github":         "https://github.com",
	"stack-overflow": "https://stackoverflow.com",
	"dev-to":         "https://dev.to",
	"hacker-news":    "https://news.ycombinator.com",
	"medium":         "https://medium.com",
	"reddit":         "https://www.reddit.com",
	"mdn":            "https://developer.mozilla.org",
	"npm":            "https://www.npmjs.com",
	"go-dev":         "https://go.dev",
}

// SiteURL returns the canonical url for a well-known site name
//
// the name is matched case and separator insensitively (e.g. "Stack Overflow"
// matches "stack-overflow")
func SiteURL(name string) (string, bool) {
	url, ok := siteURLs[KebabCase(name)]
	return url, ok
}
