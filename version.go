package docsync

import (
	"html"
	"regexp"
	"strings"
)

// VersionCheck is the result of inspecting the documentation homepage
// for its version banner.
type VersionCheck struct {
	Version string
	URL     string
}

// The xsnow documentation banner exposes a snippet of text such as
// "Version: dev (abcdef)".
var bannerPattern = regexp.MustCompile(`(?i)Version:\s*([^<]+)`)

// ParseBannerVersion extracts the banner version string from an HTML
// page. Returns the empty string when no banner is present so callers
// can decide how to report the missing value.
func ParseBannerVersion(htmlText string) string {
	m := bannerPattern.FindStringSubmatch(htmlText)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(m[1]))
}
