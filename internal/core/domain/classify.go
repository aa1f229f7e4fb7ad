package domain

import "strings"

// DeviceType is the coarse device category attached to a scan event.
type DeviceType string

const (
	DeviceMobile  DeviceType = "mobile"
	DeviceTablet  DeviceType = "tablet"
	DeviceDesktop DeviceType = "desktop"
)

// Crawler and preview-fetcher signatures matched case-insensitively as
// substrings. This is a heuristic analytics tag, not a security gate;
// false positives and negatives are acceptable.
var botTokens = []string{
	"bot", "crawl", "spider", "slurp", "baidu", "yandex", "bing",
	"google", "facebook", "twitter", "linkedin", "pinterest",
	"semrush", "ahref", "mj12bot", "dotbot", "petalbot",
}

var (
	mobileTokens = []string{"mobile", "android", "iphone", "ipod"}
	tabletTokens = []string{"tablet", "ipad"}
)

// IsBot reports whether the user-agent string matches a known
// crawler/bot signature. Pure function of its input.
func IsBot(userAgent string) bool {
	ua := strings.ToLower(userAgent)
	for _, tok := range botTokens {
		if strings.Contains(ua, tok) {
			return true
		}
	}
	return false
}

// DetectDevice classifies a user-agent string into a DeviceType. Mobile
// tokens take precedence over tablet tokens; anything else is desktop.
// Total over all inputs, including the empty string.
func DetectDevice(userAgent string) DeviceType {
	ua := strings.ToLower(userAgent)
	for _, tok := range mobileTokens {
		if strings.Contains(ua, tok) {
			return DeviceMobile
		}
	}
	for _, tok := range tabletTokens {
		if strings.Contains(ua, tok) {
			return DeviceTablet
		}
	}
	return DeviceDesktop
}
