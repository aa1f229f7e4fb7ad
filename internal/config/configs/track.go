package configs

// Track configures the scan-attribution endpoint.
type Track struct {
	// FallbackURL is the redirect destination for scans on billboards
	// with no active campaign.
	FallbackURL string `env:"FALLBACK_URL" envDefault:"https://adtrackng.com"`
}
