package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/atelier-tools/vitrine/internal/version.Version
	Commit  = "none"    // -X github.com/atelier-tools/vitrine/internal/version.Commit
	Date    = "unknown" // -X github.com/atelier-tools/vitrine/internal/version.Date
)
