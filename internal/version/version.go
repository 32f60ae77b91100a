// Package version holds build metadata for chain-resolver.
package version

// These variables are set at build time via ldflags, e.g.
// -X github.com/ethpandaops/chain-resolver/internal/version.Release=v0.1.0
var (
	Release   = "dev"
	GitCommit = "unknown"
)

// GetRelease returns the release version.
func GetRelease() string {
	return Release
}

// GetGitCommit returns the git commit hash.
func GetGitCommit() string {
	return GitCommit
}
