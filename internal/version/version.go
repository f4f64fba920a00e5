// Package version holds the CLI version, set at build time.
package version

// Version is the semantic version of the build. Overridden via
// -ldflags "-X github.com/catalogkit/purview-go/internal/version.Version=...".
var Version = "0.1.0-dev"
