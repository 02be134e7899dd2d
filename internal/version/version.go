// Package version holds the service identity reported by the health
// endpoint and the CLI --version flag.
package version

const (
	// ServiceName identifies the service in health responses.
	ServiceName = "promptgen-api"

	// Version is the service version string.
	Version = "1.0.0"
)
