// Package version holds build information set with -ldflags.
package version

import "strings"

var (
	Version   = "0.1.0.dev1"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Environment is "development" for dev builds and "production" otherwise.
func Environment() string {
	if strings.Contains(Version, "dev") {
		return "development"
	}
	return "production"
}
