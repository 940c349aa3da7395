// Package version identifies the ingestd build. The release pipeline
// stamps these variables with -ldflags; unstamped builds report "dev",
// which is what sensor-site logs show when someone runs a local build.
package version

import "fmt"

var (
	// Version is the release tag.
	Version = "dev"
	// GitSHA identifies the commit the binary was built from.
	GitSHA = "unknown"
	// BuildTime is when the binary was linked.
	BuildTime = "unknown"
)

// String renders the build identification for the startup log line.
func String() string {
	return fmt.Sprintf("%s (%s, built %s)", Version, GitSHA, BuildTime)
}
