// Package buildinfo carries version metadata stamped at link time.
package buildinfo

// Overridden with -ldflags "-X" at release time; the zero values identify
// a local development build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
