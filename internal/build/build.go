// Package build holds build-time information.
package build

// Build metadata, overwritten by linker flags in release builds.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
