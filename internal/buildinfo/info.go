// Package buildinfo carries the version stamp injected at build time.
package buildinfo

// Set via -ldflags at release time; the defaults identify a from-source build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
