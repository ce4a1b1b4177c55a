// Package version exposes build information stamped in via -ldflags.
package version

var (
	// Version is the release version, e.g. "v1.2.0".
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
