// Package version holds build metadata injected via ldflags.
package version

var (
	// Version is the semantic version of this build.
	Version = "1.0.0"
	// Commit is the git commit the binary was built from.
	Commit = ""
	// BuildDate is the build timestamp.
	BuildDate = ""
)
