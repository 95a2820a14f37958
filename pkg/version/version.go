// Package version reports the build version of tickwheel.
package version

import "github.com/Masterminds/semver/v3"

// Set via -ldflags at build time.
//
//nolint:gochecknoglobals // populated by the linker
var (
	version   = "0.1.0-dev"
	gitCommit = ""
	buildDate = ""
)

// GetVersion returns the build version without a leading "v".
func GetVersion() string {
	if v, err := semver.NewVersion(version); err == nil {
		return v.String()
	}
	return version
}

// GetGitCommit returns the commit the binary was built from, if known.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp, if known.
func GetBuildDate() string {
	return buildDate
}
