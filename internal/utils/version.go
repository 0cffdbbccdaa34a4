package utils

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version information - set via ldflags during build
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// GetVersionString returns a formatted version string. Binaries installed
// with `go install` carry no ldflags, so the module version is used instead.
func GetVersionString() string {
	version := Version
	if version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, Commit, Date)
}
