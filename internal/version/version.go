// Package version reports which tonal build is running. Release builds stamp
// Version, Commit and Date with -ldflags "-X"; local builds report "dev".
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the release tag, stamped with -X github.com/jmylchreest/tonal/internal/version.Version=v0.3.0.
	Version = "dev"

	// Commit is the full git hash the binary was built from.
	Commit = "unknown"

	// Date is the UTC build time in RFC3339.
	Date = "unknown"

	// GoVersion is the toolchain that compiled the binary.
	GoVersion = runtime.Version()
)

// shortCommit is the number of commit hash characters shown by String.
const shortCommit = 8

// Info is the JSON shape printed by "tonal version --json".
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo collects the stamped values with the running platform.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: GoVersion,
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String is the one-line banner used by "tonal version" and --version.
// The commit and date are left out of unstamped builds.
func String() string {
	info := GetInfo()
	if Commit != "unknown" && Date != "unknown" {
		commit := info.Commit
		if len(commit) > shortCommit {
			commit = commit[:shortCommit]
		}
		return fmt.Sprintf("tonal version %s (commit: %s, built: %s, %s, %s)",
			info.Version, commit, info.Date, info.GoVersion, info.Platform)
	}
	return fmt.Sprintf("tonal version %s (%s, %s)", info.Version, info.GoVersion, info.Platform)
}

// Short returns the bare version.
func Short() string {
	return Version
}
