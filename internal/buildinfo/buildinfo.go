// Package buildinfo carries version stamps injected with
//
//	-ldflags "-X discube/internal/buildinfo.Version=v1.2.3 -X discube/internal/buildinfo.Commit=abc123"
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Name is the program name shown in window titles and --version output.
const Name = "discube"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for titles and log lines.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	if rev := vcsRevision(); rev != "" {
		return rev
	}
	return "dev"
}

// String returns "discube <version> (<commit>, <date>)".
func String() string {
	return fmt.Sprintf("%s %s (%s, %s)", Name, Version, Commit, Date)
}

// vcsRevision falls back to the revision the go tool embeds for builds inside a checkout.
func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return s.Value[:7]
		}
	}
	return ""
}
