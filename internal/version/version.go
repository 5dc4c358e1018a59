// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package version provides build-time version information for objcgen.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
)

// These variables are set at build time using ldflags.
var (
	// Version is the semantic version (e.g., "0.1.0").
	Version = "dev"
	// Commit is the git commit SHA.
	Commit = "none"
	// Date is the build date in RFC3339 format.
	Date = "unknown"
)

// Build describes the running binary.
type Build struct {
	Version string
	Commit  string
	Date    string
	Go      string
}

var (
	once    sync.Once
	current Build
)

// Current returns the build information, filling values not set via ldflags from the
// module build info (available when installed with "go install module@version").
func Current() Build {
	once.Do(func() {
		current = fromBuildInfo(Build{Version: Version, Commit: Commit, Date: Date, Go: runtime.Version()})
	})
	return current
}

func fromBuildInfo(b Build) Build {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return b
	}
	if b.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		b.Version = info.Main.Version
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if b.Commit == "none" && len(setting.Value) >= 7 {
				b.Commit = setting.Value[:7]
			}
		case "vcs.time":
			if b.Date == "unknown" {
				b.Date = setting.Value
			}
		}
	}
	return b
}

// String formats b the way the version command prints it.
func (b Build) String() string {
	return fmt.Sprintf("objcgen version %s (commit: %s, built: %s, go: %s)", b.Version, b.Commit, b.Date, b.Go)
}

// Info returns formatted version information.
func Info() string {
	return Current().String()
}

// Short returns just the version string.
func Short() string {
	return Current().Version
}
