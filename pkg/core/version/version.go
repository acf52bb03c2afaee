// ============================================================================
// strvec - Vectorized string primitives
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and the CLI
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for all strvec components
const (
	// Platform version
	Platform = "1.0.0"

	// Component versions
	Core   = "1.0.0"
	CLI    = "1.0.0"
	Coerce = "1.0.0"
	Render = "1.0.0"
)

// Set at build time with -ldflags "-X github.com/msto63/strvec/pkg/core/version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "core":
		return Core
	case "cli":
		return CLI
	case "coerce":
		return Coerce
	case "render":
		return Render
	default:
		return Platform
	}
}

// BuildInfo describes the running binary
type BuildInfo struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Info returns the build information of the running binary
func Info() BuildInfo {
	return BuildInfo{
		Version:   Platform,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a single line summary
func (b BuildInfo) String() string {
	return fmt.Sprintf("strvec %s (commit %s, built %s, %s, %s)", b.Version, b.Commit, b.BuildDate, b.GoVersion, b.Platform)
}
