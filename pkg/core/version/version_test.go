package version

import (
	"regexp"
	"runtime"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"Platform", Platform},
		{"Core", Core},
		{"CLI", CLI},
		{"Coerce", Coerce},
		{"Render", Render},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !semverRegex.MatchString(tt.version) {
				t.Errorf("%s version %q does not match semver format (x.y.z)", tt.name, tt.version)
			}
		})
	}
}

func TestComponentVersion(t *testing.T) {
	tests := []struct {
		component string
		expected  string
	}{
		{"core", Core},
		{"cli", CLI},
		{"coerce", Coerce},
		{"render", Render},
		{"unknown", Platform},
		{"", Platform},
	}

	for _, tt := range tests {
		t.Run(tt.component, func(t *testing.T) {
			if got := ComponentVersion(tt.component); got != tt.expected {
				t.Errorf("ComponentVersion(%q) = %q, want %q", tt.component, got, tt.expected)
			}
		})
	}
}

func TestInfo(t *testing.T) {
	info := Info()
	if info.Version != Platform {
		t.Errorf("Version = %q, want %q", info.Version, Platform)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q", info.GoVersion)
	}
	if !strings.Contains(info.String(), "strvec "+Platform) {
		t.Errorf("String() = %q", info.String())
	}
}
