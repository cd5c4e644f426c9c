// Package version contains release markers used to negotiate wire compatibility
// between peers.
package version

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
	"golang.org/x/xerrors"
)

// Version is a release marker.
type Version struct {
	Major int
	Minor int
	Patch int
}

var (
	V7_6_0 = Version{Major: 7, Minor: 6, Patch: 0}

	// Current is the version this build speaks.
	Current = V7_6_0
)

// Parse parses "7.6.0", "v7.6.0" or a shortened form like "7.6".
// Pre-release and build suffixes are rejected.
func Parse(s string) (Version, error) {
	v := strings.TrimSpace(s)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return Version{}, xerrors.Errorf("invalid version %q", s)
	}
	if semver.Prerelease(v) != "" || semver.Build(v) != "" {
		return Version{}, xerrors.Errorf("version %q must not have suffix", s)
	}

	var r Version
	if _, err := fmt.Sscanf(semver.Canonical(v), "v%d.%d.%d", &r.Major, &r.Minor, &r.Patch); err != nil {
		return Version{}, xerrors.Errorf("scan version %q: %w", s, err)
	}
	return r, nil
}

func (v Version) semver() string {
	return "v" + v.String()
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1, 0 or +1 depending on whether v < w, v == w or v > w.
func (v Version) Compare(w Version) int {
	return semver.Compare(v.semver(), w.semver())
}

func (v Version) Before(w Version) bool {
	return v.Compare(w) < 0
}

func (v Version) OnOrAfter(w Version) bool {
	return v.Compare(w) >= 0
}
