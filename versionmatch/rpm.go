package versionmatch

import (
	version "github.com/knqyf263/go-rpm-version"

	"github.com/quay/xuma"
)

const rpmTag = "rpm-version"

// RpmVersionRange matches a Custom("rpm-version", <version string>)
// value against an optional half-open range: Min is inclusive, Max is
// exclusive.
//
// go-rpm-version's NewVersion doesn't return an error (an unparsable
// string just compares as a lone release with no epoch), so unlike
// [ApkVersionRange]/[DebVersionRange] there's no parse failure to
// decline on here.
type RpmVersionRange struct {
	Min, Max string
}

// Matches implements [xuma.ValueMatcher].
func (m RpmVersionRange) Matches(v xuma.Value) bool {
	tag, payload, ok := v.AsCustom()
	if !ok || tag != rpmTag {
		return false
	}
	s, ok := payload.(string)
	if !ok {
		return false
	}
	ver := version.NewVersion(s)
	if m.Min != "" && ver.Compare(version.NewVersion(m.Min)) == version.LESS {
		return false
	}
	if m.Max != "" && ver.Compare(version.NewVersion(m.Max)) != version.LESS {
		return false
	}
	return true
}
