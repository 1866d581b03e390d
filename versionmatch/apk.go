package versionmatch

import (
	version "github.com/knqyf263/go-apk-version"

	"github.com/quay/xuma"
)

const apkTag = "apk-version"

// ApkVersionRange matches a Custom("apk-version", <version string>)
// value against an optional half-open range: Min is inclusive, Max is
// exclusive. Either may be left empty to leave that side unbounded.
type ApkVersionRange struct {
	Min, Max string
}

// Matches implements [xuma.ValueMatcher].
func (m ApkVersionRange) Matches(v xuma.Value) bool {
	tag, payload, ok := v.AsCustom()
	if !ok || tag != apkTag {
		return false
	}
	s, ok := payload.(string)
	if !ok {
		return false
	}
	ver, err := version.NewVersion(s)
	if err != nil {
		return false
	}
	if m.Min != "" {
		min, err := version.NewVersion(m.Min)
		if err != nil || ver.LessThan(min) {
			return false
		}
	}
	if m.Max != "" {
		max, err := version.NewVersion(m.Max)
		if err != nil || !ver.LessThan(max) {
			return false
		}
	}
	return true
}
