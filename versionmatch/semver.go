package versionmatch

import (
	"github.com/Masterminds/semver"

	"github.com/quay/xuma"
)

const semverTag = "semver"

// SemverRange matches a Custom("semver", <version string>) value against
// a semver constraint expression, e.g. ">=1.2.0, <2.0.0".
type SemverRange struct {
	constraints *semver.Constraints
}

// NewSemverRange compiles expr as a semver constraint set.
func NewSemverRange(expr string) (*SemverRange, error) {
	c, err := semver.NewConstraint(expr)
	if err != nil {
		return nil, &xuma.Error{Op: "versionmatch.NewSemverRange", Kind: xuma.ErrInvalidConfig, Inner: err}
	}
	return &SemverRange{constraints: c}, nil
}

// Matches implements [xuma.ValueMatcher].
func (m *SemverRange) Matches(v xuma.Value) bool {
	tag, payload, ok := v.AsCustom()
	if !ok || tag != semverTag {
		return false
	}
	s, ok := payload.(string)
	if !ok {
		return false
	}
	ver, err := semver.NewVersion(s)
	if err != nil {
		return false
	}
	return m.constraints.Check(ver)
}
