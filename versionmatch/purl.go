package versionmatch

import (
	"github.com/package-url/packageurl-go"

	"github.com/quay/xuma"
)

const purlTag = "purl"

// PurlType matches a Custom("purl", <purl string>) value whose parsed
// package URL has a given Type (e.g. "deb", "rpm", "npm", "golang").
type PurlType struct {
	Type string
}

// Matches implements [xuma.ValueMatcher].
func (m PurlType) Matches(v xuma.Value) bool {
	tag, payload, ok := v.AsCustom()
	if !ok || tag != purlTag {
		return false
	}
	s, ok := payload.(string)
	if !ok {
		return false
	}
	p, err := packageurl.FromString(s)
	if err != nil {
		return false
	}
	return p.Type == m.Type
}
