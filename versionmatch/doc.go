// Package versionmatch supplies [xuma.ValueMatcher] implementations over
// [xuma.Value] of kind Custom, built on the same package-version
// comparison libraries the ecosystem already trusts for vulnerability
// matching: Masterminds/semver, and knqyf263's apk/deb/rpm version
// packages, plus package-url/packageurl-go for purl-type comparison.
//
// A versionmatch matcher only recognizes a Custom value carrying the tag
// it was built for ("semver", "apk-version", "deb-version",
// "rpm-version", "purl"); any other tag, or any non-Custom value, is
// reported as a non-match rather than an error, consistent with the
// rest of the built-in matchers declining values they don't understand.
package versionmatch
