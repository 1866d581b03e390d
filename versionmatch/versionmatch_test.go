package versionmatch

import (
	"testing"

	"github.com/quay/xuma"
)

func TestSemverRange(t *testing.T) {
	m, err := NewSemverRange(">=1.2.0, <2.0.0")
	if err != nil {
		t.Fatal(err)
	}
	if !m.Matches(xuma.Custom("semver", "1.5.0")) {
		t.Error("1.5.0 should be in range")
	}
	if m.Matches(xuma.Custom("semver", "2.0.0")) {
		t.Error("2.0.0 should not be in range")
	}
	if m.Matches(xuma.Custom("other-tag", "1.5.0")) {
		t.Error("wrong tag should not match")
	}
	if m.Matches(xuma.Absent) {
		t.Error("absent should not match")
	}
}

func TestApkVersionRange(t *testing.T) {
	m := ApkVersionRange{Min: "1.0.0-r0", Max: "2.0.0-r0"}
	if !m.Matches(xuma.Custom(apkTag, "1.5.0-r1")) {
		t.Error("expected in range")
	}
	if m.Matches(xuma.Custom(apkTag, "0.9.0-r0")) {
		t.Error("expected below range")
	}
}

func TestDebVersionRange(t *testing.T) {
	m := DebVersionRange{Max: "2.1.0-1"}
	if !m.Matches(xuma.Custom(debTag, "2.0.0-1")) {
		t.Error("expected in range")
	}
	if m.Matches(xuma.Custom(debTag, "2.1.0-1")) {
		t.Error("max bound is exclusive")
	}
}

func TestRpmVersionRange(t *testing.T) {
	m := RpmVersionRange{Min: "1.0-1", Max: "2.0-1"}
	if !m.Matches(xuma.Custom(rpmTag, "1.5-1")) {
		t.Error("expected in range")
	}
	if m.Matches(xuma.Custom(rpmTag, "2.0-1")) {
		t.Error("max bound is exclusive")
	}
}

func TestPurlType(t *testing.T) {
	m := PurlType{Type: "deb"}
	if !m.Matches(xuma.Custom(purlTag, "pkg:deb/debian/curl@7.68.0")) {
		t.Error("expected deb purl to match")
	}
	if m.Matches(xuma.Custom(purlTag, "pkg:npm/lodash@4.17.21")) {
		t.Error("npm purl should not match deb type")
	}
}
