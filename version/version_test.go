package version

import (
	"strings"
	"testing"
)

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	if info.Version == "" {
		t.Error("expected version to be set")
	}
	if info.BuildTime == "" {
		t.Error("expected build time fallback")
	}
}

func TestGetShortVersion(t *testing.T) {
	short := GetShortVersion()
	if short == "" {
		t.Fatal("expected non-empty short version")
	}
	if !strings.HasPrefix(short, Version) {
		t.Errorf("expected prefix %q, got %q", Version, short)
	}
}

func TestIsRelease(t *testing.T) {
	if (&Info{Version: "dev"}).IsRelease {
		t.Error("dev must not be a release")
	}
	orig := Version
	Version = "1.2.0"
	defer func() { Version = orig }()
	if !GetVersionInfo().IsRelease {
		t.Error("tagged version should be a release")
	}
}
