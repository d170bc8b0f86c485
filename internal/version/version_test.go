package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

// withBuildInfo replaces the embedded build info and restores the injected
// values after the test.
func withBuildInfo(t *testing.T, bi *debug.BuildInfo) {
	t.Helper()

	origRead := readBuildInfo
	origVersion, origCommit, origDate := Version, Commit, Date
	t.Cleanup(func() {
		readBuildInfo = origRead
		Version, Commit, Date = origVersion, origCommit, origDate
	})

	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return bi, bi != nil
	}
}

func TestString(t *testing.T) {
	t.Run("without build info", func(t *testing.T) {
		withBuildInfo(t, nil)
		Version, Commit, Date = "dev", "unknown", "unknown"

		got := String()
		if !strings.HasPrefix(got, "touchicon version dev (") {
			t.Errorf("String() = %q, want prefix %q", got, "touchicon version dev (")
		}
		if strings.Contains(got, "commit:") {
			t.Errorf("String() = %q, should not mention commit", got)
		}
	})

	t.Run("with injected values", func(t *testing.T) {
		withBuildInfo(t, nil)
		Commit, Date = "0123456789abcdef", "2025-01-01T00:00:00Z"

		got := String()
		if !strings.Contains(got, "commit: 01234567,") {
			t.Errorf("String() = %q, want truncated commit", got)
		}
		if !strings.Contains(got, "built: 2025-01-01T00:00:00Z") {
			t.Errorf("String() = %q, want build date", got)
		}
	})

	t.Run("short commit", func(t *testing.T) {
		withBuildInfo(t, nil)
		Commit, Date = "abc", "2025-01-01T00:00:00Z"

		if got := String(); !strings.Contains(got, "commit: abc,") {
			t.Errorf("String() = %q, want short commit kept", got)
		}
	})

	t.Run("from module build info", func(t *testing.T) {
		withBuildInfo(t, &debug.BuildInfo{
			Main: debug.Module{Version: "v1.4.0"},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "fedcba9876543210"},
				{Key: "vcs.time", Value: "2025-06-01T12:00:00Z"},
				{Key: "vcs.modified", Value: "true"},
			},
		})
		Version, Commit, Date = "dev", "unknown", "unknown"

		got := String()
		want := "touchicon version 1.4.0 (commit: fedcba98-dirty, built: 2025-06-01T12:00:00Z,"
		if !strings.HasPrefix(got, want) {
			t.Errorf("String() = %q, want prefix %q", got, want)
		}
		if Short() != "1.4.0" {
			t.Errorf("Short() = %q, want 1.4.0", Short())
		}
	})

	t.Run("injected values win over build info", func(t *testing.T) {
		withBuildInfo(t, &debug.BuildInfo{
			Main:     debug.Module{Version: "v1.4.0"},
			Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "fedcba9876543210"}},
		})
		Version, Commit, Date = "2.0.0", "0123456789abcdef", "2025-01-01T00:00:00Z"

		got := String()
		if !strings.HasPrefix(got, "touchicon version 2.0.0 (commit: 01234567,") {
			t.Errorf("String() = %q", got)
		}
	})

	t.Run("devel module version ignored", func(t *testing.T) {
		withBuildInfo(t, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
		Version = "dev"

		if Short() != "dev" {
			t.Errorf("Short() = %q, want dev", Short())
		}
	})
}

func TestGetInfoPlatform(t *testing.T) {
	withBuildInfo(t, nil)

	info := GetInfo()
	if !strings.Contains(info.Platform, "/") {
		t.Errorf("Platform = %q, want os/arch", info.Platform)
	}
	if info.GoVersion == "" {
		t.Error("GoVersion is empty")
	}
}
