package version

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseISOTime(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2025-03-04T05:06:07Z", time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)},
		{"2025-03-04T05:06:07", time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)},
		{"2025-03-04 05:06:07", time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)},
		{"unknown", time.Time{}},
		{"garbage", time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.True(t, tt.want.Equal(parseISOTime(tt.in)))
		})
	}
}

func TestInjectedVersion(t *testing.T) {
	oldVersion, oldCommit := Version, GitCommit
	t.Cleanup(func() { Version, GitCommit = oldVersion, oldCommit })

	Version, GitCommit = "v1.2.3", "abcdef1234567"
	assert.Equal(t, "v1.2.3", GetVersion())
	assert.Equal(t, "v1.2.3 (abcdef1)", GetShortVersion())
	assert.True(t, IsRelease())
	assert.Equal(t, "prettytext/v1.2.3", UserAgent())
	assert.True(t, strings.HasPrefix(GetDetailedVersion(), "Version: v1.2.3\nCommit: abcdef1234567"))
}

func TestBuildInfo(t *testing.T) {
	info := GetBuildInfo()
	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}
