package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo()
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	assert.Contains(t, info.String(), "Build Date:")
}

func TestFromBuildInfo(t *testing.T) {
	base := Info{Version: devVersion, Commit: "none", Branch: "unknown", BuildDate: "unknown"}

	info := fromBuildInfo(base, &debug.BuildInfo{
		Main: debug.Module{Version: "v0.4.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "a1b2c3d"},
			{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
		},
	})
	assert.Equal(t, "v0.4.1", info.Version)
	assert.Equal(t, "a1b2c3d", info.Commit)
	assert.Equal(t, "2026-10-01T12:00:00Z", info.BuildDate)
	assert.False(t, info.IsDev())

	info = fromBuildInfo(base, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	assert.True(t, info.IsDev())

	linked := base
	linked.Commit = "feedbee"
	info = fromBuildInfo(linked, &debug.BuildInfo{
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "a1b2c3d"}},
	})
	assert.Equal(t, "feedbee", info.Commit)
}
