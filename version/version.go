// Package version holds build information populated by the linker, e.g.
//
//	go build -ldflags "-X github.com/grovetools/cardvice/version.Version=v0.3.0"
//
// Binaries built with go install have no linker flags; for them the module
// version and VCS stamp of the build are used instead.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

const devVersion = "dev"

var (
	Version   = devVersion
	Commit    = "none"
	Branch    = "unknown"
	BuildDate = "unknown"
)

type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Branch    string `json:"branch"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// GetInfo returns the build information of the running binary.
func GetInfo() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Branch:    Branch,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok && info.IsDev() {
		info = fromBuildInfo(info, bi)
	}
	return info
}

// fromBuildInfo fills what the linker left at its defaults.
func fromBuildInfo(info Info, bi *debug.BuildInfo) Info {
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		info.Version = v
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && info.Commit == "none":
			info.Commit = s.Value
		case s.Key == "vcs.time" && info.BuildDate == "unknown":
			info.BuildDate = s.Value
		}
	}
	return info
}

// IsDev reports whether the binary carries no release version.
func (i Info) IsDev() bool {
	return i.Version == devVersion
}

func (i Info) String() string {
	return fmt.Sprintf(
		"Commit:\t\t%s\nBranch:\t\t%s\nBuild Date:\t%s\nGo Version:\t%s\nPlatform:\t%s",
		i.Commit, i.Branch, i.BuildDate, i.GoVersion, i.Platform,
	)
}
