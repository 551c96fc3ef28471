// Package version reports the build version of the ittech tools.
package version

import "runtime/debug"

// Version can be set at build time:
// go build -ldflags "-X github.com/tracedump/ittech/version.Version=$(git describe --dirty)"
var Version string

// String returns the build-time version if one was set, otherwise the short
// VCS revision recorded in the build info, with a -dirty suffix for modified
// trees. Returns "unknown" when neither is available.
func String() string {
	if Version != "" {
		return Version
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	var revision string
	dirty := false
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if revision == "" {
		return "unknown"
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	if dirty {
		revision += "-dirty"
	}
	return revision
}
