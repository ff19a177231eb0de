package version

import (
	"runtime/debug"
)

// Version returns the git revision baked into the binary's buildinfo, or
// "devel" when built outside version control.
func Version() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		panic("Unable to get build info")
	}
	for i := range bi.Settings {
		if bi.Settings[i].Key == "vcs.revision" {
			return bi.Settings[i].Value
		}
	}
	return "devel"
}
