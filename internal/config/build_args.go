package config

import "fmt"

// The following vars are automatically injected via -ldflags.
// See Makefile target "go-build" for the definition.
var (
	ModuleName = "build.local/misses/ldflags" // e.g. github/chapool/go-faucet
	Commit     = "< 40 chars git commit hash via ldflags >"
	BuildDate  = "1970-01-01T00:00:00+00:00" // RFC3339
)

func GetFormattedBuildArgs() string {
	return fmt.Sprintf("%v @ %v (%v)", ModuleName, Commit, BuildDate)
}
