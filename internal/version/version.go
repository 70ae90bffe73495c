// Package version holds build metadata injected via ldflags:
//
//	-X github.com/kailas-cloud/geolens/internal/version.Version=v1.2.0
package version

//nolint:revive // Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String renders version, commit and build date in one line.
func String() string {
	return Version + " (" + Commit + ", " + Date + ")"
}
