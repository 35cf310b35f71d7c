// internal/version/version.go
package version

import "fmt"

// Set at build time via -ldflags.
var (
	Version = "v0.1.0-dev"
	Commit  = ""
	Date    = ""
)

// String renders the full version line shown by --version.
func String() string {
	if Commit == "" && Date == "" {
		return Version
	}
	return fmt.Sprintf("%s (%s - %s)", Version, Commit, Date)
}
