// Package buildinfo exposes build-time version information.
//
// The values are injected via ldflags at build time:
//
//	go build -ldflags "-X github.com/matzehuels/stairforge/pkg/buildinfo.Version=v1.0.0"
package buildinfo

import "fmt"

// Build-time variables, overridden via ldflags.
var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = "dev"

	// Commit is the git commit SHA the binary was built from.
	Commit = "unknown"

	// Date is the build timestamp in RFC 3339 form.
	Date = "unknown"
)

// Template returns the cobra version template including commit and date.
func Template() string {
	return fmt.Sprintf("stairforge %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
