// ABOUTME: Version and product constants
// ABOUTME: Identifies the audition build in logs and the TUI header
package version

const (
	// Version is the semantic version of this build
	Version = "0.2.0"

	// Product is the user-facing product name
	Product = "Audition"
)
