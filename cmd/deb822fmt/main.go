// Command deb822fmt is a small CLI over the deb822 package: inspect,
// edit, validate, and diff deb822-format control files (debian/control,
// Packages, Release, and friends) without disturbing anything the user
// didn't ask to change.
package main

import "os"

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}
