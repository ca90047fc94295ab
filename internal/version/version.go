package version

import (
	"fmt"
	"runtime"
)

// Set at build time via -ldflags "-X perfplayground/internal/version.Version=...".
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

func String() string {
	base := Version
	if Commit != "" {
		base += fmt.Sprintf(" (%s)", Commit)
	}
	if Date != "" {
		base += " built " + Date
	}
	return base + " " + runtime.Version()
}
