package main

import (
	"github.com/dori/clockin/internal/cli"
)

// Set at build time with -ldflags.
var (
	version = "0.1.0"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)
	cli.Execute()
}
