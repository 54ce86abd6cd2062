// Command messenger wires the messenger graph through the di container and
// dispatches a message.
//
// Usage:
//
//	messenger dispatch --content "Raw message" --priority high
//	messenger dispatch --scripted             # rejected before encryption
//	messenger bindings                        # print contract -> implementation
//
// Configuration comes from --config (YAML), then ODI_* environment variables.
// See package config for the keys.
package main

import (
	"fmt"
	"os"
)

// Build information injected via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	root := newRootCmd(fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date))
	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
