//go:build !cgo

package main

import (
	"flag"
	"fmt"
	"os"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("easyhunger-hud %s (%s) %s\n", version, commit, date)
		return
	}

	fmt.Fprintln(os.Stderr, "easyhunger-hud needs a cgo build with raylib; use `easyhunger simulate` for a headless run.")
	os.Exit(1)
}
