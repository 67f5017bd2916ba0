// Package main is the single-binary entrypoint for E.L.E.S., the
// extinction-level event simulator.
package main

import "github.com/eles-sim/eles/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
