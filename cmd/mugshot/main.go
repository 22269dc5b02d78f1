// Package main is the single-binary entrypoint for Mugshot.
package main

import "github.com/mugshot-app/mugshot/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
