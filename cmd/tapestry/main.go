// Package main provides the tapestry CLI for building Tapestry web API
// request URLs.
package main

import (
	"fmt"
	"os"

	"github.com/jdziat/tapestry-go/cmd/tapestry/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
