// Package main provides the entry point for the logstats CLI.
package main

import (
	"fmt"
	"os"

	"log-stats/cmd/logstats/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
