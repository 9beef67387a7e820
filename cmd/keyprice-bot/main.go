// Package main is the entry point for the keyprice-bot server.
package main

import (
	"os"

	"github.com/autokeyhq/keyprice-bot/cmd/keyprice-bot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
