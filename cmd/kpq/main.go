// Package main is the entry point for the kpq CLI client.
package main

import (
	"github.com/autokeyhq/keyprice-bot/cmd/kpq/cmd"
)

func main() {
	cmd.Execute()
}
