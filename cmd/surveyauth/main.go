// Package main provides the entry point for surveyauth.
package main

import (
	"os"

	"github.com/yndnr/surveyauth-go/internal/cli/command"
)

func main() {
	os.Exit(command.Run(os.Args, os.Stdout, os.Stderr))
}
