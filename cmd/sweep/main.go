package main

import (
	"os"

	"sweep/cmd/sweep/cli"
	"sweep/internal/errors"
)

var (
	version = "dev"
)

// Entry point for the application
func main() {
	os.Exit(exitCode(NewRootCmd().Execute()))
}

// exitCode reports err and maps it to the process exit status. Removal
// failures were already reported item by item.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if !errors.Is(err, errors.ErrRemovalFailed) {
		cli.PrintError(err.Error())
	}
	return 1
}
