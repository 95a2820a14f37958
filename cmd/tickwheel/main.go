package main

import (
	"errors"
	"os"

	"github.com/rshade/tickwheel/internal/cli"
	"github.com/rshade/tickwheel/pkg/version"
)

func run() error {
	return cli.NewRootCmd(version.GetVersion()).Execute()
}

// extractExitCode maps a command error to a process exit code. An ExitError
// anywhere in the chain supplies its own code; any other error is 1.
func extractExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

func main() {
	// cobra has already printed the error.
	os.Exit(extractExitCode(run()))
}
