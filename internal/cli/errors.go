package cli

import (
	"errors"

	"todo-cli/internal/api"
	"todo-cli/internal/config"
)

// Process exit codes.
const (
	ExitOK = 0
	// ExitUsage covers bad arguments, invalid titles and declined input.
	ExitUsage = 1
	// ExitConfig means the service address is missing or invalid.
	ExitConfig = 2
	// ExitRemote means the service could not be reached or rejected the call.
	ExitRemote = 3
)

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var cerr config.ConfigurationError
	if errors.As(err, &cerr) {
		return ExitConfig
	}
	var rerr *api.RequestError
	if errors.As(err, &rerr) {
		return ExitRemote
	}
	return ExitUsage
}
