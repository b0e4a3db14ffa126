// Package discovery lists removable packages through the host package
// manager and correlates leftover home directories with them.
package discovery

import (
	"context"
	"os/exec"

	"sweep/internal/errors"
	"sweep/internal/system"
	"sweep/pkg/types"
)

// Backend lists the removable packages of one package manager.
type Backend func(ctx context.Context, runner system.Runner) ([]types.Package, error)

// BackendFor returns the discovery backend for a package system.
func BackendFor(sys types.PackageSystem) Backend {
	switch sys {
	case types.Xbps:
		return ListOrphans
	case types.Dpkg:
		return ListResidualConfigs
	default:
		return nil
	}
}

// output runs a discovery command and classifies its failure.
func output(ctx context.Context, runner system.Runner, name string, args ...string) (string, error) {
	out, err := runner.Output(ctx, name, args...)
	if err != nil {
		cmdline := system.CommandLine(name, args...)
		if errors.Is(err, exec.ErrNotFound) {
			return "", errors.NewDiscoveryError("command not found", cmdline, errors.CommandNotFound, err)
		}
		return "", errors.NewDiscoveryError("command failed", cmdline, errors.DiscoveryFailed, err)
	}
	return string(out), nil
}
