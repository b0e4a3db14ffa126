// Package remove deletes selected sweep items through the package manager
// that owns them or through the filesystem.
package remove

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"sweep/internal/errors"
	"sweep/internal/log"
	"sweep/internal/system"
	"sweep/pkg/types"
)

// Remover removes a single item. Dry runs only print the command that
// would have been run.
type Remover struct {
	runner    system.Runner
	suCommand []string
	out       io.Writer
}

// NewRemover creates a remover. suCommand may carry arguments ("sudo -A").
func NewRemover(runner system.Runner, suCommand string, out io.Writer) *Remover {
	if out == nil {
		out = io.Discard
	}
	return &Remover{
		runner:    runner,
		suCommand: strings.Fields(suCommand),
		out:       out,
	}
}

// Command returns the command line that removes item, as printed in dry runs.
func (r *Remover) Command(item types.SweepItem, dryRun bool) []string {
	switch it := item.(type) {
	case types.Package:
		switch it.System {
		case types.Xbps:
			flag := "-y"
			if dryRun {
				flag = "-n"
			}
			return []string{"xbps-remove", "-R", flag, it.Name}
		case types.Dpkg:
			return append(append([]string{}, r.suCommand...), "dpkg", "--purge", it.Name)
		}
	case types.HomeArtifact:
		return []string{"rm", "-rf", it.Path}
	}
	return nil
}

// Remove deletes item, or prints what would be deleted when dryRun is set.
func (r *Remover) Remove(ctx context.Context, item types.SweepItem, dryRun bool) error {
	cmd := r.Command(item, dryRun)
	if cmd == nil {
		return errors.Newf("cannot remove %T", item)
	}

	if dryRun {
		fmt.Fprintf(r.out, "would run: %s\n", system.CommandLine(cmd[0], cmd[1:]...))
		return nil
	}

	switch it := item.(type) {
	case types.Package:
		log.Debugf("removing %s package %s", it.System, it.Name)
		if err := r.runner.Run(ctx, cmd[0], cmd[1:]...); err != nil {
			return errors.NewRemovalError(it.System.String()+" removal failed", it.Name, errors.BackendFailed, err)
		}
	case types.HomeArtifact:
		return removePath(it.Path)
	}
	return nil
}

// removePath deletes path recursively. An already absent path is not an error.
func removePath(path string) error {
	if _, err := os.Lstat(path); err != nil {
		if os.IsNotExist(err) {
			log.Debugf("%s already gone", path)
			return nil
		}
		return errors.NewRemovalError("cannot stat", path, errors.IoFailed, err)
	}
	if err := os.RemoveAll(path); err != nil {
		return errors.NewRemovalError("cannot remove", path, errors.IoFailed, err)
	}
	return nil
}
