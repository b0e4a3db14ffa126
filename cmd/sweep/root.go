package main

import (
	"context"
	"fmt"
	"os"

	"sweep/cmd/sweep/cli"
	"sweep/internal/config"
	"sweep/internal/discovery"
	"sweep/internal/errors"
	"sweep/internal/log"
	"sweep/internal/remove"
	"sweep/internal/system"
	"sweep/internal/tui"
	"sweep/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootOptions holds the root command flags
type rootOptions struct {
	cfgFile  string
	orphans  bool
	residual bool
	delete   bool
	noHome   bool
	debug    bool
}

// app is everything runSweep talks to outside the process.
type app struct {
	runner      system.Runner
	interactive func() bool
	choose      func(items []types.SweepItem, cfg *config.Config, dryRun bool) (tui.Result, error)
	homeDirs    []string
}

func defaultApp() *app {
	return &app{
		runner:      system.NewExecRunner(),
		interactive: system.Interactive,
		choose: func(items []types.SweepItem, cfg *config.Config, dryRun bool) (tui.Result, error) {
			return tui.Run(items, cfg, dryRun)
		},
	}
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(defaultApp())
}

func newRootCmd(a *app) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "sweep",
		Short: "Interactively remove orphaned packages and leftovers",
		Long: `Sweep lists orphaned XBPS packages, dpkg residual configs and
directories in your XDG config, data and cache homes that belong to them.
Pick what to remove and confirm.

Nothing is deleted unless --delete is given.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.debug {
				log.Configure(log.WithOutput(os.Stderr), log.WithLevel(logrus.DebugLevel))
				log.SetDebug(true)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.cfgFile)
			if err != nil {
				return err
			}
			return a.runSweep(cmd.Context(), cfg, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVar(&opts.orphans, "orphans", false, "show only orphaned packages")
	flags.BoolVar(&opts.residual, "residual", false, "show only residual configs")
	flags.BoolVar(&opts.delete, "delete", false, "really delete (default is a dry run)")
	flags.BoolVar(&opts.noHome, "no-home", false, "skip leftovers in the home directory")
	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/sweep/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadConfigFile(path)
	}
	return config.LoadConfig()
}

func (a *app) runSweep(ctx context.Context, cfg *config.Config, opts *rootOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if !a.interactive() {
		return errors.New("sweep needs an interactive terminal")
	}
	dryRun := !opts.delete

	inv, err := discovery.Collect(ctx, a.runner, cfg, discovery.Options{
		Orphans:  opts.orphans,
		Residual: opts.residual,
		Home:     !opts.noHome,
		HomeDirs: a.homeDirs,
	})
	if err != nil {
		log.LogWithError(err).Debug("discovery failed")
		return err
	}

	cli.PrintInfo("Detected: " + discovery.SystemLabel(inv.System))
	if len(inv.Items) == 0 {
		cli.PrintSuccess("Nothing to clean")
		return nil
	}

	res, err := a.choose(inv.Items, cfg, dryRun)
	if err != nil {
		return err
	}
	if res.Outcome != types.Confirmed {
		cli.PrintWarning("Cancelled, nothing removed")
		return nil
	}

	if dryRun {
		cli.PrintHeader("DRY RUN: would remove:")
	} else {
		cli.PrintHeader(fmt.Sprintf("Removing %d item(s)", len(res.Selected)))
	}

	remover := remove.NewRemover(a.runner, cfg.SuCommand, cli.Out)
	report := remove.NewExecutor(remover, printEntry).Execute(ctx, res.Selected, dryRun)
	printReport(report)

	for _, e := range report.Entries {
		if e.Err != nil {
			log.LogWithError(e.Err).Debug("removal failed")
		}
	}
	return report.Err()
}

func printEntry(e remove.Entry) {
	switch e.Status {
	case remove.WouldRemove:
		cli.PrintMuted(e.Item.Display())
	case remove.Removed:
		cli.PrintSuccess("Removed " + e.Item.Display())
	case remove.Failed:
		cli.PrintError(e.Err.Error())
	}
}

func printReport(r remove.Report) {
	switch {
	case r.NothingSelected:
		cli.PrintWarning("Nothing selected")
	case r.DryRun:
		cli.PrintSuccess(fmt.Sprintf("Dry run complete: %d item(s) would be removed", r.Succeeded()))
	case r.Failed() > 0:
		cli.PrintError(fmt.Sprintf("%d of %d removal(s) failed", r.Failed(), len(r.Entries)))
	default:
		cli.PrintSuccess(fmt.Sprintf("Removed %d item(s)", r.Succeeded()))
	}
}
