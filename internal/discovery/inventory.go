package discovery

import (
	"context"

	"sweep/internal/config"
	"sweep/internal/log"
	"sweep/internal/system"
	"sweep/pkg/types"
)

// Options selects what Collect gathers.
type Options struct {
	Orphans  bool     // --orphans: only orphaned packages
	Residual bool     // --residual: only residual configs
	Home     bool     // include home-directory leftovers
	HomeDirs []string // directories to scan; HomeDirs() when nil
}

// Inventory is the result of Collect.
type Inventory struct {
	System types.PackageSystem
	Items  []types.SweepItem
}

// wants reports whether the detected system's backend was requested. With
// neither flag set every backend runs.
func (o Options) wants(sys types.PackageSystem) bool {
	switch sys {
	case types.Xbps:
		return o.Orphans || !o.Residual
	case types.Dpkg:
		return o.Residual || !o.Orphans
	}
	return false
}

// Collect detects the package system and assembles the removable items:
// packages first, then home artifacts matching their names.
func Collect(ctx context.Context, runner system.Runner, cfg *config.Config, opts Options) (*Inventory, error) {
	sys, err := Detect(cfg.OS, runner)
	if err != nil {
		return nil, err
	}
	inv := &Inventory{System: sys}

	if !opts.wants(sys) {
		log.Infof("%s has nothing for the requested filter", SystemLabel(sys))
		return inv, nil
	}

	packages, err := BackendFor(sys)(ctx, runner)
	if err != nil {
		return nil, err
	}

	for _, pkg := range packages {
		if excluded(cfg, pkg) {
			log.Debugf("excluded package %s", pkg.Name)
			continue
		}
		inv.Items = append(inv.Items, pkg)
	}
	names := types.PackageNames(inv.Items)

	if opts.Home && len(names) > 0 {
		dirs := opts.HomeDirs
		if dirs == nil {
			dirs = HomeDirs()
		}
		for _, art := range FindArtifacts(names, dirs) {
			if excluded(cfg, art) {
				continue
			}
			inv.Items = append(inv.Items, art)
		}
	}

	return inv, nil
}

// excluded reports whether an exclude pattern matches the key of item, with
// or without an architecture qualifier.
func excluded(cfg *config.Config, item types.SweepItem) bool {
	key := item.Key()
	return cfg.Excluded(key) || cfg.Excluded(baseName(key))
}
