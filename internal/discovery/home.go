package discovery

import (
	"os"
	"path/filepath"

	"sweep/internal/log"
	"sweep/pkg/types"

	"github.com/adrg/xdg"
)

// HomeDirs returns the user config, data and cache directories.
func HomeDirs() []string {
	return []string{xdg.ConfigHome, xdg.DataHome, xdg.CacheHome}
}

// FindArtifacts returns entries of dirs whose name equals one of the package
// names. Unreadable directories are skipped.
func FindArtifacts(names []string, dirs []string) []types.HomeArtifact {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[baseName(n)] = true
	}

	var artifacts []types.HomeArtifact
	for _, base := range dirs {
		entries, err := os.ReadDir(base)
		if err != nil {
			log.Debugf("skipping %s: %v", base, err)
			continue
		}
		for _, entry := range entries {
			if !wanted[entry.Name()] {
				continue
			}
			artifacts = append(artifacts, types.HomeArtifact{
				Path:              filepath.Join(base, entry.Name()),
				AssociatedPackage: entry.Name(),
				Reason:            "Matches package name",
			})
		}
	}
	return artifacts
}
