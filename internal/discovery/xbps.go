package discovery

import (
	"bufio"
	"context"
	"strings"

	"sweep/internal/log"
	"sweep/internal/system"
	"sweep/pkg/types"
)

// ListOrphans returns the packages xbps-query reports as orphans.
func ListOrphans(ctx context.Context, runner system.Runner) ([]types.Package, error) {
	out, err := output(ctx, runner, "xbps-query", "-O")
	if err != nil {
		return nil, err
	}

	var packages []types.Package
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		name, version := splitNameVersion(fields[0])
		packages = append(packages, types.Package{
			Name:        name,
			Version:     version,
			Description: "Orphaned package",
			Installed:   true,
			System:      types.Xbps,
		})
	}
	log.Debugf("xbps: %d orphans", len(packages))
	return packages, scanner.Err()
}

// splitNameVersion splits an xbps pkgver ("foo-bar-1.2_1") at the last dash.
func splitNameVersion(pkgver string) (string, string) {
	pos := strings.LastIndex(pkgver, "-")
	if pos <= 0 || pos == len(pkgver)-1 {
		return pkgver, "unknown"
	}
	return pkgver[:pos], pkgver[pos+1:]
}
