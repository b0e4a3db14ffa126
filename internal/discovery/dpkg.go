package discovery

import (
	"bufio"
	"context"
	"strings"

	"sweep/internal/log"
	"sweep/internal/system"
	"sweep/pkg/types"
)

// ListResidualConfigs returns packages dpkg lists in state "rc": removed,
// with configuration files left behind.
func ListResidualConfigs(ctx context.Context, runner system.Runner) ([]types.Package, error) {
	out, err := output(ctx, runner, "dpkg", "-l")
	if err != nil {
		return nil, err
	}

	var packages []types.Package
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "rc ") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		version := "residual"
		if len(fields) >= 3 {
			version = fields[2]
		}
		packages = append(packages, types.Package{
			Name:        fields[1],
			Version:     version,
			Description: "Residual config",
			Installed:   false,
			System:      types.Dpkg,
		})
	}
	log.Debugf("dpkg: %d residual configs", len(packages))
	return packages, scanner.Err()
}

// baseName strips a dpkg architecture qualifier ("libfoo:amd64" -> "libfoo").
func baseName(name string) string {
	if i := strings.IndexByte(name, ':'); i > 0 {
		return name[:i]
	}
	return name
}
