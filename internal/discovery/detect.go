package discovery

import (
	"sweep/internal/config"
	"sweep/internal/errors"
	"sweep/internal/log"
	"sweep/internal/system"
	"sweep/pkg/types"
)

// Detect chooses the package system. A config hint wins; otherwise the first
// of xbps-query and dpkg found on PATH.
func Detect(hint string, runner system.Runner) (types.PackageSystem, error) {
	switch hint {
	case config.OSVoid:
		return types.Xbps, nil
	case config.OSDebian:
		return types.Dpkg, nil
	}

	if path, err := runner.LookPath("xbps-query"); err == nil {
		log.Debugf("found %s", path)
		return types.Xbps, nil
	}
	if path, err := runner.LookPath("dpkg"); err == nil {
		log.Debugf("found %s", path)
		return types.Dpkg, nil
	}
	return 0, errors.NewDiscoveryError("unsupported system: neither xbps-query nor dpkg found", "", errors.UnsupportedSystem, nil)
}

// SystemLabel is the distribution family shown to the user.
func SystemLabel(sys types.PackageSystem) string {
	switch sys {
	case types.Xbps:
		return "Void Linux"
	case types.Dpkg:
		return "Debian"
	default:
		return sys.String()
	}
}
