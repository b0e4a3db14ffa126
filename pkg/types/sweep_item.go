package types

import "fmt"

// PackageSystem identifies the package manager family that owns a package.
type PackageSystem int

const (
	// Xbps is the Void Linux package manager. Its removable entries are orphans.
	Xbps PackageSystem = iota
	// Dpkg is the Debian package manager. Its removable entries are residual configs.
	Dpkg
)

// String returns the package manager's name
func (s PackageSystem) String() string {
	switch s {
	case Xbps:
		return "xbps"
	case Dpkg:
		return "dpkg"
	default:
		return fmt.Sprintf("PackageSystem(%d)", int(s))
	}
}

// SweepItem is a removable entity shown in the selection list.
// The set of implementations is closed: Package and HomeArtifact.
type SweepItem interface {
	// Display returns a single line combining identity and removal reason.
	Display() string
	// Key returns the name used for exclusion and home-artifact correlation.
	Key() string

	sweepItem()
}

// Package is an orphaned or residual package reported by a package manager.
type Package struct {
	Name        string        `json:"name" toml:"name"`
	Version     string        `json:"version" toml:"version"`
	Description string        `json:"description" toml:"description"`
	Installed   bool          `json:"installed" toml:"installed"`
	System      PackageSystem `json:"system" toml:"system"`
}

// Display returns "name (description)".
func (p Package) Display() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Description)
}

// Key returns the package name
func (p Package) Key() string {
	return p.Name
}

func (Package) sweepItem() {}

// HomeArtifact is a directory under the user's XDG homes that appears to
// belong to a package.
type HomeArtifact struct {
	Path              string `json:"path" toml:"path"`
	AssociatedPackage string `json:"associated_package,omitempty" toml:"associated_package"`
	Reason            string `json:"reason" toml:"reason"`
}

// Display returns "path (reason)".
func (a HomeArtifact) Display() string {
	return fmt.Sprintf("%s (%s)", a.Path, a.Reason)
}

// Key returns the associated package, or the path when there is none.
func (a HomeArtifact) Key() string {
	if a.AssociatedPackage != "" {
		return a.AssociatedPackage
	}
	return a.Path
}

func (HomeArtifact) sweepItem() {}

// PackageNames returns the names of every Package in items, in order.
func PackageNames(items []SweepItem) []string {
	var names []string
	for _, item := range items {
		if pkg, ok := item.(Package); ok {
			names = append(names, pkg.Name)
		}
	}
	return names
}
