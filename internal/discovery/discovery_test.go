package discovery

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"testing"

	"sweep/internal/config"
	"sweep/internal/errors"
	"sweep/pkg/testutils"
	"sweep/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	xbpsOrphans = `libfoo-1.2.3_1
python3-bar-baz-0.9_2 some trailing text

gtk+3-3.24.38_1
`
	dpkgList = `Desired=Unknown/Install/Remove/Purge/Hold
| Status=Not/Inst/Conf-files/Unpacked/halF-conf/Half-inst/trig-aWait/Trig-pend
|/ Err?=(none)/Reinst-required (Status,Err: uppercase=bad)
||/ Name           Version      Architecture Description
+++-==============-============-============-=================================
ii  bash           5.2.15-2     amd64        GNU Bourne Again SHell
rc  libfoo1:amd64  1.0-1        amd64        foo library
rc  oldtool        2.3          all          an old tool
rc  bare
`
)

func TestSplitNameVersion(t *testing.T) {
	tests := []struct {
		in, name, version string
	}{
		{"libfoo-1.2.3_1", "libfoo", "1.2.3_1"},
		{"python3-bar-baz-0.9_2", "python3-bar-baz", "0.9_2"},
		{"noversion", "noversion", "unknown"},
		{"trailing-", "trailing-", "unknown"},
		{"-leading", "-leading", "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			name, version := splitNameVersion(tt.in)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.version, version)
		})
	}
}

func TestListOrphans(t *testing.T) {
	runner := testutils.NewFakeRunner()
	runner.Outputs["xbps-query -O"] = xbpsOrphans

	pkgs, err := ListOrphans(context.Background(), runner)
	require.NoError(t, err)
	require.Len(t, pkgs, 3)

	assert.Equal(t, types.Package{
		Name:        "libfoo",
		Version:     "1.2.3_1",
		Description: "Orphaned package",
		Installed:   true,
		System:      types.Xbps,
	}, pkgs[0])
	assert.Equal(t, "python3-bar-baz", pkgs[1].Name)
	assert.Equal(t, "gtk+3", pkgs[2].Name)
	assert.Equal(t, []string{"xbps-query -O"}, runner.CommandLines())
}

func TestListResidualConfigs(t *testing.T) {
	runner := testutils.NewFakeRunner()
	runner.Outputs["dpkg -l"] = dpkgList

	pkgs, err := ListResidualConfigs(context.Background(), runner)
	require.NoError(t, err)
	require.Len(t, pkgs, 3)

	assert.Equal(t, types.Package{
		Name:        "libfoo1:amd64",
		Version:     "1.0-1",
		Description: "Residual config",
		Installed:   false,
		System:      types.Dpkg,
	}, pkgs[0])
	assert.Equal(t, "oldtool", pkgs[1].Name)
	assert.Equal(t, "residual", pkgs[2].Version)
}

func TestBackendErrors(t *testing.T) {
	tests := []struct {
		name    string
		cmdline string
		backend Backend
		err     error
		kind    errors.ErrorKind
	}{
		{
			name:    "xbps_missing",
			cmdline: "xbps-query -O",
			backend: ListOrphans,
			err:     &exec.Error{Name: "xbps-query", Err: exec.ErrNotFound},
			kind:    errors.CommandNotFound,
		},
		{
			name:    "dpkg_failed",
			cmdline: "dpkg -l",
			backend: ListResidualConfigs,
			err:     fmt.Errorf("exit status 2"),
			kind:    errors.DiscoveryFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := testutils.NewFakeRunner()
			runner.Failures[tt.cmdline] = tt.err

			_, err := tt.backend(context.Background(), runner)
			require.Error(t, err)
			assert.True(t, errors.IsDiscoveryFailure(err))

			var discErr *errors.DiscoveryError
			require.True(t, errors.As(err, &discErr))
			assert.Equal(t, tt.kind, discErr.Kind())
			assert.Equal(t, tt.cmdline, discErr.Command())
		})
	}
}

func TestDetect(t *testing.T) {
	t.Run("hint_wins", func(t *testing.T) {
		runner := testutils.NewFakeRunner()
		sys, err := Detect(config.OSDebian, runner)
		require.NoError(t, err)
		assert.Equal(t, types.Dpkg, sys)

		sys, err = Detect(config.OSVoid, runner)
		require.NoError(t, err)
		assert.Equal(t, types.Xbps, sys)
	})

	t.Run("xbps_before_dpkg", func(t *testing.T) {
		sys, err := Detect(config.OSAuto, testutils.NewFakeRunner())
		require.NoError(t, err)
		assert.Equal(t, types.Xbps, sys)
	})

	t.Run("dpkg_only", func(t *testing.T) {
		runner := testutils.NewFakeRunner()
		runner.Missing["xbps-query"] = true
		sys, err := Detect(config.OSAuto, runner)
		require.NoError(t, err)
		assert.Equal(t, types.Dpkg, sys)
	})

	t.Run("unsupported", func(t *testing.T) {
		runner := testutils.NewFakeRunner()
		runner.Missing["xbps-query"] = true
		runner.Missing["dpkg"] = true
		_, err := Detect(config.OSAuto, runner)
		require.Error(t, err)

		var discErr *errors.DiscoveryError
		require.True(t, errors.As(err, &discErr))
		assert.Equal(t, errors.UnsupportedSystem, discErr.Kind())
	})
}

func TestFindArtifacts(t *testing.T) {
	root := t.TempDir()
	dirs := testutils.CreateTestDirs(t, root, "config", "share", "cache")
	testutils.CreateTestDirs(t, root,
		"config/libfoo1",
		"config/unrelated",
		"share/oldtool",
		"cache/oldtool",
	)
	testutils.CreateTestFilesWithContent(t, dirs[2], map[string]string{"libfoo1-extra": "x"})

	missing := filepath.Join(root, "does-not-exist")
	arts := FindArtifacts([]string{"libfoo1:amd64", "oldtool"}, append(dirs, missing))

	require.Len(t, arts, 3)
	assert.Equal(t, types.HomeArtifact{
		Path:              filepath.Join(dirs[0], "libfoo1"),
		AssociatedPackage: "libfoo1",
		Reason:            "Matches package name",
	}, arts[0])
	assert.Equal(t, filepath.Join(dirs[1], "oldtool"), arts[1].Path)
	assert.Equal(t, filepath.Join(dirs[2], "oldtool"), arts[2].Path)

	assert.Empty(t, FindArtifacts(nil, dirs))
}

func TestCollect(t *testing.T) {
	home := t.TempDir()
	testutils.CreateTestDirs(t, home, "libfoo", "linux-firmware")

	newRunner := func() *testutils.FakeRunner {
		r := testutils.NewFakeRunner()
		r.Outputs["xbps-query -O"] = "libfoo-1.0_1\nlinux-firmware-2024_1\n"
		r.Outputs["dpkg -l"] = dpkgList
		return r
	}

	t.Run("packages_then_artifacts", func(t *testing.T) {
		cfg := config.Default()
		cfg.OS = config.OSVoid

		inv, err := Collect(context.Background(), newRunner(), cfg, Options{Home: true, HomeDirs: []string{home}})
		require.NoError(t, err)
		assert.Equal(t, types.Xbps, inv.System)
		require.Len(t, inv.Items, 4)
		assert.IsType(t, types.Package{}, inv.Items[0])
		assert.IsType(t, types.Package{}, inv.Items[1])
		assert.IsType(t, types.HomeArtifact{}, inv.Items[2])
		assert.IsType(t, types.HomeArtifact{}, inv.Items[3])
	})

	t.Run("exclude_globs", func(t *testing.T) {
		cfg := config.Default()
		cfg.OS = config.OSVoid
		cfg.Exclude = []string{"linux*"}
		require.NoError(t, cfg.Validate())

		inv, err := Collect(context.Background(), newRunner(), cfg, Options{Home: true, HomeDirs: []string{home}})
		require.NoError(t, err)
		assert.Equal(t, []string{"libfoo", "libfoo"}, keys(inv.Items))
	})

	t.Run("no_home", func(t *testing.T) {
		cfg := config.Default()
		cfg.OS = config.OSVoid

		inv, err := Collect(context.Background(), newRunner(), cfg, Options{HomeDirs: []string{home}})
		require.NoError(t, err)
		assert.Len(t, inv.Items, 2)
	})

	t.Run("filter_does_not_apply", func(t *testing.T) {
		cfg := config.Default()
		cfg.OS = config.OSVoid
		runner := newRunner()

		inv, err := Collect(context.Background(), runner, cfg, Options{Residual: true, Home: true})
		require.NoError(t, err)
		assert.Empty(t, inv.Items)
		assert.Empty(t, runner.Calls)
	})

	t.Run("residual_on_debian", func(t *testing.T) {
		cfg := config.Default()
		cfg.OS = config.OSDebian

		inv, err := Collect(context.Background(), newRunner(), cfg, Options{Residual: true})
		require.NoError(t, err)
		assert.Equal(t, types.Dpkg, inv.System)
		assert.Equal(t, []string{"libfoo1:amd64", "oldtool", "bare"}, keys(inv.Items))
	})

	t.Run("discovery_error_propagates", func(t *testing.T) {
		cfg := config.Default()
		cfg.OS = config.OSVoid
		runner := newRunner()
		runner.Failures["xbps-query -O"] = fmt.Errorf("exit status 1")

		_, err := Collect(context.Background(), runner, cfg, Options{})
		assert.True(t, errors.IsDiscoveryFailure(err))
	})
}

func TestExcludedMatchesKey(t *testing.T) {
	cfg := config.Default()
	cfg.Exclude = []string{"libfoo1", "oldtool"}
	require.NoError(t, cfg.Validate())

	assert.True(t, excluded(cfg, types.Package{Name: "libfoo1:amd64"}))
	assert.True(t, excluded(cfg, types.HomeArtifact{Path: "/home/u/.config/OldTool", AssociatedPackage: "oldtool"}))
	assert.False(t, excluded(cfg, types.HomeArtifact{Path: "/home/u/.config/oldtool-extra", AssociatedPackage: "oldtool-extra"}))
	assert.False(t, excluded(cfg, types.Package{Name: "libfoo2"}))
}

func keys(items []types.SweepItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Key()
	}
	return out
}
