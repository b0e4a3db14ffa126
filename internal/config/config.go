package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"sweep/internal/errors"
	"sweep/internal/log"

	"github.com/adrg/xdg"
	"github.com/gobwas/glob"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the directory name used under the XDG config home.
const AppName = "sweep"

// Supported values of the os hint.
const (
	OSAuto   = ""
	OSVoid   = "void"
	OSDebian = "debian"
)

// Config represents the application configuration.
// It is loaded once at startup and treated as read-only afterwards.
type Config struct {
	OS          string      // Platform hint; empty means detect
	SuCommand   string      // Privilege escalation command for dpkg purges
	Theme       Theme       // Colours and glyphs for the selection list
	Keybindings Keybindings // Resolved key sets per action
	Exclude     []string    // Glob patterns of package names to hide

	excludes []glob.Glob
}

// Theme holds the list styling. SelectedBg is already normalised for lipgloss.
type Theme struct {
	SelectedBg   string
	PackageIcon  string
	ArtifactIcon string
}

// fileConfig mirrors the on-disk layout. Pointers distinguish absent fields
// from empty ones so that absent fields keep their defaults.
type fileConfig struct {
	OS          *string         `toml:"os" yaml:"os"`
	SuCommand   *string         `toml:"su_command" yaml:"su_command"`
	Exclude     *[]string       `toml:"exclude" yaml:"exclude"`
	Theme       fileTheme       `toml:"theme" yaml:"theme"`
	Keybindings fileKeybindings `toml:"keybindings" yaml:"keybindings"`
}

type fileTheme struct {
	SelectedBg   *string `toml:"selected_bg" yaml:"selected_bg"`
	PackageIcon  *string `toml:"package_icon" yaml:"package_icon"`
	ArtifactIcon *string `toml:"artifact_icon" yaml:"artifact_icon"`
}

type fileKeybindings struct {
	Quit       *[]string `toml:"quit" yaml:"quit"`
	Select     *[]string `toml:"select" yaml:"select"`
	Confirm    *[]string `toml:"confirm" yaml:"confirm"`
	SelectAll  *[]string `toml:"select_all" yaml:"select_all"`
	CursorUp   *[]string `toml:"cursor_up" yaml:"cursor_up"`
	CursorDown *[]string `toml:"cursor_down" yaml:"cursor_down"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		OS:        OSAuto,
		SuCommand: "sudo",
		Theme: Theme{
			SelectedBg:   "4", // blue
			PackageIcon:  "📦",
			ArtifactIcon: "🏠",
		},
		Keybindings: DefaultKeybindings(),
		Exclude:     []string{},
	}
}

// Dir returns the per-user configuration directory.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// DefaultPath returns the config file location. config.toml is preferred;
// config.yaml or config.yml are used when only one of those exists.
func DefaultPath() string {
	dir := Dir()
	tomlPath := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(tomlPath); err == nil {
		return tomlPath
	}
	for _, name := range []string{"config.yaml", "config.yml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return tomlPath
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	return LoadConfigFile(DefaultPath())
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("no config at %s, using defaults", path)
			return Default(), nil
		}
		return nil, errors.NewConfigError("cannot read config file", "", errors.ConfigUnreadable, err)
	}

	var raw fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = decodeYAML(data, &raw)
	default:
		err = decodeTOML(data, &raw)
	}
	if err != nil {
		return nil, err
	}

	cfg, err := raw.resolve()
	if err != nil {
		return nil, err
	}
	log.Debugf("loaded config from %s", path)
	return cfg, nil
}

func decodeTOML(data []byte, raw *fileConfig) error {
	var doc map[string]interface{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return errors.NewConfigError("error parsing config file", "", errors.InvalidConfig, err)
	}
	if err := checkDocument(doc, ""); err != nil {
		return err
	}

	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(raw); err != nil {
		var decErr *toml.DecodeError
		if errors.As(err, &decErr) && len(decErr.Key()) > 0 {
			return errors.NewConfigError("error parsing config file", strings.Join(decErr.Key(), "."), errors.InvalidConfig, err)
		}
		return errors.NewConfigError("error parsing config file", "", errors.InvalidConfig, err)
	}
	return nil
}

func decodeYAML(data []byte, raw *fileConfig) error {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return errors.NewConfigError("error parsing config file", "", errors.InvalidConfig, err)
	}
	if err := checkDocument(doc, ""); err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(raw); err != nil && err != io.EOF {
		return errors.NewConfigError("error parsing config file", "", errors.InvalidConfig, err)
	}
	return nil
}

// resolve overlays the present fields on the defaults and validates them.
func (f *fileConfig) resolve() (*Config, error) {
	cfg := Default()

	if f.OS != nil {
		cfg.OS = strings.ToLower(strings.TrimSpace(*f.OS))
	}
	if f.SuCommand != nil {
		cfg.SuCommand = strings.TrimSpace(*f.SuCommand)
	}
	if f.Exclude != nil {
		cfg.Exclude = *f.Exclude
	}
	if f.Theme.SelectedBg != nil {
		bg, err := NormalizeColor(*f.Theme.SelectedBg)
		if err != nil {
			return nil, errors.NewConfigError("invalid colour", "theme.selected_bg", errors.InvalidConfig, err)
		}
		cfg.Theme.SelectedBg = bg
	}
	if f.Theme.PackageIcon != nil {
		cfg.Theme.PackageIcon = *f.Theme.PackageIcon
	}
	if f.Theme.ArtifactIcon != nil {
		cfg.Theme.ArtifactIcon = *f.Theme.ArtifactIcon
	}

	bindings := []struct {
		field string
		raw   *[]string
		dst   *KeySet
	}{
		{"quit", f.Keybindings.Quit, &cfg.Keybindings.Quit},
		{"select", f.Keybindings.Select, &cfg.Keybindings.Select},
		{"confirm", f.Keybindings.Confirm, &cfg.Keybindings.Confirm},
		{"select_all", f.Keybindings.SelectAll, &cfg.Keybindings.SelectAll},
		{"cursor_up", f.Keybindings.CursorUp, &cfg.Keybindings.CursorUp},
		{"cursor_down", f.Keybindings.CursorDown, &cfg.Keybindings.CursorDown},
	}
	for _, b := range bindings {
		if b.raw == nil {
			continue
		}
		set, err := ParseKeySet(b.field, *b.raw)
		if err != nil {
			return nil, err
		}
		*b.dst = set
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that are not validated while parsing and
// compiles the exclude patterns.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}

	switch c.OS {
	case OSAuto, OSVoid, OSDebian:
	default:
		return errors.NewConfigError("unsupported os hint", "os", errors.InvalidConfig,
			fmt.Errorf("%q is not one of %q, %q", c.OS, OSVoid, OSDebian))
	}

	if c.SuCommand == "" {
		return errors.NewConfigError("privilege escalation command is empty", "su_command", errors.InvalidConfig, nil)
	}

	excludes := make([]glob.Glob, 0, len(c.Exclude))
	for _, pattern := range c.Exclude {
		g, err := glob.Compile(pattern)
		if err != nil {
			return errors.NewConfigError("invalid exclude pattern", "exclude", errors.InvalidConfig, err)
		}
		excludes = append(excludes, g)
	}
	c.excludes = excludes
	return nil
}

// Excluded reports whether name matches one of the exclude patterns compiled
// by the last successful Validate.
func (c *Config) Excluded(name string) bool {
	for _, g := range c.excludes {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// WriteTOML writes the effective configuration in config file syntax.
func (c *Config) WriteTOML(w io.Writer) error {
	out := struct {
		OS        string   `toml:"os,omitempty"`
		SuCommand string   `toml:"su_command"`
		Exclude   []string `toml:"exclude"`
		Theme     struct {
			SelectedBg   string `toml:"selected_bg"`
			PackageIcon  string `toml:"package_icon"`
			ArtifactIcon string `toml:"artifact_icon"`
		} `toml:"theme"`
		Keybindings struct {
			Quit       []string `toml:"quit"`
			Select     []string `toml:"select"`
			Confirm    []string `toml:"confirm"`
			SelectAll  []string `toml:"select_all"`
			CursorUp   []string `toml:"cursor_up"`
			CursorDown []string `toml:"cursor_down"`
		} `toml:"keybindings"`
	}{
		OS:        c.OS,
		SuCommand: c.SuCommand,
		Exclude:   c.Exclude,
	}
	out.Theme.SelectedBg = c.Theme.SelectedBg
	out.Theme.PackageIcon = c.Theme.PackageIcon
	out.Theme.ArtifactIcon = c.Theme.ArtifactIcon
	out.Keybindings.Quit = c.Keybindings.Quit.ConfigNames()
	out.Keybindings.Select = c.Keybindings.Select.ConfigNames()
	out.Keybindings.Confirm = c.Keybindings.Confirm.ConfigNames()
	out.Keybindings.SelectAll = c.Keybindings.SelectAll.ConfigNames()
	out.Keybindings.CursorUp = c.Keybindings.CursorUp.ConfigNames()
	out.Keybindings.CursorDown = c.Keybindings.CursorDown.ConfigNames()

	return toml.NewEncoder(w).Encode(out)
}
