package config

import (
	"fmt"
	"sort"

	"sweep/internal/errors"
)

type fieldKind int

const (
	kindString fieldKind = iota
	kindStringList
	kindTable
)

func (k fieldKind) String() string {
	switch k {
	case kindString:
		return "a string"
	case kindStringList:
		return "a list of strings"
	default:
		return "a table"
	}
}

// fields lists every key a config file may contain, by dotted path.
var fields = map[string]fieldKind{
	"os":                      kindString,
	"su_command":              kindString,
	"exclude":                 kindStringList,
	"theme":                   kindTable,
	"theme.selected_bg":       kindString,
	"theme.package_icon":      kindString,
	"theme.artifact_icon":     kindString,
	"keybindings":             kindTable,
	"keybindings.quit":        kindStringList,
	"keybindings.select":      kindStringList,
	"keybindings.confirm":     kindStringList,
	"keybindings.select_all":  kindStringList,
	"keybindings.cursor_up":   kindStringList,
	"keybindings.cursor_down": kindStringList,
}

// checkDocument walks a generically decoded config document and reports the
// first unknown key or mistyped value by its dotted path. Keys are visited in
// sorted order.
func checkDocument(doc map[string]interface{}, prefix string) error {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		kind, ok := fields[path]
		if !ok {
			return errors.NewConfigError("unknown field", path, errors.InvalidConfig, nil)
		}
		if err := checkValue(doc[k], path, kind); err != nil {
			return err
		}
	}
	return nil
}

func checkValue(v interface{}, path string, kind fieldKind) error {
	mismatch := func() error {
		return errors.NewConfigError("wrong type", path, errors.InvalidConfig,
			fmt.Errorf("expected %s, got %s", kind, describe(v)))
	}

	switch kind {
	case kindString:
		if _, ok := v.(string); !ok {
			return mismatch()
		}
	case kindStringList:
		list, ok := v.([]interface{})
		if !ok {
			return mismatch()
		}
		for _, e := range list {
			if _, ok := e.(string); !ok {
				return mismatch()
			}
		}
	case kindTable:
		table, ok := v.(map[string]interface{})
		if !ok {
			return mismatch()
		}
		return checkDocument(table, path)
	}
	return nil
}

func describe(v interface{}) string {
	switch v.(type) {
	case nil:
		return "nothing"
	case string:
		return "a string"
	case []interface{}:
		return "a list"
	case map[string]interface{}:
		return "a table"
	default:
		return fmt.Sprintf("%T", v)
	}
}
