package common

import (
	"sweep/internal/tui/styles"
	"sweep/pkg/types"
)

// ModelReader defines the interface that views use to read model state
type ModelReader interface {
	Items() []types.SweepItem
	IsSelected(i int) bool
	SelectedCount() int
	Cursor() int
	Mode() types.Mode
	DryRun() bool
	Theme() styles.Theme
	KeyMap() types.KeyMap
	Size() (width, height int)
}
