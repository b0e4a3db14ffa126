package remove

import (
	"context"
	"fmt"

	"sweep/internal/errors"
	"sweep/pkg/types"
)

// Status is the outcome of one removal.
type Status int

const (
	Removed Status = iota
	WouldRemove
	Failed
)

func (s Status) String() string {
	switch s {
	case Removed:
		return "removed"
	case WouldRemove:
		return "would remove"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Entry records what happened to one item.
type Entry struct {
	Item   types.SweepItem
	Status Status
	Err    error
}

// Report is the result of an Execute call.
type Report struct {
	DryRun          bool
	NothingSelected bool
	Entries         []Entry
}

// Failed returns the number of items that could not be removed.
func (r Report) Failed() int {
	n := 0
	for _, e := range r.Entries {
		if e.Status == Failed {
			n++
		}
	}
	return n
}

// Succeeded returns the number of items removed or that would be removed.
func (r Report) Succeeded() int {
	return len(r.Entries) - r.Failed()
}

// Err returns a non-nil error wrapping ErrRemovalFailed when any item failed.
func (r Report) Err() error {
	if n := r.Failed(); n > 0 {
		return fmt.Errorf("%w: %d of %d item(s)", errors.ErrRemovalFailed, n, len(r.Entries))
	}
	return nil
}

// ItemRemover removes one item.
type ItemRemover interface {
	Remove(ctx context.Context, item types.SweepItem, dryRun bool) error
}

// Executor removes a selection item by item.
type Executor struct {
	remover  ItemRemover
	progress func(Entry)
}

// NewExecutor creates an executor. progress, when non-nil, is called after
// each item.
func NewExecutor(remover ItemRemover, progress func(Entry)) *Executor {
	return &Executor{remover: remover, progress: progress}
}

// Execute removes items in order. A failure is recorded and the remaining
// items are still attempted.
func (e *Executor) Execute(ctx context.Context, items []types.SweepItem, dryRun bool) Report {
	report := Report{DryRun: dryRun}
	if len(items) == 0 {
		report.NothingSelected = true
		return report
	}

	for _, item := range items {
		entry := Entry{Item: item, Status: Removed}
		if dryRun {
			entry.Status = WouldRemove
		}
		if err := e.remover.Remove(ctx, item, dryRun); err != nil {
			entry.Status = Failed
			entry.Err = err
		}
		report.Entries = append(report.Entries, entry)
		if e.progress != nil {
			e.progress(entry)
		}
	}
	return report
}
