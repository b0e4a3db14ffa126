package types

// Mode represents the current state of the selection engine
type Mode int

const (
	// Browsing is the initial mode: cursor movement and selection
	Browsing Mode = iota
	// ConfirmingDeletion waits for a single y/N answer before a real run
	ConfirmingDeletion
	// Done is terminal; see Outcome
	Done
)

// String returns a readable mode name
func (m Mode) String() string {
	switch m {
	case Browsing:
		return "browsing"
	case ConfirmingDeletion:
		return "confirming"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Outcome is how a run of the selection engine ended.
type Outcome int

const (
	// Pending means the engine has not reached Done yet
	Pending Outcome = iota
	// Cancelled means the user quit or declined the confirmation
	Cancelled
	// Confirmed means the selected items should be removed
	Confirmed
)

// String returns a readable outcome name
func (o Outcome) String() string {
	switch o {
	case Pending:
		return "pending"
	case Cancelled:
		return "cancelled"
	case Confirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}
