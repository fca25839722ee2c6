package tqdm

// Error is a string error that can be declared as a constant.
type Error string

// Error implements the error interface.
func (err Error) Error() string { return string(err) }

const (
	// ErrNegativeLength is reported when a sequence declares a length below zero.
	ErrNegativeLength Error = "tqdm: negative sequence length"
	// ErrNotTerminal is reported by width providers whose writer is not a terminal.
	ErrNotTerminal Error = "tqdm: writer is not a terminal"
)
