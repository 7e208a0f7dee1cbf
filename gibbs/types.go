// Package gibbs - options, modes, statistics, and sentinel errors.
package gibbs

import "errors"

// Categories is the number of values a cell variable can take (digits 1..9
// stored as categories 0..8).
const Categories = 9

// forbidLogit is the large-negative sentinel assigned to disallowed
// categories. After exponentiation its selection probability underflows to
// zero at float64 precision, which is all the draw requires.
const forbidLogit = -1e9

// Sentinel errors for solver operations.
var (
	// ErrNegativeSteps indicates a negative warmup or steps-per-sample budget.
	ErrNegativeSteps = errors.New("gibbs: warmup and steps-per-sample must be non-negative")
	// ErrUnknownMode indicates a Mode outside {ModeRow, ModeCell}.
	ErrUnknownMode = errors.New("gibbs: unknown sampling mode")
	// ErrNeighborCount indicates a cell neighborhood of size ≠ 20; this is an
	// internal construction defect and aborts the run.
	ErrNeighborCount = errors.New("gibbs: cell neighborhood must contain exactly 20 cells")
)

// Mode selects the conditional sampling policy.
type Mode uint8

const (
	// ModeRow resamples each free row jointly as a permutation of 1..9.
	ModeRow Mode = iota
	// ModeCell resamples each free cell independently via masked softmax.
	ModeCell
)

// String implements fmt.Stringer for Mode.
func (m Mode) String() string {
	switch m {
	case ModeRow:
		return "row"
	case ModeCell:
		return "cell"
	default:
		return "unknown"
	}
}

// ParseMode maps the CLI spelling of a mode to its enum value.
// Returns ErrUnknownMode for anything but "row" or "cell".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "row":
		return ModeRow, nil
	case "cell":
		return ModeCell, nil
	default:
		return 0, ErrUnknownMode
	}
}

// Options configures a solve. The zero value is NOT usable; start from
// DefaultOptions and override fields as needed.
type Options struct {
	// WarmupSteps is the number of discarded sweeps before recording (≥ 0).
	WarmupSteps int
	// StepsPerSample is the number of sweeps between recorded samples (≥ 0).
	StepsPerSample int
	// NSamples is the number of recorded samples (coerced to at least 1).
	NSamples int
	// SelfBias rewards a cell for keeping its current value, stabilizing
	// the chain against unnecessary churn.
	SelfBias float64
	// Mode selects the sampling policy.
	Mode Mode
	// Seed drives every random sub-stream; 0 selects a fixed default so
	// default runs stay reproducible.
	Seed int64
}

// DefaultOptions returns the canonical solver configuration.
func DefaultOptions() Options {
	return Options{
		WarmupSteps:    5000,
		StepsPerSample: 100,
		NSamples:       32,
		SelfBias:       2.5,
		Mode:           ModeRow,
		Seed:           0,
	}
}

// validateOptions checks internal consistency of Options without touching
// the puzzle. NSamples is deliberately not validated here: the schedule
// coerces it to at least 1.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.WarmupSteps < 0 || opts.StepsPerSample < 0 {
		return ErrNegativeSteps
	}
	switch opts.Mode {
	case ModeRow, ModeCell:
		// ok
	default:
		return ErrUnknownMode
	}

	return nil
}

// Stats reports the outcome of one solve.
type Stats struct {
	// Violations is the constraint-violation count of the returned board;
	// 0 means a fully valid solution.
	Violations int
	// Samples is the number of recorded snapshots examined before
	// selection stopped (the evaluator short-circuits on a perfect board).
	Samples int
	// Sweeps is the total number of sampling sweeps executed; 0 for the
	// fully-clued passthrough path.
	Sweeps int
}
