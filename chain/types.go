// Package chain - core types, schedule, and sentinel errors.
package chain

import (
	"errors"
	"math/rand"
)

// Sentinel errors for chain runtime operations. All of them signal defects
// in graph construction, not user input; callers must abort the run.
var (
	// ErrStateShape indicates init/clamp vectors of mismatched length.
	ErrStateShape = errors.New("chain: state and clamp vectors must have equal length")
	// ErrNodeIndex indicates a block references a node outside the state vector.
	ErrNodeIndex = errors.New("chain: block node index out of range")
	// ErrBlockOverlap indicates a node assigned to more than one block.
	ErrBlockOverlap = errors.New("chain: node appears in multiple blocks")
	// ErrBlockCoverage indicates blocks do not partition the non-clamped nodes.
	ErrBlockCoverage = errors.New("chain: blocks must cover exactly the non-clamped nodes")
	// ErrNilSampler indicates Run was given blocks but no sampler.
	ErrNilSampler = errors.New("chain: sampler must not be nil when blocks exist")
)

// Block is an ordered set of node indices resampled as one unit.
// Blocks must be disjoint and must never contain clamped nodes.
type Block []int

// RelationKind tags a Relation explicitly. The kind is decided at
// construction time; it is never inferred from payload shape.
type RelationKind uint8

const (
	// Exclusion marks a plain "this tail's current value is taken" link.
	Exclusion RelationKind = iota
	// SelfBias marks the single per-block link rewarding each member for
	// keeping its current value; it is the only kind carrying a payload.
	SelfBias
)

// Relation is a directed link from a head block to member-aligned tail
// nodes: Tails[i] pairs with the head block's i-th member. For SelfBias
// relations Bias[i] is the weight added to member i's current-value logit;
// for Exclusion relations Bias is nil.
//
// Active[i] marks whether Tails[i] conditions member i this sweep. A tail
// that belongs to the head block itself is inactive: its value is being
// resampled in the same draw and cannot be conditioned on. A nil Active
// means every tail is active.
type Relation struct {
	Kind   RelationKind
	Head   int // index of the head block
	Tails  []int
	Active []bool    // Exclusion only; nil means all active
	Bias   []float64 // SelfBias only; len == len(Tails)
}

// Sampler draws new categories for one block per sweep.
//
// SampleBlock must write a new category for every member of block b into
// next, reading neighbor state exclusively from prev (the state committed
// before this block's draw, including updates from earlier blocks in the
// same sweep). It must not touch nodes outside the block. rng is the
// draw's dedicated deterministic stream.
type Sampler interface {
	SampleBlock(rng *rand.Rand, b int, prev, next []uint8) error
}

// Schedule configures one sampling run.
type Schedule struct {
	// Warmup is the number of initial sweeps discarded before recording.
	Warmup int
	// StepsPerSample is the number of sweeps between recorded snapshots.
	StepsPerSample int
	// Samples is the number of snapshots to record (coerced to at least 1).
	Samples int
}

// DefaultSchedule returns the canonical budget: 5000 warmup sweeps, then
// 32 samples spaced 100 sweeps apart.
func DefaultSchedule() Schedule {
	return Schedule{Warmup: 5000, StepsPerSample: 100, Samples: 32}
}

// normalized clamps the schedule to its documented domain: non-negative
// warmup and spacing, at least one recorded sample.
func (s Schedule) normalized() Schedule {
	if s.Warmup < 0 {
		s.Warmup = 0
	}
	if s.StepsPerSample < 0 {
		s.StepsPerSample = 0
	}
	if s.Samples < 1 {
		s.Samples = 1
	}

	return s
}

// Sweeps returns the total number of sweeps the normalized schedule runs.
//
// Complexity: O(1).
func (s Schedule) Sweeps() int {
	s = s.normalized()

	return s.Warmup + s.Samples*s.StepsPerSample
}
