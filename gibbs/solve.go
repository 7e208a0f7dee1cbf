// Package gibbs - the solve dispatcher.
//
// This file provides the canonical entry points:
//
//   - Solve/SolveWithStats: accept an 81-cell puzzle string, parse it, and
//     delegate to SolveGrid.
//   - SolveGrid: accept a board.Grid, validate Options, build the graph,
//     encode relations, run the chain, and select the best sample.
//
// Design principles:
//   - Deterministic: seed routing through chain's stream layout; no
//     time-based randomness anywhere.
//   - Strict sentinels: input errors surface before graph construction;
//     construction defects abort rather than return a silently wrong board.
//   - Non-convergence is not an error: the best observed board is returned
//     and its violation count exposed via Stats.
package gibbs

import (
	"github.com/katalvlaran/gibbsudoku/board"
	"github.com/katalvlaran/gibbsudoku/chain"
)

// Solve parses an 81-cell puzzle string ('1'..'9' clues, '0' or '.' blanks,
// separators ignored) and returns the best board found within the budget.
//
// Errors: board.ErrPuzzleLength before any graph work, plus SolveGrid's.
func Solve(puzzle string, opts Options) (board.Grid, error) {
	g, _, err := solvePuzzle(puzzle, opts)

	return g, err
}

// SolveWithStats is Solve plus the run statistics, letting callers inspect
// the returned board's residual violation count.
func SolveWithStats(puzzle string, opts Options) (board.Grid, Stats, error) {
	return solvePuzzle(puzzle, opts)
}

func solvePuzzle(puzzle string, opts Options) (board.Grid, Stats, error) {
	g, err := board.Parse(puzzle)
	if err != nil {
		return board.Grid{}, Stats{}, err
	}

	return solveGrid(g, opts)
}

// SolveGrid runs the sampler directly on a parsed grid.
//
// Contracts:
//   - g holds values 0..9 (0 = blank); board.ErrBadDigit otherwise.
//   - A fully clued grid is returned as-is with zero sweeps executed; no
//     conflict repair is attempted on it.
//
// Errors: ErrNegativeSteps, ErrUnknownMode, board.ErrBadDigit,
// ErrNeighborCount, and chain construction sentinels.
//
// Complexity: O(sweeps × free cells × 20 × 9); see doc.go.
func SolveGrid(g board.Grid, opts Options) (board.Grid, error) {
	out, _, err := solveGrid(g, opts)

	return out, err
}

// SolveGridWithStats is SolveGrid plus run statistics.
func SolveGridWithStats(g board.Grid, opts Options) (board.Grid, Stats, error) {
	return solveGrid(g, opts)
}

func solveGrid(g board.Grid, opts Options) (board.Grid, Stats, error) {
	// Stage 1 - options and input sanity, before any graph work.
	if err := validateOptions(opts); err != nil {
		return board.Grid{}, Stats{}, err
	}
	if err := g.Validate(); err != nil {
		return board.Grid{}, Stats{}, err
	}

	// Stage 2 - constraint graph.
	cg, err := buildGraph(g, opts.Mode)
	if err != nil {
		return board.Grid{}, Stats{}, err
	}

	// Degenerate case: nothing to sample; pass the clamped grid through.
	if len(cg.blocks) == 0 {
		return g, Stats{Violations: g.Violations()}, nil
	}

	// Stage 3 - relations and sampler for the chosen policy.
	rels := encodeRelations(cg, opts.SelfBias)
	var sampler chain.Sampler
	if opts.Mode == ModeRow {
		sampler = newRowSampler(cg.blocks, rels)
	} else {
		sampler = newCellSampler(cg.blocks, rels)
	}

	// Stage 4 - initial state: clues fixed, free cells uniform per-block
	// from the seed's init streams.
	init := make([]uint8, board.Cells)
	for node := 0; node < board.Cells; node++ {
		if cg.clamped[node] {
			init[node] = cg.fixed[node]
		}
	}
	for b, blk := range cg.blocks {
		rng := chain.InitRNG(opts.Seed, b)
		for _, node := range blk {
			init[node] = uint8(rng.Intn(Categories))
		}
	}

	// Stage 5 - run the chain and pick the best recorded board.
	sched := chain.Schedule{
		Warmup:         opts.WarmupSteps,
		StepsPerSample: opts.StepsPerSample,
		Samples:        opts.NSamples,
	}
	samples, err := chain.Run(sched, opts.Seed, cg.clamped[:], init, cg.blocks, sampler)
	if err != nil {
		return board.Grid{}, Stats{}, err
	}

	best, violations, examined := selectBest(samples)
	stats := Stats{
		Violations: violations,
		Samples:    examined,
		Sweeps:     sched.Sweeps(),
	}

	return best, stats, nil
}
