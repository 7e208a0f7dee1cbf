// Package chain - the sweep/record scheduler.
//
// Run is the only mutating entry point: it owns the state vector for the
// duration of a run and hands out immutable snapshot copies.
//
// Design principles:
//   - Strict sentinels: construction defects abort before the first sweep.
//   - Sequential commits: blocks update in order within a sweep, each
//     conditioning on the state committed by every earlier block. Each
//     individual block still reads a stable pre-draw snapshot, so a
//     sampler never observes its own partial writes.
//   - No logging, no panics; only errors from types.go and the sampler.
package chain

// Run executes a block-Gibbs chain and returns the recorded snapshots in
// recording order.
//
// Contracts:
//   - len(init) == len(clamped); init holds the fixed category for every
//     clamped node and the starting category for every free node.
//   - blocks must be disjoint and cover exactly the non-clamped nodes.
//   - With zero blocks (fully clamped state) no sweeps run and a single
//     snapshot of init is returned, regardless of the schedule.
//
// Errors: ErrStateShape, ErrNodeIndex, ErrBlockOverlap, ErrBlockCoverage,
// ErrNilSampler, plus any error returned by the sampler (aborts the run).
//
// Complexity: O(validate) = O(nodes + Σ|block|); O(run) = sweeps × sampler
// cost; memory O(nodes) working state + one copy per recorded sample.
func Run(sched Schedule, seed int64, clamped []bool, init []uint8, blocks []Block, s Sampler) ([][]uint8, error) {
	if len(init) != len(clamped) {
		return nil, ErrStateShape
	}
	if err := validateBlocks(len(init), clamped, blocks); err != nil {
		return nil, err
	}

	n := len(init)
	state := make([]uint8, n)
	copy(state, init)

	// Fully clamped chain: nothing to sample.
	if len(blocks) == 0 {
		return [][]uint8{snapshot(state)}, nil
	}
	if s == nil {
		return nil, ErrNilSampler
	}

	sched = sched.normalized()
	prev := make([]uint8, n)
	sweep := 0

	runSweeps := func(count int) error {
		for k := 0; k < count; k++ {
			for b := range blocks {
				copy(prev, state)
				if err := s.SampleBlock(sweepRNG(seed, sweep, b, len(blocks)), b, prev, state); err != nil {
					return err
				}
			}
			sweep++
		}

		return nil
	}

	if err := runSweeps(sched.Warmup); err != nil {
		return nil, err
	}

	out := make([][]uint8, 0, sched.Samples)
	for i := 0; i < sched.Samples; i++ {
		if err := runSweeps(sched.StepsPerSample); err != nil {
			return nil, err
		}
		out = append(out, snapshot(state))
	}

	return out, nil
}

// validateBlocks checks the block partition invariants: in-range indices,
// no clamped members, no overlap, and full coverage of free nodes.
func validateBlocks(n int, clamped []bool, blocks []Block) error {
	seen := make([]bool, n)
	covered := 0
	for _, blk := range blocks {
		for _, node := range blk {
			if node < 0 || node >= n {
				return ErrNodeIndex
			}
			if clamped[node] || seen[node] {
				if seen[node] {
					return ErrBlockOverlap
				}
				return ErrBlockCoverage
			}
			seen[node] = true
			covered++
		}
	}

	free := 0
	for _, c := range clamped {
		if !c {
			free++
		}
	}
	if covered != free {
		return ErrBlockCoverage
	}

	return nil
}

// snapshot returns an owned copy of the state vector.
func snapshot(state []uint8) []uint8 {
	out := make([]uint8, len(state))
	copy(out, state)

	return out
}
