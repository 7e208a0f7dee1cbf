package chain_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gibbsudoku/chain"
)

// blockIncSampler increments only the nodes of its block, reading their
// pre-draw values; snapshots then expose exact sweep counts.
type blockIncSampler struct {
	blocks []chain.Block
	k      uint8
}

func (s blockIncSampler) SampleBlock(_ *rand.Rand, b int, prev, next []uint8) error {
	for _, node := range s.blocks[b] {
		next[node] = (prev[node] + 1) % s.k
	}
	return nil
}

// failSampler aborts immediately.
type failSampler struct{ err error }

func (s failSampler) SampleBlock(_ *rand.Rand, _ int, _, _ []uint8) error { return s.err }

// TestRun_ValidationErrors exercises the block partition invariants.
func TestRun_ValidationErrors(t *testing.T) {
	clamped := []bool{true, false, false, false}
	init := []uint8{5, 0, 0, 0}
	sampler := blockIncSampler{k: 9}

	cases := []struct {
		name   string
		blocks []chain.Block
		want   error
	}{
		{"OutOfRange", []chain.Block{{1, 2, 9}}, chain.ErrNodeIndex},
		{"ClampedMember", []chain.Block{{0, 1, 2, 3}}, chain.ErrBlockCoverage},
		{"Overlap", []chain.Block{{1, 2}, {2, 3}}, chain.ErrBlockOverlap},
		{"Omission", []chain.Block{{1, 2}}, chain.ErrBlockCoverage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sampler.blocks = tc.blocks
			_, err := chain.Run(chain.DefaultSchedule(), 0, clamped, init, tc.blocks, sampler)
			require.ErrorIs(t, err, tc.want)
		})
	}

	t.Run("ShapeMismatch", func(t *testing.T) {
		_, err := chain.Run(chain.DefaultSchedule(), 0, clamped, init[:3], nil, nil)
		require.ErrorIs(t, err, chain.ErrStateShape)
	})

	t.Run("NilSampler", func(t *testing.T) {
		_, err := chain.Run(chain.DefaultSchedule(), 0, clamped, init, []chain.Block{{1, 2, 3}}, nil)
		require.ErrorIs(t, err, chain.ErrNilSampler)
	})
}

// TestRun_FullyClamped verifies the degenerate path: no blocks ⇒ no sweeps,
// one snapshot equal to init, schedule ignored.
func TestRun_FullyClamped(t *testing.T) {
	clamped := []bool{true, true, true}
	init := []uint8{3, 1, 4}

	out, err := chain.Run(chain.Schedule{Warmup: -5, Samples: 10}, 0, clamped, init, nil, nil)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, init, out[0])

	// Snapshot is an owned copy, not an alias of init.
	out[0][0] = 9
	require.Equal(t, uint8(3), init[0])
}

// TestRun_SweepAccounting verifies snapshots see exactly
// Warmup + (i+1)×StepsPerSample increments under a deterministic sampler.
func TestRun_SweepAccounting(t *testing.T) {
	clamped := []bool{false, true, false}
	init := []uint8{0, 7, 0}
	blocks := []chain.Block{{0}, {2}}
	sampler := blockIncSampler{blocks: blocks, k: 100}

	sched := chain.Schedule{Warmup: 4, StepsPerSample: 3, Samples: 2}
	out, err := chain.Run(sched, 0, clamped, init, blocks, sampler)
	require.NoError(t, err)
	require.Len(t, out, 2)

	require.Equal(t, uint8(7), out[0][1], "clamped node mutated")
	require.Equal(t, uint8(7), out[1][1], "clamped node mutated")
	require.Equal(t, uint8(7), out[0][0], "first snapshot after 4+3 sweeps")
	require.Equal(t, uint8(10), out[1][0], "second snapshot after 4+6 sweeps")
}

// TestRun_ScheduleClamping verifies Samples is coerced to at least 1 and
// negative warmup/spacing to zero.
func TestRun_ScheduleClamping(t *testing.T) {
	clamped := []bool{false}
	blocks := []chain.Block{{0}}
	sampler := blockIncSampler{blocks: blocks, k: 100}

	out, err := chain.Run(chain.Schedule{Warmup: -1, StepsPerSample: -1, Samples: 0}, 0,
		clamped, []uint8{0}, blocks, sampler)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, uint8(0), out[0][0], "no sweeps should have run")

	require.Equal(t, 0, chain.Schedule{Warmup: -1, StepsPerSample: -1, Samples: 0}.Sweeps())
	require.Equal(t, 5000+32*100, chain.DefaultSchedule().Sweeps())
}

// chaseSampler copies node 0's current value into node 1, exposing which
// state a later block observes.
type chaseSampler struct{}

func (chaseSampler) SampleBlock(_ *rand.Rand, b int, prev, next []uint8) error {
	if b == 0 {
		next[0] = prev[0] + 1
	} else {
		next[1] = prev[0]
	}
	return nil
}

// TestRun_SequentialCommits verifies in-sweep ordering: a later block
// conditions on the state already committed by earlier blocks of the same
// sweep, not on a stale start-of-sweep snapshot.
func TestRun_SequentialCommits(t *testing.T) {
	out, err := chain.Run(chain.Schedule{Warmup: 0, StepsPerSample: 1, Samples: 1}, 0,
		[]bool{false, false}, []uint8{0, 0}, []chain.Block{{0}, {1}}, chaseSampler{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, uint8(1), out[0][0])
	require.Equal(t, uint8(1), out[0][1], "block 1 must see block 0's same-sweep commit")
}

// TestRun_SamplerErrorAborts verifies sampler failures surface immediately.
func TestRun_SamplerErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	_, err := chain.Run(chain.Schedule{Warmup: 1, Samples: 1}, 0,
		[]bool{false}, []uint8{0}, []chain.Block{{0}}, failSampler{err: boom})
	require.ErrorIs(t, err, boom)
}

// TestRun_Determinism verifies identical inputs replay identical chains.
func TestRun_Determinism(t *testing.T) {
	clamped := make([]bool, 8)
	init := make([]uint8, 8)
	blocks := []chain.Block{{0, 1, 2, 3}, {4, 5, 6, 7}}
	sampler := randomSampler{blocks: blocks, k: 9}

	sched := chain.Schedule{Warmup: 50, StepsPerSample: 5, Samples: 4}
	a, err := chain.Run(sched, 123, clamped, init, blocks, sampler)
	require.NoError(t, err)
	b, err := chain.Run(sched, 123, clamped, init, blocks, sampler)
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := chain.Run(sched, 124, clamped, init, blocks, sampler)
	require.NoError(t, err)
	require.NotEqual(t, a, c, "different seeds should diverge")
}

// randomSampler draws uniform categories from the per-(sweep,block) stream.
type randomSampler struct {
	blocks []chain.Block
	k      int
}

func (s randomSampler) SampleBlock(rng *rand.Rand, b int, _, next []uint8) error {
	for _, node := range s.blocks[b] {
		next[node] = uint8(rng.Intn(s.k))
	}
	return nil
}
