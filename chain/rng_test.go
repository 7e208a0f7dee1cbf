package chain

import "testing"

// TestDeriveSeed_Avalanche verifies adjacent streams decorrelate: distinct
// stream ids must yield distinct derived seeds, and the zero seed must map
// to the fixed default.
func TestDeriveSeed_Avalanche(t *testing.T) {
	seen := make(map[int64]uint64)
	for stream := uint64(0); stream < 1024; stream++ {
		s := deriveSeed(defaultRunSeed, stream)
		if prev, dup := seen[s]; dup {
			t.Fatalf("streams %d and %d collided on seed %d", prev, stream, s)
		}
		seen[s] = stream
	}
}

// TestRunSeed_ZeroPolicy checks seed==0 maps to the stable default so that
// default runs are reproducible.
func TestRunSeed_ZeroPolicy(t *testing.T) {
	if runSeed(0) != defaultRunSeed {
		t.Errorf("runSeed(0) = %d; want %d", runSeed(0), defaultRunSeed)
	}
	if runSeed(42) != 42 {
		t.Errorf("runSeed(42) = %d; want 42", runSeed(42))
	}
}

// TestStreams_Determinism verifies that the same (seed, sweep, block)
// coordinates replay identical draws, and that init streams never collide
// with sweep streams.
func TestStreams_Determinism(t *testing.T) {
	a := sweepRNG(7, 3, 1, 4)
	b := sweepRNG(7, 3, 1, 4)
	for i := 0; i < 16; i++ {
		if a.Int63() != b.Int63() {
			t.Fatalf("sweep stream not deterministic at draw %d", i)
		}
	}

	// Different coordinates must diverge quickly.
	c := sweepRNG(7, 3, 2, 4)
	d := sweepRNG(7, 4, 1, 4)
	if c.Int63() == d.Int63() && c.Int63() == d.Int63() {
		t.Errorf("distinct stream coordinates produced identical draws")
	}

	// Init streams live in a tagged namespace.
	e := InitRNG(7, 1)
	f := sweepRNG(7, 0, 1, 4)
	if e.Int63() == f.Int63() && e.Int63() == f.Int63() {
		t.Errorf("init stream collided with sweep stream")
	}
}
