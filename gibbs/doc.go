// Package gibbs solves Sudoku by block Gibbs sampling over a discrete
// Markov random field, one categorical variable per cell.
//
// What:
//
//   - Builds the constraint graph: 81 cells, clues clamped, and for every
//     free cell its 20-cell exclusion neighborhood (row ∪ column ∪ box).
//   - Encodes per-block relations: 20 Exclusion links (one per neighbor
//     slot) plus a single SelfBias link rewarding each cell for keeping
//     its current value.
//   - Samples with one of two interchangeable conditional policies:
//     – ModeRow: resamples each free row jointly as a permutation of 1..9,
//     enforced by a shrinking chosen-digit mask, most-constrained members
//     drawing first.
//     – ModeCell: resamples each free cell independently via a masked
//     softmax that forbids any digit present among its neighbors.
//   - Records scheduled snapshots after a warmup phase and returns the
//     lowest-violation board, stopping at the first perfect sample.
//
// Why:
//
//   - An anytime, tunable alternative to backtracking: every sample is a
//     candidate board, and mixing budget trades time for quality.
//
// Determinism:
//
//   - Identical (puzzle, Options) inputs produce identical boards; all
//     randomness derives from Options.Seed via chain's stream layout.
//
// Complexity:
//
//   - Graph build + encoding: O(81·20).
//   - One sweep: O(free cells × 20 × 9).
//   - Full run: sweeps × sweep cost, sweeps = Warmup + NSamples×StepsPerSample.
//
// Options:
//
//   - WarmupSteps (5000), StepsPerSample (100), NSamples (32),
//     SelfBias (2.5), Mode (ModeRow), Seed (0 ⇒ fixed default stream).
//
// Errors:
//
//   - ErrNegativeSteps: negative warmup or sample spacing.
//   - ErrUnknownMode: a Mode outside {ModeRow, ModeCell}.
//   - ErrNeighborCount: an internal neighborhood was not exactly 20 cells
//     (a construction defect; the run aborts rather than mis-sample).
//
// Note: this is a stochastic heuristic, not a complete solver. When the
// chain fails to mix within budget the best observed board is returned;
// SolveWithStats exposes its residual violation count.
package gibbs
