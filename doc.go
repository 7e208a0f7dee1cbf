// Package gibbsudoku solves Sudoku the probabilistic way — as a discrete
// Markov random field sampled with block Gibbs, not with backtracking.
//
// 🎲 What is gibbsudoku?
//
//	A deterministic, seed-reproducible stochastic solver built from three
//	small packages:
//		• board/ — puzzle parsing, the 9×9 Grid, violation scoring & rendering
//		• chain/ — the generic block-Gibbs runtime: blocks, relations,
//		  deterministic RNG streams, and the sweep/record scheduler
//		• gibbs/ — the solver core: constraint graph, interaction encoding,
//		  two conditional sampling policies, and best-sample selection
//
// ✨ Why sample instead of search?
//
//   - Anytime behavior – every recorded sample is a candidate board; the
//     lowest-violation one is returned even when the chain has not mixed
//   - Tunable – warmup, sample count, spacing and self-bias are all Options
//   - Reproducible – one seed drives every sub-stream; identical inputs
//     yield identical boards, bit for bit
//
// Two sampling policies are provided:
//
//	row  — resamples a whole row of free cells as a joint permutation of 1..9
//	cell — resamples each free cell independently via a masked softmax
//
// Note: this is a stochastic heuristic. A board with residual conflicts may
// be returned when the chain fails to mix within the configured budget;
// inspect the violation count via gibbs.SolveWithStats.
//
//	go get github.com/katalvlaran/gibbsudoku
package gibbsudoku
