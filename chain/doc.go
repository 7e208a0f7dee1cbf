// Package chain is a small block-Gibbs sampling runtime for categorical
// Markov random fields.
//
// What:
//
//   - Nodes are categorical variables addressed by dense int indices; the
//     current assignment lives in a flat []uint8 state vector.
//   - Blocks partition the free (non-clamped) nodes; one sweep applies a
//     Sampler to every block in order, each draw conditioning on the state
//     committed by all earlier draws.
//   - Relations link a head block to member-aligned tail nodes, either as
//     plain Exclusion links or as a SelfBias link carrying per-member
//     weights. The kind is an explicit tag, never inferred from payloads.
//   - Run drives the chain through a Schedule: warmup sweeps are discarded,
//     then Samples snapshots are recorded, StepsPerSample sweeps apart.
//
// Why:
//
//   - Problem-specific solvers (gibbs/) own the graph semantics; this
//     package owns only chain bookkeeping, scheduling and determinism.
//
// Determinism:
//
//   - All randomness flows from one run seed through SplitMix64-derived
//     sub-streams, one per (sweep, block) draw and one per block for
//     initialization. Identical inputs replay identical chains.
//
// Concurrency:
//
//   - Blocks commit sequentially within a sweep, the scan order a plain
//     Gibbs schedule. Each block's draw reads a stable snapshot taken just
//     before it, so a sampler never observes its own partial writes. There
//     is exactly one writer.
//
// Errors:
//
//   - ErrStateShape: state/clamp vectors disagree in length.
//   - ErrBlockOverlap: a node appears in more than one block.
//   - ErrBlockCoverage: blocks do not cover exactly the non-clamped nodes.
//   - ErrNilSampler: blocks were provided without a sampler.
//
// Complexity: Run is O(sweeps × Σ block cost); memory O(nodes) plus one
// snapshot per recorded sample.
package chain
