// Package cycle simulates deterministic step functions for very large step
// counts by detecting a repeated configuration and fast-forwarding with
// modular arithmetic.
//
// A Simulation is an initial configuration, a Step function and a Signature
// that fingerprints a configuration. Run executes steps while recording
// signature → step index (step 0 being the initial configuration). When the
// signature after step i was already seen at step j, the configurations
// repeat with period L = i − j, so the configuration at the target equals the
// one reached after (target − i) mod L further steps.
//
// Functions:
//
//	Run(sim, target)               configuration after target steps
//	Extrapolate(sim, target, m)    value of a cumulative per-step measure at target
//	Detect(sim, limit)             where the first repeat starts and its length
//
// If target is reached before any repeat, Run simply returns the simulated
// configuration; Report.Found tells the two apart.
//
// Signature collisions are treated as repeats. Use a full-state fingerprint
// (signature.Rows for grids, signature.Of for structs) so that collisions are
// negligible for the state space at hand.
//
// Step may mutate its argument in place and return it: only signatures are kept
// in history. Callers that need the Initial configuration afterwards must copy
// it first.
package cycle
