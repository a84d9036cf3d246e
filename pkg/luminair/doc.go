// Package luminair provides a zero-knowledge STARK prover and verifier
// for traced tensor-graph computations: a fixed set of element-wise and
// reduction operators (Add, Mul, Recip, Sqrt, Sin, Exp2, SumReduce,
// MaxReduce) executed over the circle-domain M31/QM31 field, each
// contributing its own AIR component, tied together by a LogUp lookup
// argument across both producer/consumer node dataflow and the Sin/Exp2
// preprocessed lookup tables.
//
// # Features
//
// - One AIR component per operator, built on a shared symbolic evaluator
// - Tagged-union proving-input container (Pie) assembled from a traced
//   computation graph
// - LogUp-based lookup argument for Sin/Exp2, sharing a single
//   preprocessed table across every trace row that needs it
// - Fiat-Shamir commit-mix-draw-commit protocol over independently
//   committed per-operator column groups (MultiTree)
//
// # Quick Start
//
// Building a Pie from a traced computation and proving it:
//
//	p := luminair.Pie{
//		TableTraces: []luminair.TableTrace{ /* one per operator that ran */ },
//		ExecutionResources: luminair.ExecutionResources{ /* ... */ },
//	}
//	settings := luminair.CircuitSettings{} // no LUTs needed for Add/Mul-only graphs
//
//	proof, err := luminair.Prove(p, settings, zerolog.Nop())
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Verifying a proof:
//
//	if err := luminair.Verify(proof, settings); err != nil {
//		log.Fatal(err)
//	}
//
// # Architecture
//
// - pkg/luminair/: public API (this package)
// - internal/luminair/: private implementation (not importable)
//
// Operator trace generation, the symbolic AIR evaluator, the STARK engine
// stand-in (commitment + query opening, scoped short of a real FRI
// low-degree test — see DESIGN.md), and the prover/verifier orchestrators
// all live under internal/ and can change shape without affecting this
// package's surface.
//
// # License
//
// The repository ships no LICENSE file.
package luminair
