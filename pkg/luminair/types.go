package luminair

import (
	"github.com/luminair/luminair-core/internal/luminair/pie"
	"github.com/luminair/luminair-core/internal/luminair/preprocessed"
	"github.com/luminair/luminair-core/internal/luminair/prover"
)

// Pie is the proving-input container a caller assembles from a dataflow
// graph execution: one TableTrace per operator that ran, plus resource
// accounting. It is the public name for internal/luminair/pie.LuminairPie —
// internal/ is where the tagged-union trace types live, but callers only
// ever need to build and pass one, not reach into its variants.
type Pie = pie.LuminairPie

// TableTrace is one operator's trace table, tagged by which operator it
// came from. See pie.TableTrace's variants (AddTable, MulTable, ...) for
// the concrete values a Pie's TableTraces field holds.
type TableTrace = pie.TableTrace

// ExecutionResources is the per-proof resource accounting a Pie carries:
// how many instances of each operator ran, and the largest single
// operator's log-size (recorded in the proof as its DomainLogSize).
type ExecutionResources = pie.ExecutionResources

// OpCounter tallies how many instances of each operator kind ran.
type OpCounter = pie.OpCounter

// CircuitSettings declares which preprocessed lookup tables (Sin, Exp2) a
// proof run requires. The prover and verifier must be called with the
// identical CircuitSettings value — it is agreed out of band, never
// carried inside the proof itself.
type CircuitSettings = pie.CircuitSettings

// LUTSetting is one declared lookup table: its function and log-size.
type LUTSetting = pie.LUTSetting

// Function names a preprocessed lookup table kind (Sin or Exp2).
type Function = preprocessed.Function

// Exp2Domain is the signed fixed-point input range an Exp2 LUT is built
// over — see preprocessed.Exp2Domain.
type Exp2Domain = preprocessed.Exp2Domain

// Claim is the public dimension of every present operator's trace: one
// optional per-operator log-size, mixed into the transcript.
type Claim = prover.Claim

// InteractionClaim is every present operator's claimed LogUp sum.
type InteractionClaim = prover.InteractionClaim

// Proof is a complete LuminAIR proof: the claims plus the underlying
// STARK-engine commitments and query openings (see
// internal/luminair/stark.Proof for the full shape).
type Proof = prover.Proof

const (
	// FunctionSin names the sin lookup table.
	FunctionSin = preprocessed.FunctionSin
	// FunctionExp2 names the exp2 lookup table.
	FunctionExp2 = preprocessed.FunctionExp2
)
