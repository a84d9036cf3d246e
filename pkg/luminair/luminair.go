// Package luminair is the public API: a stable surface over the proving
// core in internal/luminair, following internal/pkg split the teacher
// repo uses (pkg/vybium-starks-vm is its public counterpart) so
// implementation details under internal/ can be refactored without
// breaking callers.
package luminair

import (
	"github.com/rs/zerolog"

	"github.com/luminair/luminair-core/internal/luminair/prover"
	"github.com/luminair/luminair-core/internal/luminair/verifier"
)

// Prove runs the full prover orchestrator (§4.4) over p and settings,
// producing a Proof a Verify call can later check. log receives one line
// per protocol phase; pass zerolog.Nop() for silent operation.
func Prove(p Pie, settings CircuitSettings, log zerolog.Logger) (*Proof, error) {
	return prover.Prove(p, settings, log)
}

// Verify runs the verifier orchestrator (§4.5) against proof, under the
// same settings the proof was produced with. A nil return means every
// check — commitment consistency, query-index derivation, per-row
// constraint re-evaluation, and global LogUp balance (§8) — passed.
func Verify(proof *Proof, settings CircuitSettings) error {
	return verifier.Verify(proof, settings)
}
