// Package verifier implements the verification orchestrator (C7): a mirror
// of the prover's commit-mix-draw-commit protocol that re-derives every
// deterministic value (preprocessed columns, challenges, queries) instead
// of trusting it from the proof, and only takes the witness-dependent
// commitments (main/interaction roots) on faith, checking them against
// openings. Grounded on spec §4.5 ("mirror of §4.4") and
// original_source/crates/verifier/src/verifier.rs's re-derive-then-check
// structure.
package verifier

import (
	"github.com/luminair/luminair-core/internal/luminair/air"
	"github.com/luminair/luminair-core/internal/luminair/components/add"
	"github.com/luminair/luminair-core/internal/luminair/components/exp2"
	"github.com/luminair/luminair-core/internal/luminair/components/maxreduce"
	"github.com/luminair/luminair-core/internal/luminair/components/mul"
	"github.com/luminair/luminair-core/internal/luminair/components/recip"
	"github.com/luminair/luminair-core/internal/luminair/components/sin"
	"github.com/luminair/luminair-core/internal/luminair/components/sqrt"
	"github.com/luminair/luminair-core/internal/luminair/components/sumreduce"
	"github.com/luminair/luminair-core/internal/luminair/field"
	"github.com/luminair/luminair-core/internal/luminair/pie"
	"github.com/luminair/luminair-core/internal/luminair/prover"
	"github.com/luminair/luminair-core/internal/luminair/stark"
)

// Verify re-runs the protocol's deterministic side against proof and
// settings and reports the first failed check via an air.Error categorized
// per §7's VerificationFailed reasons. A nil return is the round-trip
// soundness invariant (§8 property 1) holding for this proof.
func Verify(proof *prover.Proof, settings pie.CircuitSettings) error {
	ch := stark.NewChannel()

	// Phase 0 - Preprocessed Trace: rebuilt from settings, never trusted
	// from the proof — the verifier knows the true preprocessed values and
	// checks the prover's claimed root against its own.
	preGroups, preFnOrder, _ := settings.GroupedColumns()
	preTree, err := stark.CommitMulti(preGroups)
	if err != nil && len(preGroups) > 0 {
		return air.NewVerificationFailed(air.ReasonBadCommitment, "failed to rebuild preprocessed trace: "+err.Error())
	}
	if preTree.TotalRows() > 0 {
		if preTree.Root != proof.StarkProof.PreprocessedRoot {
			return air.NewVerificationFailed(air.ReasonBadCommitment, "preprocessed root does not match re-derived LUT columns")
		}
		ch.MixBytes(preTree.Root[:])
	}

	// Phase 1 - Main Trace: the claim is public (mixed identically to
	// proving), but the root itself is taken from the proof — the verifier
	// has no witness to recompute it from.
	proof.Claim.MixInto(ch)
	mainRoot := proof.StarkProof.MainRoot
	ch.MixBytes(mainRoot[:])
	if stark.CombineRoots(proof.StarkProof.MainGroupRoots) != mainRoot {
		return air.NewVerificationFailed(air.ReasonBadCommitment, "main trace group roots do not fold to the claimed main root")
	}

	// Phase 2 - Interaction Trace. The drawn elements themselves only matter
	// for re-deriving LogUp fractions from a relation entry, which spot-check
	// re-evaluation below doesn't attempt (see reEvaluate) — but the draws
	// still have to happen, in the same order, to keep the channel's state
	// in lockstep with the prover's.
	air.DrawElements(ch, 2)
	for range preFnOrder {
		air.DrawElements(ch, 2)
	}

	proof.InteractionClaim.MixInto(ch)
	interRoot := proof.StarkProof.InteractionRoot
	ch.MixBytes(interRoot[:])
	if stark.CombineRoots(proof.StarkProof.InteractionGroupRoots) != interRoot {
		return air.NewVerificationFailed(air.ReasonBadCommitment, "interaction trace group roots do not fold to the claimed interaction root")
	}

	// §8 property 4: global LogUp balance.
	if !proof.InteractionClaim.Sum().IsZero() {
		return air.NewVerificationFailed(air.ReasonUnbalancedLogUp, "sum of all operator claimed_sums is non-zero")
	}

	// Proof Generation: re-derive the same queries the prover drew, in the
	// same order (main domain first, then preprocessed — see
	// prover.Prove's Proof Generation phase), and check every opening.
	if proof.StarkProof.MainTotalRows > 0 {
		queries := stark.DeriveQueries(ch, proof.StarkProof.MainTotalRows, prover.DefaultQueryCount)
		if err := verifyMainOpenings(proof, queries); err != nil {
			return err
		}
	}
	if proof.StarkProof.PreprocessedTotalRows > 0 {
		queries := stark.DeriveQueries(ch, proof.StarkProof.PreprocessedTotalRows, prover.DefaultQueryCount)
		if err := verifyPreprocessedOpenings(preTree, proof.StarkProof.PreprocessedGroupRowCounts, proof, queries); err != nil {
			return err
		}
	}

	return nil
}

func verifyMainOpenings(proof *prover.Proof, queries []int) error {
	sp := proof.StarkProof
	if len(sp.MainOpenings) != len(queries) {
		return air.NewVerificationFailed(air.ReasonBadFRI, "main opening count does not match the number of derived queries")
	}
	for i, opening := range sp.MainOpenings {
		wantGroup, wantRow, err := stark.ResolvePrefix(sp.MainGroupRowCounts, queries[i])
		if err != nil {
			return air.NewVerificationFailed(air.ReasonBadFRI, "derived query out of range: "+err.Error())
		}
		if opening.Group != wantGroup || opening.Row != wantRow {
			return air.NewVerificationFailed(air.ReasonBadFRI, "opened row does not match the derived query index")
		}
		if opening.Group < 0 || opening.Group >= len(sp.MainGroupRoots) {
			return air.NewVerificationFailed(air.ReasonBadCommitment, "opening references an unknown group")
		}
		if !stark.VerifyRow(sp.MainGroupRoots[opening.Group], opening.MainValues, opening.MainPath, opening.Row) {
			return air.NewVerificationFailed(air.ReasonBadCommitment, "main row authentication path failed")
		}
		if !stark.VerifyRow(sp.InteractionGroupRoots[opening.Group], opening.InteractionValues, opening.InteractionPath, opening.Row) {
			return air.NewVerificationFailed(air.ReasonBadCommitment, "interaction row authentication path failed")
		}
		kind := sp.MainGroupKinds[opening.Group]
		if err := reEvaluate(kind, opening.MainValues); err != nil {
			return air.NewVerificationFailed(air.ReasonClaimMismatch, kind+": "+err.Error())
		}
	}
	return nil
}

func verifyPreprocessedOpenings(preTree *stark.MultiTree, rowCounts []int, proof *prover.Proof, queries []int) error {
	openings := proof.StarkProof.PreprocessedOpenings
	if len(openings) != len(queries) {
		return air.NewVerificationFailed(air.ReasonBadFRI, "preprocessed opening count does not match the number of derived queries")
	}
	for i, opening := range openings {
		wantGroup, wantRow, err := stark.ResolvePrefix(rowCounts, queries[i])
		if err != nil {
			return air.NewVerificationFailed(air.ReasonBadFRI, "derived query out of range: "+err.Error())
		}
		if opening.Group != wantGroup || opening.Row != wantRow {
			return air.NewVerificationFailed(air.ReasonBadFRI, "opened preprocessed row does not match the derived query index")
		}
		if opening.Group < 0 || opening.Group >= len(preTree.Trees) {
			return air.NewVerificationFailed(air.ReasonBadCommitment, "preprocessed opening references an unknown group")
		}
		if !stark.VerifyRow(preTree.Trees[opening.Group].Root(), opening.Values, opening.Path, opening.Row) {
			return air.NewVerificationFailed(air.ReasonBadCommitment, "preprocessed row authentication path failed")
		}
	}
	return nil
}

// reEvaluate re-runs kind's Eval logic against row via a ConstraintChecker
// (§9's symbolic-evaluator pattern: the operator's one Eval definition, run
// here against a concrete opened row). Lookup-witness kinds (SinLookup/Exp2Lookup) have no Eval —
// their only check is the Merkle authentication already performed above.
func reEvaluate(kind string, row []field.M31) error {
	checker := air.NewConstraintChecker(kind, row)
	switch kind {
	case "Add":
		add.Evaluate(checker)
	case "Mul":
		mul.Evaluate(checker)
	case "Recip":
		recip.Evaluate(checker)
	case "Sqrt":
		sqrt.Evaluate(checker)
	case "Sin":
		sin.Evaluate(checker)
	case "Exp2":
		exp2.Evaluate(checker)
	case "SumReduce":
		sumreduce.Evaluate(checker)
	case "MaxReduce":
		maxreduce.Evaluate(checker)
	case "SinLookup", "Exp2Lookup":
		return nil
	default:
		return air.NewConstraintFailure(kind, "unknown operator kind in proof")
	}
	return checker.Err()
}
