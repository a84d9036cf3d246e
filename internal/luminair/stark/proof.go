package stark

import "github.com/luminair/luminair-core/internal/luminair/field"

// MainOpening is one queried row's authenticated values from the main and
// interaction phases, for a single operator group. Group indexes both
// MultiTrees identically (the prover builds both from the same
// stably-ordered operator list, so group g's main and interaction trees
// always hold the same number of rows) — what the verifier needs to
// re-run that operator's Eval against a concrete row and confirm it
// against both committed roots (§7's "VerificationFailed" categories this
// feeds: bad commitment / bad FRI / claim mismatch).
type MainOpening struct {
	Group int
	Row   int

	MainValues []field.M31
	MainPath   []ProofNode

	// InteractionValues are the limb-expanded (c0.A, c0.B, c1.A, c1.B, ...)
	// QM31 interaction columns, four M31 values per original QM31 column,
	// in column order — see ExpandQM31Columns.
	InteractionValues []field.M31
	InteractionPath   []ProofNode
}

// PreprocessedOpening is one queried row from the preprocessed LUT phase.
// Its row-space is unrelated to any operator's: group indexes the
// preprocessed MultiTree (one group per declared LUT function).
type PreprocessedOpening struct {
	Group int
	Row   int

	Values []field.M31
	Path   []ProofNode
}

// Proof is the output of the prover orchestrator (C6): the three phase
// commitments plus row openings standing in for the real FRI low-degree
// proof (§1 scopes the actual PCS/FRI engine out as an external black box;
// see DESIGN.md "Black-box STARK engine" for why this repo carries a
// simplified but genuinely-checking stand-in instead of a no-op).
// LuminairProof in §6 additionally carries claim/interaction_claim, which
// live one layer up in internal/luminair/prover because their shape depends
// on which operators are present.
type Proof struct {
	PreprocessedRoot [32]byte
	MainRoot         [32]byte
	InteractionRoot  [32]byte
	DomainLogSize    uint32

	// PreprocessedGroupRoots, MainGroupRoots and InteractionGroupRoots carry
	// each phase's per-group tree roots (see MultiTree.GroupRoots) so the
	// verifier can authenticate an opening against its own group's root —
	// the folded *Root fields above are only the value mixed into the
	// channel, and combineRoots is not invertible back into them.
	PreprocessedGroupRoots [][32]byte
	MainGroupRoots         [][32]byte
	InteractionGroupRoots  [][32]byte

	// MainTotalRows and PreprocessedTotalRows are each MultiTree's
	// TotalRows() at proving time — the verifier has no live MultiTree to
	// ask (it never holds the witness), so these let it re-derive the
	// identical flat-index queries DeriveQueries drew during proving
	// without guessing a domain size from DomainLogSize, which is only the
	// largest single operator's log-size, not the summed virtual row-space
	// DeriveQueries actually samples over.
	MainTotalRows         int
	PreprocessedTotalRows int

	// MainGroupRowCounts and PreprocessedGroupRowCounts let the verifier
	// rebuild ResolvePrefix's flat-index table (see GroupRowCounts) without
	// a live MultiTree of its own.
	MainGroupRowCounts         []int
	PreprocessedGroupRowCounts []int

	// MainGroupKinds names the operator each main/interaction group index
	// belongs to (e.g. "Add", "SinLookup"), in the same order mainGroups
	// was built during proving. Group order follows LuminairPie.TableTraces
	// — the caller's own order, §4.4 only requires it be stable and
	// identical to the order Phase 2 replays, not the canonical Claim-field
	// order — so without this the verifier has no way to know which
	// operator's Eval to re-run against a given opening.
	MainGroupKinds []string

	MainOpenings         []MainOpening
	PreprocessedOpenings []PreprocessedOpening
}

// CombineRoots re-derives the folded root from a phase's per-group roots,
// exported so the verifier can confirm PreprocessedGroupRoots/MainGroupRoots/
// InteractionGroupRoots are consistent with the *Root value that was
// actually mixed into the channel, rather than trusting them unchecked.
func CombineRoots(roots [][32]byte) [32]byte {
	return combineRoots(roots)
}
