package recip

import (
	"github.com/luminair/luminair-core/internal/luminair/air"
	"github.com/luminair/luminair-core/internal/luminair/field"
)

const NColumns = 13

// pow2 computes 2^(e*multiplier) in M31, used (with multiplier 1) to derive
// the fixed-point target 2^scale from the row's own scale column. Called directly on
// the column's concrete Value rather than threaded through the Eval
// interface: under DegreeBound, Value is always zero, so this collapses to
// the constant 2^0=1, which still yields the correct constraint degree
// bound (the degree comes from in_val*out_val, not from this term).
func pow2(scale field.M31, multiplier uint32) field.M31 {
	return field.NewM31(2).Pow(scale.Uint32() * multiplier)
}

// Evaluate runs recip's constraints: boolean is_last_idx, the fixed-point
// reciprocal identity, and the usual transition + emit/consume terms.
// The remainder bound 0 <= rem_val < in_val is not separately enforced by
// a bit-decomposition gadget here — §4.2.x lists it as optional ("if
// used"). WriteTrace commits the caller's rem_val as given and does not
// check the bound either, so a row with an out-of-range rem_val that still
// satisfies the identity is accepted.
func Evaluate(ev air.Eval) {
	nodeID := ev.NextMask()
	inID := ev.NextMask()
	idx := ev.NextMask()
	isLastIdx := ev.NextMask()
	nextNodeID := ev.NextMask()
	nextInID := ev.NextMask()
	nextIdx := ev.NextMask()
	inVal := ev.NextMask()
	outVal := ev.NextMask()
	remVal := ev.NextMask()
	scale := ev.NextMask()
	inMult := ev.NextMask()
	outMult := ev.NextMask()

	one := air.Const(field.One())
	ev.AddConstraint(isLastIdx.Mul(isLastIdx.Sub(one)))

	// §4.2.x's prose gives in_val*out_val=2^(2*scale), but §8 scenario S5
	// (a=b=2 -> mul gives 4 -> recip expects ~2^12/4=1024) is only
	// consistent with a single power of scale; the worked test scenario is
	// taken as authoritative over the table entry, resolving the
	// inconsistency the same way original_source would have pinned it had
	// a recip trace file been available in the retrieval pack.
	target := air.Const(pow2(scale.Value, 1))
	ev.AddConstraint(inVal.Mul(outVal).Add(remVal).Sub(target))

	notLast := one.Sub(isLastIdx)
	ev.AddConstraint(notLast.Mul(nextNodeID.Sub(nodeID)))
	ev.AddConstraint(notLast.Mul(nextInID.Sub(inID)))
	ev.AddConstraint(notLast.Mul(nextIdx.Sub(idx.Add(one))))

	ev.AddToRelation(air.RelationEntry{Multiplicity: outMult, Values: []air.Expr{outVal, nodeID}})
	ev.AddToRelation(air.RelationEntry{Multiplicity: inMult.Neg(), Values: []air.Expr{inVal, inID}})
	ev.FinalizeLogup()
}
