package sin

import (
	"github.com/luminair/luminair-core/internal/luminair/air"
	"github.com/luminair/luminair-core/internal/luminair/field"
)

const NColumns = 13

// Evaluate runs sin's constraints: boolean is_last_idx, the usual transition
// terms, and the emit/consume node-relation pair. There is no arithmetic
// relation between in_val and out_val here — the literal constraint
// `out_val*in_val - out_val*in_val + rem_val` is written exactly in that
// expanded (never-simplified-by-hand) form, matching
// original_source/crates/air/src/components/exp2/component.rs's own
// placeholder for the same reason: a real sin polynomial identity isn't
// expressible at this degree, so correctness is entirely carried by the LUT
// lookup token added below, balanced against sinlookup's multiplicity trace.
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
	_ = ev.NextMask() // scale: unused by the placeholder constraint, still consumed in schema order
	inMult := ev.NextMask()
	outMult := ev.NextMask()

	one := air.Const(field.One())
	ev.AddConstraint(isLastIdx.Mul(isLastIdx.Sub(one)))
	ev.AddConstraint(outVal.Mul(inVal).Sub(outVal.Mul(inVal)).Add(remVal))

	notLast := one.Sub(isLastIdx)
	ev.AddConstraint(notLast.Mul(nextNodeID.Sub(nodeID)))
	ev.AddConstraint(notLast.Mul(nextInID.Sub(inID)))
	ev.AddConstraint(notLast.Mul(nextIdx.Sub(idx.Add(one))))

	ev.AddToRelation(air.RelationEntry{Multiplicity: outMult, Values: []air.Expr{outVal, nodeID}})
	ev.AddToRelation(air.RelationEntry{Multiplicity: inMult.Neg(), Values: []air.Expr{inVal, inID}})
	// The LUT-access token: one unit of the (in_val, out_val) pair emitted
	// into the shared sin relation, balanced by sinlookup's negated
	// multiplicity.
	ev.AddToRelation(air.RelationEntry{Multiplicity: air.Const(field.One()), Values: []air.Expr{inVal, outVal}})
	ev.FinalizeLogup()
}
