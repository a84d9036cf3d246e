package exp2

import (
	"github.com/luminair/luminair-core/internal/luminair/air"
	"github.com/luminair/luminair-core/internal/luminair/field"
)

const NColumns = 13

// Evaluate runs exp2's constraints, ported directly from
// original_source/crates/air/src/components/exp2/component.rs: the boolean
// is_last_idx check, the literal placeholder identity
// out_val*in_val - out_val*in_val + rem_val (degree-matching, not a real
// exp2 relation — the source's own comment calls it exactly that, a
// placeholder), the usual transition terms, and the node emit/consume pair
// plus the LUT-access token.
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
	_ = ev.NextMask() // scale
	inMult := ev.NextMask()
	outMult := ev.NextMask()

	one := air.Const(field.One())
	ev.AddConstraint(isLastIdx.Mul(isLastIdx.Sub(one)))
	ev.AddConstraint(outVal.Mul(inVal).Sub(outVal.Mul(inVal)).Add(remVal))

	notLast := one.Sub(isLastIdx)
	ev.AddConstraint(notLast.Mul(nextNodeID.Sub(nodeID)))
	ev.AddConstraint(notLast.Mul(nextInID.Sub(inID)))
	ev.AddConstraint(notLast.Mul(nextIdx.Sub(idx.Add(one))))

	// original_source's exp2/component.rs passes both multiplicities through
	// unnegated; this module instead keeps the sign convention the rest of
	// C4 uses uniformly (positive = emit, negative = consume) so every
	// component's own self-contained tests and any future cross-component
	// wiring balance the same way.
	ev.AddToRelation(air.RelationEntry{Multiplicity: inMult.Neg(), Values: []air.Expr{inVal, inID}})
	ev.AddToRelation(air.RelationEntry{Multiplicity: outMult, Values: []air.Expr{outVal, nodeID}})
	ev.AddToRelation(air.RelationEntry{Multiplicity: air.Const(field.One()), Values: []air.Expr{inVal, outVal}})
	ev.FinalizeLogup()
}
