package add

import (
	"github.com/luminair/luminair-core/internal/luminair/air"
	"github.com/luminair/luminair-core/internal/luminair/field"
)

// NColumns is the number of main-trace columns add's row schema has.
const NColumns = 15

// Evaluate runs add's constraints against ev, in the exact column order
// Row.Fields lists: consistency (boolean is_last_idx, then lhs+rhs-out=0),
// transition (gated by 1-is_last_idx), and the interaction terms emitting
// the output token and consuming both input tokens. Shared verbatim by both
// Eval providers (§9's "symbolic evaluator" pattern) — air.ConstraintChecker
// for the verifier's spot-checks and air.DegreeBound for the degree bound.
func Evaluate(ev air.Eval) {
	nodeID := ev.NextMask()
	lhsID := ev.NextMask()
	rhsID := ev.NextMask()
	idx := ev.NextMask()
	isLastIdx := ev.NextMask()
	nextNodeID := ev.NextMask()
	nextLhsID := ev.NextMask()
	nextRhsID := ev.NextMask()
	nextIdx := ev.NextMask()
	lhsVal := ev.NextMask()
	rhsVal := ev.NextMask()
	outVal := ev.NextMask()
	lhsMult := ev.NextMask()
	rhsMult := ev.NextMask()
	outMult := ev.NextMask()

	one := air.Const(field.One())
	ev.AddConstraint(isLastIdx.Mul(isLastIdx.Sub(one)))
	ev.AddConstraint(lhsVal.Add(rhsVal).Sub(outVal))

	notLast := one.Sub(isLastIdx)
	ev.AddConstraint(notLast.Mul(nextNodeID.Sub(nodeID)))
	ev.AddConstraint(notLast.Mul(nextLhsID.Sub(lhsID)))
	ev.AddConstraint(notLast.Mul(nextRhsID.Sub(rhsID)))
	ev.AddConstraint(notLast.Mul(nextIdx.Sub(idx.Add(one))))

	ev.AddToRelation(air.RelationEntry{Multiplicity: outMult, Values: []air.Expr{outVal, nodeID}})
	ev.AddToRelation(air.RelationEntry{Multiplicity: lhsMult.Neg(), Values: []air.Expr{lhsVal, lhsID}})
	ev.AddToRelation(air.RelationEntry{Multiplicity: rhsMult.Neg(), Values: []air.Expr{rhsVal, rhsID}})
	ev.FinalizeLogup()
}
