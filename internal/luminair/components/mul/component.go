package mul

import (
	"github.com/luminair/luminair-core/internal/luminair/air"
	"github.com/luminair/luminair-core/internal/luminair/field"
)

const NColumns = 15

// Evaluate runs mul's constraints: identical skeleton to add's (§4.2.x
// table), with lhs*rhs-out=0 in place of lhs+rhs-out=0.
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
	ev.AddConstraint(lhsVal.Mul(rhsVal).Sub(outVal))

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
