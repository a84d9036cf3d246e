package sqrt

import (
	"github.com/luminair/luminair-core/internal/luminair/air"
	"github.com/luminair/luminair-core/internal/luminair/field"
)

const NColumns = 13

// pow2 computes 2^(e*multiplier) in M31, mirroring recip.pow2. Called on the
// concrete scale value directly rather than through Eval so DegreeBound's
// always-zero Value still yields the correct constant-degree contribution.
func pow2(scale field.M31, multiplier uint32) field.M31 {
	return field.NewM31(2).Pow(scale.Uint32() * multiplier)
}

// Evaluate runs sqrt's constraints: boolean is_last_idx, the fixed-point
// square-root identity out_val^2 + rem_val = in_val * 2^scale, and the
// usual transition + emit/consume terms. As with recip, the remainder
// bound (0 <= rem_val < 2*out_val+1) is not separately enforced by a
// bit-decomposition gadget, and WriteTrace commits the caller's rem_val as
// given without checking it.
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

	scaled := inVal.Mul(air.Const(pow2(scale.Value, 1)))
	ev.AddConstraint(outVal.Mul(outVal).Add(remVal).Sub(scaled))

	notLast := one.Sub(isLastIdx)
	ev.AddConstraint(notLast.Mul(nextNodeID.Sub(nodeID)))
	ev.AddConstraint(notLast.Mul(nextInID.Sub(inID)))
	ev.AddConstraint(notLast.Mul(nextIdx.Sub(idx.Add(one))))

	ev.AddToRelation(air.RelationEntry{Multiplicity: outMult, Values: []air.Expr{outVal, nodeID}})
	ev.AddToRelation(air.RelationEntry{Multiplicity: inMult.Neg(), Values: []air.Expr{inVal, inID}})
	ev.FinalizeLogup()
}
