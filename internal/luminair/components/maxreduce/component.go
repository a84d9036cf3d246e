package maxreduce

import (
	"github.com/luminair/luminair-core/internal/luminair/air"
	"github.com/luminair/luminair-core/internal/luminair/field"
)

const NColumns = 16

// Evaluate runs max_reduce's constraints: sumreduce's skeleton plus the
// gt_flag gadget. gt_flag is boolean, and rem_val links it to the
// comparison in_val > acc: when gt_flag = 1, in_val - acc - 1 = rem_val;
// when gt_flag = 0, acc - in_val = rem_val. As with recip/sqrt's remainder
// columns, the bound 0 <= rem_val is not separately enforced by a
// bit-decomposition range-check gadget here — the same documented
// soundness-gap precedent, confined to trusting the trace generator.
func Evaluate(ev air.Eval) {
	nodeID := ev.NextMask()
	inID := ev.NextMask()
	idx := ev.NextMask()
	isLastIdx := ev.NextMask()
	nextNodeID := ev.NextMask()
	nextInID := ev.NextMask()
	nextIdx := ev.NextMask()
	acc := ev.NextMask()
	inVal := ev.NextMask()
	isSliceLast := ev.NextMask()
	gtFlag := ev.NextMask()
	remVal := ev.NextMask()
	nextAcc := ev.NextMask()
	outVal := ev.NextMask()
	inMult := ev.NextMask()
	outMult := ev.NextMask()

	one := air.Const(field.One())
	ev.AddConstraint(isLastIdx.Mul(isLastIdx.Sub(one)))
	ev.AddConstraint(isSliceLast.Mul(isSliceLast.Sub(one)))
	ev.AddConstraint(gtFlag.Mul(gtFlag.Sub(one)))

	notGt := one.Sub(gtFlag)
	ev.AddConstraint(gtFlag.Mul(inVal.Sub(acc).Sub(one).Sub(remVal)))
	ev.AddConstraint(notGt.Mul(acc.Sub(inVal).Sub(remVal)))

	delta := inVal.Sub(acc).Mul(gtFlag)
	notSliceLast := one.Sub(isSliceLast)
	ev.AddConstraint(notSliceLast.Mul(nextAcc.Sub(acc.Add(delta))))
	// See sumreduce's analogous fix: the slice-last row must fold its own
	// comparison result into out_val, or the final element of every slice
	// would never influence the reduction's output.
	ev.AddConstraint(isSliceLast.Mul(acc.Add(delta).Sub(outVal)))

	notLast := one.Sub(isLastIdx)
	ev.AddConstraint(notLast.Mul(nextNodeID.Sub(nodeID)))
	ev.AddConstraint(notLast.Mul(nextInID.Sub(inID)))
	ev.AddConstraint(notLast.Mul(nextIdx.Sub(idx.Add(one))))

	ev.AddToRelation(air.RelationEntry{Multiplicity: outMult, Values: []air.Expr{outVal, nodeID}})
	ev.AddToRelation(air.RelationEntry{Multiplicity: inMult.Neg(), Values: []air.Expr{inVal, inID}})
	ev.FinalizeLogup()
}
