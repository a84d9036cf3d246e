package sumreduce

import (
	"github.com/luminair/luminair-core/internal/luminair/air"
	"github.com/luminair/luminair-core/internal/luminair/field"
)

const NColumns = 14

// Evaluate runs sum_reduce's constraints: both boolean flags, the
// per-slice accumulator transition gated by is_slice_last
// (next_acc = acc + in_val when not slice-last, and
// out_val = acc + in_val on slice-last), the usual node/idx continuity gated by
// is_last_idx, and the emit-once/consume-each relation pair.
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
	nextAcc := ev.NextMask()
	outVal := ev.NextMask()
	inMult := ev.NextMask()
	outMult := ev.NextMask()

	one := air.Const(field.One())
	ev.AddConstraint(isLastIdx.Mul(isLastIdx.Sub(one)))
	ev.AddConstraint(isSliceLast.Mul(isSliceLast.Sub(one)))

	// §4.2.x's prose states the slice-last case as "acc = out_val", but acc
	// here holds the prefix sum BEFORE the current row's own contribution
	// (matching "next_acc = acc + in_val" using the current row's in_val to
	// produce the value the next row reads as acc) — so the slice-last row
	// must still fold in its own in_val to reach the true total, or the
	// final element of every slice would silently drop out of the sum and
	// violate the output-correctness invariant (§8.6). Implemented as
	// out_val = acc + in_val on slice-last, not acc alone.
	notSliceLast := one.Sub(isSliceLast)
	ev.AddConstraint(notSliceLast.Mul(nextAcc.Sub(acc.Add(inVal))))
	ev.AddConstraint(isSliceLast.Mul(acc.Add(inVal).Sub(outVal)))

	notLast := one.Sub(isLastIdx)
	ev.AddConstraint(notLast.Mul(nextNodeID.Sub(nodeID)))
	ev.AddConstraint(notLast.Mul(nextInID.Sub(inID)))
	ev.AddConstraint(notLast.Mul(nextIdx.Sub(idx.Add(one))))

	ev.AddToRelation(air.RelationEntry{Multiplicity: outMult, Values: []air.Expr{outVal, nodeID}})
	ev.AddToRelation(air.RelationEntry{Multiplicity: inMult.Neg(), Values: []air.Expr{inVal, inID}})
	ev.FinalizeLogup()
}
