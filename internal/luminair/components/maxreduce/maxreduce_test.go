package maxreduce_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luminair/luminair-core/internal/luminair/air"
	"github.com/luminair/luminair-core/internal/luminair/components/maxreduce"
	"github.com/luminair/luminair-core/internal/luminair/field"
)

// buildSlice reproduces one reduction slice maxing [3,7,2,9] -> 9.
func buildSlice() []maxreduce.Row {
	in := []int64{3, 7, 2, 9}
	rows := make([]maxreduce.Row, len(in))
	var acc int64
	for i, v := range in {
		gt := int64(0)
		if v > acc {
			gt = 1
		}
		var rem int64
		if gt == 1 {
			rem = v - acc - 1
		} else {
			rem = acc - v
		}
		delta := (v - acc) * gt
		nextAcc := acc + delta

		isLast := field.NewM31(0)
		outMult := field.NewM31(0)
		outVal := field.NewM31(0)
		if i == len(in)-1 {
			isLast = field.One()
			outMult = field.One()
			outVal = field.NewM31(uint64(nextAcc))
		}

		rows[i] = maxreduce.Row{
			NodeID: field.NewM31(10), InID: field.NewM31(9),
			Idx:         field.NewM31(uint64(i)),
			IsLastIdx:   isLast,
			Acc:         field.NewM31(uint64(acc)),
			InVal:       field.NewM31(uint64(v)),
			IsSliceLast: isLast,
			GtFlag:      field.NewM31(uint64(gt)),
			RemVal:      field.NewM31(uint64(rem)),
			NextAcc:     field.NewM31(uint64(nextAcc)),
			OutVal:      outVal,
			InMult:      field.One(),
			OutMult:     outMult,
		}
		if i+1 < len(in) {
			rows[i].NextNodeID = field.NewM31(10)
			rows[i].NextInID = field.NewM31(9)
			rows[i].NextIdx = field.NewM31(uint64(i + 1))
		}
		acc = nextAcc
	}
	return rows
}

func TestWriteTraceComputesMax(t *testing.T) {
	rows := buildSlice()
	claim, _, columns, err := maxreduce.WriteTrace(maxreduce.NewTable(rows))
	require.NoError(t, err)
	require.Equal(t, uint32(4), claim.LogSize)
	require.True(t, columns[13][3].Equal(field.NewM31(9)))
}

func TestEvaluateAcceptsValidSlice(t *testing.T) {
	rows := buildSlice()
	for _, r := range rows {
		checker := air.NewConstraintChecker("maxreduce", r.Fields())
		maxreduce.Evaluate(checker)
		require.NoError(t, checker.Err())
	}
}

func TestEvaluateRejectsBrokenGtFlag(t *testing.T) {
	rows := buildSlice()
	rows[2].GtFlag = field.One()
	checker := air.NewConstraintChecker("maxreduce", rows[2].Fields())
	maxreduce.Evaluate(checker)
	require.Error(t, checker.Err())
}

func TestWriteTraceRejectsEmptyTable(t *testing.T) {
	_, _, _, err := maxreduce.WriteTrace(maxreduce.NewTable(nil))
	require.Error(t, err)
}
