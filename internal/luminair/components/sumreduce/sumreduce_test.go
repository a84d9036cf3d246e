package sumreduce_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luminair/luminair-core/internal/luminair/air"
	"github.com/luminair/luminair-core/internal/luminair/components/sumreduce"
	"github.com/luminair/luminair-core/internal/luminair/field"
)

// buildSlice reproduces one reduction slice summing [1,2,3,4] -> 10, in the
// spirit of §8 scenario S2's axis-reduction shape.
func buildSlice() []sumreduce.Row {
	in := []uint64{1, 2, 3, 4}
	rows := make([]sumreduce.Row, len(in))
	var acc uint64
	for i, v := range in {
		isLast := field.NewM31(0)
		outMult := field.NewM31(0)
		outVal := field.NewM31(0)
		if i == len(in)-1 {
			isLast = field.One()
			outMult = field.One()
			outVal = field.NewM31(acc + v)
		}
		rows[i] = sumreduce.Row{
			NodeID: field.NewM31(9), InID: field.NewM31(8),
			Idx:         field.NewM31(uint64(i)),
			IsLastIdx:   isLast,
			Acc:         field.NewM31(acc),
			InVal:       field.NewM31(v),
			IsSliceLast: isLast,
			NextAcc:     field.NewM31(acc + v),
			OutVal:      outVal,
			InMult:      field.One(),
			OutMult:     outMult,
		}
		if i+1 < len(in) {
			rows[i].NextNodeID = field.NewM31(9)
			rows[i].NextInID = field.NewM31(8)
			rows[i].NextIdx = field.NewM31(uint64(i + 1))
		}
		acc += v
	}
	return rows
}

func TestWriteTraceSumsSlice(t *testing.T) {
	rows := buildSlice()
	claim, _, columns, err := sumreduce.WriteTrace(sumreduce.NewTable(rows))
	require.NoError(t, err)
	require.Equal(t, uint32(4), claim.LogSize)
	require.True(t, columns[11][3].Equal(field.NewM31(10)))
}

func TestEvaluateAcceptsValidSlice(t *testing.T) {
	rows := buildSlice()
	for _, r := range rows {
		checker := air.NewConstraintChecker("sumreduce", r.Fields())
		sumreduce.Evaluate(checker)
		require.NoError(t, checker.Err())
	}
}

func TestEvaluateRejectsBrokenAccumulator(t *testing.T) {
	rows := buildSlice()
	rows[len(rows)-1].OutVal = field.NewM31(999)
	checker := air.NewConstraintChecker("sumreduce", rows[len(rows)-1].Fields())
	sumreduce.Evaluate(checker)
	require.Error(t, checker.Err())
}

func TestWriteTraceRejectsEmptyTable(t *testing.T) {
	_, _, _, err := sumreduce.WriteTrace(sumreduce.NewTable(nil))
	require.Error(t, err)
}
