package sqrt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luminair/luminair-core/internal/luminair/air"
	"github.com/luminair/luminair-core/internal/luminair/components/sqrt"
	"github.com/luminair/luminair-core/internal/luminair/field"
)

// row builds a sqrt row satisfying out_val^2+rem_val = in_val*2^scale at the
// default scale of 12: in=4, 2^12*4=16384=128^2, so out=128, rem=0.
func row(in, out, rem uint64, isLast field.M31) sqrt.Row {
	return sqrt.Row{
		NodeID: field.NewM31(3), InID: field.NewM31(2),
		IsLastIdx: isLast,
		InVal:     field.NewM31(in), OutVal: field.NewM31(out), RemVal: field.NewM31(rem),
		Scale:   field.NewM31(12),
		InMult:  field.One(), OutMult: field.One(),
	}
}

func TestWriteTraceComputesSquareRoot(t *testing.T) {
	rows := []sqrt.Row{row(4, 128, 0, field.One())}
	claim, _, columns, err := sqrt.WriteTrace(sqrt.NewTable(rows))
	require.NoError(t, err)
	require.Equal(t, uint32(4), claim.LogSize)
	require.True(t, columns[8][0].Equal(field.NewM31(128)))
}

func TestEvaluateAcceptsValidSquareRoot(t *testing.T) {
	r := row(4, 128, 0, field.One())
	checker := air.NewConstraintChecker("sqrt", r.Fields())
	sqrt.Evaluate(checker)
	require.NoError(t, checker.Err())
}

func TestEvaluateRejectsBrokenSquareRoot(t *testing.T) {
	r := row(4, 128, 0, field.One())
	r.OutVal = field.NewM31(129)
	checker := air.NewConstraintChecker("sqrt", r.Fields())
	sqrt.Evaluate(checker)
	require.Error(t, checker.Err())
}

func TestWriteTraceRejectsEmptyTable(t *testing.T) {
	_, _, _, err := sqrt.WriteTrace(sqrt.NewTable(nil))
	require.Error(t, err)
}
