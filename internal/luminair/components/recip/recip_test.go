package recip_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luminair/luminair-core/internal/luminair/air"
	"github.com/luminair/luminair-core/internal/luminair/components/recip"
	"github.com/luminair/luminair-core/internal/luminair/field"
)

// row builds a recip row satisfying in_val*out_val+rem_val = 2^scale at the
// default scale of 12, matching §8 scenario S5 (in=4 -> out=1024, no
// remainder).
func row(in, out, rem uint64, isLast field.M31) recip.Row {
	return recip.Row{
		NodeID: field.NewM31(3), InID: field.NewM31(2),
		IsLastIdx: isLast,
		InVal:     field.NewM31(in), OutVal: field.NewM31(out), RemVal: field.NewM31(rem),
		Scale:   field.NewM31(12),
		InMult:  field.One(), OutMult: field.One(),
	}
}

func TestWriteTraceComputesReciprocal(t *testing.T) {
	rows := []recip.Row{row(4, 1024, 0, field.One())}
	claim, _, columns, err := recip.WriteTrace(recip.NewTable(rows))
	require.NoError(t, err)
	require.Equal(t, uint32(4), claim.LogSize)
	require.True(t, columns[8][0].Equal(field.NewM31(1024)))
}

func TestEvaluateAcceptsValidReciprocal(t *testing.T) {
	r := row(4, 1024, 0, field.One())
	checker := air.NewConstraintChecker("recip", r.Fields())
	recip.Evaluate(checker)
	require.NoError(t, checker.Err())
}

func TestEvaluateRejectsBrokenReciprocal(t *testing.T) {
	r := row(4, 1024, 0, field.One())
	r.RemVal = field.NewM31(1)
	checker := air.NewConstraintChecker("recip", r.Fields())
	recip.Evaluate(checker)
	require.Error(t, checker.Err())
}

func TestWriteTraceRejectsEmptyTable(t *testing.T) {
	_, _, _, err := recip.WriteTrace(recip.NewTable(nil))
	require.Error(t, err)
}
