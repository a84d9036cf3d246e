package mul_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luminair/luminair-core/internal/luminair/air"
	"github.com/luminair/luminair-core/internal/luminair/components/mul"
	"github.com/luminair/luminair-core/internal/luminair/field"
)

func row(lhs, rhs uint64, isLast field.M31) mul.Row {
	return mul.Row{
		NodeID: field.NewM31(2), LhsID: field.NewM31(0), RhsID: field.NewM31(1),
		IsLastIdx: isLast,
		LhsVal:    field.NewM31(lhs), RhsVal: field.NewM31(rhs), OutVal: field.NewM31(lhs * rhs),
		LhsMult: field.One(), RhsMult: field.One(), OutMult: field.One(),
	}
}

func TestWriteTraceComputesProduct(t *testing.T) {
	rows := []mul.Row{row(2, 2, field.One())}
	claim, _, columns, err := mul.WriteTrace(mul.NewTable(rows))
	require.NoError(t, err)
	require.Equal(t, uint32(4), claim.LogSize)
	require.True(t, columns[11][0].Equal(field.NewM31(4)))
}

func TestEvaluateRejectsBrokenProduct(t *testing.T) {
	r := row(2, 2, field.One())
	r.OutVal = field.NewM31(5)
	checker := air.NewConstraintChecker("mul", r.Fields())
	mul.Evaluate(checker)
	require.Error(t, checker.Err())
}

func TestWriteTraceRejectsEmptyTable(t *testing.T) {
	_, _, _, err := mul.WriteTrace(mul.NewTable(nil))
	require.Error(t, err)
}
