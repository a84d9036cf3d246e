package sin_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luminair/luminair-core/internal/luminair/air"
	"github.com/luminair/luminair-core/internal/luminair/components/sin"
	"github.com/luminair/luminair-core/internal/luminair/field"
)

// row builds a sin row. The out_val 4096 used below is §8 scenario S3's
// second key point, sin(pi/2) -> 1*2^12; the paired in_val is a small
// stand-in, since Evaluate does not relate in_val to out_val.
func row(in, out uint64, isLast field.M31) sin.Row {
	return sin.Row{
		NodeID: field.NewM31(5), InID: field.NewM31(4),
		IsLastIdx: isLast,
		InVal:     field.NewM31(in), OutVal: field.NewM31(out),
		Scale:   field.NewM31(12),
		InMult:  field.One(), OutMult: field.One(),
	}
}

func TestWriteTraceCopiesOutput(t *testing.T) {
	rows := []sin.Row{row(0, 0, field.One())}
	claim, _, columns, err := sin.WriteTrace(sin.NewTable(rows))
	require.NoError(t, err)
	require.Equal(t, uint32(4), claim.LogSize)
	require.True(t, columns[8][0].Equal(field.NewM31(0)))
}

func TestEvaluateAcceptsAnyValuePair(t *testing.T) {
	// No arithmetic identity constrains in_val/out_val directly; any pair
	// must pass the boolean/transition/placeholder checks.
	r := row(1, 4096, field.One())
	checker := air.NewConstraintChecker("sin", r.Fields())
	sin.Evaluate(checker)
	require.NoError(t, checker.Err())
}

func TestEvaluateRejectsNonBooleanIsLastIdx(t *testing.T) {
	r := row(1, 4096, field.NewM31(2))
	checker := air.NewConstraintChecker("sin", r.Fields())
	sin.Evaluate(checker)
	require.Error(t, checker.Err())
}

func TestWriteTraceRejectsEmptyTable(t *testing.T) {
	_, _, _, err := sin.WriteTrace(sin.NewTable(nil))
	require.Error(t, err)
}
