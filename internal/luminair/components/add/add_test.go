package add_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luminair/luminair-core/internal/luminair/air"
	"github.com/luminair/luminair-core/internal/luminair/components/add"
	"github.com/luminair/luminair-core/internal/luminair/field"
)

// buildRows reproduces spec scenario S1: lhs=[1,2,3,4], rhs=[10,20,30,40],
// with input nodes 0 (lhs) and 1 (rhs) feeding the add node (id 2) per index.
func buildRows(lhs, rhs []uint64) []add.Row {
	rows := make([]add.Row, len(lhs))
	for i := range lhs {
		isLast := field.Zero()
		if i == len(lhs)-1 {
			isLast = field.One()
		}
		nextIdx := field.NewM31(uint64(i))
		if i+1 < len(lhs) {
			nextIdx = field.NewM31(uint64(i + 1))
		}
		rows[i] = add.Row{
			NodeID: field.NewM31(2), LhsID: field.NewM31(0), RhsID: field.NewM31(1),
			Idx: field.NewM31(uint64(i)), IsLastIdx: isLast,
			NextNodeID: field.NewM31(2), NextLhsID: field.NewM31(0), NextRhsID: field.NewM31(1),
			NextIdx: nextIdx,
			LhsVal:  field.NewM31(lhs[i]),
			RhsVal:  field.NewM31(rhs[i]),
			OutVal:  field.NewM31(lhs[i] + rhs[i]),
			LhsMult: field.One(), RhsMult: field.One(), OutMult: field.One(),
		}
	}
	return rows
}

func TestWriteTraceProducesExpectedOutputsS1(t *testing.T) {
	rows := buildRows([]uint64{1, 2, 3, 4}, []uint64{10, 20, 30, 40})
	claim, _, columns, err := add.WriteTrace(add.NewTable(rows))
	require.NoError(t, err)
	require.Equal(t, uint32(4), claim.LogSize) // padded to N_LANES=16

	outCol := columns[11] // OutVal column index per Row.Fields order
	want := []uint64{11, 22, 33, 44}
	for i, w := range want {
		require.True(t, outCol[i].Equal(field.NewM31(w)))
	}
}

func TestWriteTraceRejectsEmptyTable(t *testing.T) {
	_, _, _, err := add.WriteTrace(add.NewTable(nil))
	require.Error(t, err)
}

func TestEvaluateAcceptsValidRow(t *testing.T) {
	rows := buildRows([]uint64{1}, []uint64{10})
	row := rows[0]
	row.IsLastIdx = field.One()
	checker := air.NewConstraintChecker("add", row.Fields())
	add.Evaluate(checker)
	require.NoError(t, checker.Err())
}

func TestEvaluateRejectsBrokenArithmetic(t *testing.T) {
	rows := buildRows([]uint64{1}, []uint64{10})
	row := rows[0]
	row.IsLastIdx = field.One()
	row.OutVal = field.NewM31(999)
	checker := air.NewConstraintChecker("add", row.Fields())
	add.Evaluate(checker)
	require.Error(t, checker.Err())
}

func TestInteractionTraceBuildsWithoutConsumer(t *testing.T) {
	rows := buildRows([]uint64{1, 2}, []uint64{10, 20})
	_, gen, _, err := add.WriteTrace(add.NewTable(rows))
	require.NoError(t, err)

	elements := air.Elements{
		Coeffs: []field.QM31{field.QM31FromM31(field.NewM31(7)), field.QM31FromM31(field.NewM31(11))},
		Beta:   field.QM31FromM31(field.NewM31(13)),
	}
	_, _, err = gen.WriteInteractionTrace(elements)
	require.NoError(t, err)
	// Padding rows have zero multiplicities so contribute nothing to the
	// sum; the two real rows' out-emit is unmatched by any consumer in
	// this isolated test (no recip/mul present), so this test only checks
	// that the interaction trace is built; global LogUp balance is checked
	// by verifier.Verify over a whole proof.
}
