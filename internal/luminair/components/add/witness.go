package add

import (
	"github.com/luminair/luminair-core/internal/luminair/air"
	"github.com/luminair/luminair-core/internal/luminair/field"
	"github.com/luminair/luminair-core/internal/luminair/logup"
	"github.com/luminair/luminair-core/internal/luminair/trace"
)

// Claim is add's public dimension.
type Claim = air.Claim

// InteractionGenerator captures the padded rows write_trace produced, ready
// to generate the LogUp interaction column once NodeElements have been
// drawn from the channel (§4.4 phase 2).
type InteractionGenerator struct {
	rows []Row
}

// WriteTrace implements §4.1's write_trace for add: pads to a power of two,
// builds one packed (lane-transposed) column per schema field directly in
// the canonical packed representation (§9), with packed rows filled
// concurrently per §5, then derives the scalar columns the caller commits
// from that packed form.
func WriteTrace(t Table) (Claim, InteractionGenerator, [][]field.M31, error) {
	n := len(t.Rows)
	if n == 0 {
		return Claim{}, InteractionGenerator{}, nil, air.NewEmptyTrace("add")
	}
	size, logSize := trace.PaddedSize(n)
	padded := trace.PadRows(t.Rows, size, Padding())

	packed, err := trace.BuildPackedColumns(size, NColumns, func(i int) []field.M31 {
		return padded[i].Fields()
	})
	if err != nil {
		return Claim{}, InteractionGenerator{}, nil, err
	}
	columns := trace.UnpackColumns(packed, size)

	return Claim{LogSize: logSize}, InteractionGenerator{rows: padded}, columns, nil
}

// WriteInteractionTrace builds the LogUp column: every row emits its output
// token and consumes both input tokens (§4.2's add row: emit out, consume
// lhs, consume rhs).
func (g InteractionGenerator) WriteInteractionTrace(elements air.Elements) (air.InteractionClaim, []field.QM31, error) {
	rowFractions := make([][]logup.Fraction, len(g.rows))
	for i, row := range g.rows {
		denomOut := elements.Combine([]field.M31{row.OutVal, row.NodeID})
		denomLhs := elements.Combine([]field.M31{row.LhsVal, row.LhsID})
		denomRhs := elements.Combine([]field.M31{row.RhsVal, row.RhsID})
		rowFractions[i] = []logup.Fraction{
			{Num: field.QM31FromM31(row.OutMult), Denom: denomOut},
			{Num: field.QM31FromM31(row.LhsMult).Neg(), Denom: denomLhs},
			{Num: field.QM31FromM31(row.RhsMult).Neg(), Denom: denomRhs},
		}
	}
	traceCol, claimedSum, err := logup.Trace(rowFractions)
	if err != nil {
		return air.InteractionClaim{}, nil, err
	}
	return air.InteractionClaim{ClaimedSum: claimedSum}, traceCol, nil
}
