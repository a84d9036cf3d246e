package mul

import (
	"github.com/luminair/luminair-core/internal/luminair/air"
	"github.com/luminair/luminair-core/internal/luminair/field"
	"github.com/luminair/luminair-core/internal/luminair/logup"
	"github.com/luminair/luminair-core/internal/luminair/trace"
)

type Claim = air.Claim

type InteractionGenerator struct {
	rows []Row
}

func WriteTrace(t Table) (Claim, InteractionGenerator, [][]field.M31, error) {
	n := len(t.Rows)
	if n == 0 {
		return Claim{}, InteractionGenerator{}, nil, air.NewEmptyTrace("mul")
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
