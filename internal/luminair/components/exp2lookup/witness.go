package exp2lookup

import (
	"github.com/luminair/luminair-core/internal/luminair/air"
	"github.com/luminair/luminair-core/internal/luminair/field"
	"github.com/luminair/luminair-core/internal/luminair/logup"
	"github.com/luminair/luminair-core/internal/luminair/trace"
)

const NColumns = 1

type Claim = air.Claim

type InteractionGenerator struct {
	multiplicities []field.M31
}

// WriteTrace builds the multiplicity column via the shared packed-column
// path (§9): original_source's write_trace_simd does nothing but assign
// `input.multiplicity` into the single trace column, which here is the
// column BuildPackedColumns/UnpackColumns round-trips through the
// canonical packed representation rather than a bare copy.
func WriteTrace(t Table) (Claim, InteractionGenerator, [][]field.M31, error) {
	n := len(t.Rows)
	if n == 0 {
		return Claim{}, InteractionGenerator{}, nil, air.NewEmptyTrace("exp2lookup")
	}
	size, logSize := trace.PaddedSize(n)
	padded := trace.PadRows(t.Rows, size, Padding())

	packed, err := trace.BuildPackedColumns(size, NColumns, func(i int) []field.M31 {
		return padded[i].Fields()
	})
	if err != nil {
		return Claim{}, InteractionGenerator{}, nil, err
	}
	mult := trace.UnpackColumns(packed, size)[0]

	multiplicities := make([]field.M31, size)
	copy(multiplicities, mult)

	return Claim{LogSize: logSize}, InteractionGenerator{multiplicities: multiplicities}, [][]field.M31{mult}, nil
}

// WriteInteractionTrace reads the preprocessed exp2 LUT's (input, output)
// columns directly (shared read-only, per §9's LUT-sharing note) and writes
// one LogUp fraction per row: num = -multiplicity(row),
// denom = combine(elements, [lut_input(row), lut_output(row)]) — matching
// original_source's write_interaction_trace exactly, modulo the module's
// sign convention already established elsewhere.
func (g InteractionGenerator) WriteInteractionTrace(elements air.Elements, lutInput, lutOutput []field.M31) (air.InteractionClaim, []field.QM31, error) {
	if len(lutInput) != len(g.multiplicities) || len(lutOutput) != len(g.multiplicities) {
		return air.InteractionClaim{}, nil, air.NewConstraintFailure("exp2lookup", "LUT column length mismatch with multiplicity trace")
	}
	rowFractions := make([][]logup.Fraction, len(g.multiplicities))
	for i, m := range g.multiplicities {
		denom := elements.Combine([]field.M31{lutInput[i], lutOutput[i]})
		rowFractions[i] = []logup.Fraction{
			{Num: field.QM31FromM31(m).Neg(), Denom: denom},
		}
	}
	traceCol, claimedSum, err := logup.Trace(rowFractions)
	if err != nil {
		return air.InteractionClaim{}, nil, err
	}
	return air.InteractionClaim{ClaimedSum: claimedSum}, traceCol, nil
}
