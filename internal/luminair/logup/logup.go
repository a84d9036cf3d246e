// Package logup builds LogUp interaction-trace columns: the log-derivative
// lookup argument (C5) that ties each operator's producer/consumer tokens,
// and each lookup witness's LUT multiplicities, into one telescoping sum.
package logup

import (
	"runtime"

	"github.com/luminair/luminair-core/internal/luminair/field"
)

// Fraction is one num/denom term contributed to a row's LogUp column
// value, matching the "write the LogUp fraction num/denom" contract §4.2.y
// and §4.2's interaction-constraint wording describe: a positive
// multiplicity emits a token, a negative one consumes it, and each term's
// denominator is a random linear combination of the token's fields.
type Fraction struct {
	Num   field.QM31
	Denom field.QM31
}

// Trace computes the per-row LogUp column value — the sum, for every row,
// of that row's fractions' num/denom — using one batched inversion across
// every denominator (internal/luminair/field's Montgomery trick) instead of
// inverting per term, matching the log-derivative construction in
// vm/cross_table_arguments.go's ComputeLogDerivative but generalized from a
// single running sum to one value per row, which an interaction trace
// column requires. claimedSum is the total across every row — the
// InteractionClaim's public value, which §8's LogUp-balance invariant
// requires to sum to zero across every present operator.
func Trace(rowFractions [][]Fraction) ([]field.QM31, field.QM31, error) {
	var denoms []field.QM31
	offsets := make([]int, len(rowFractions)+1)
	for i, fracs := range rowFractions {
		offsets[i] = len(denoms)
		for _, f := range fracs {
			denoms = append(denoms, f.Denom)
		}
	}
	offsets[len(rowFractions)] = len(denoms)

	inv, err := field.ParallelBatchInverseQM31(denoms, runtime.GOMAXPROCS(0))
	if err != nil {
		return nil, field.QM31Zero(), err
	}

	trace := make([]field.QM31, len(rowFractions))
	claimedSum := field.QM31Zero()
	for i, fracs := range rowFractions {
		sum := field.QM31Zero()
		base := offsets[i]
		for j, f := range fracs {
			sum = sum.Add(f.Num.Mul(inv[base+j]))
		}
		trace[i] = sum
		claimedSum = claimedSum.Add(sum)
	}
	return trace, claimedSum, nil
}
