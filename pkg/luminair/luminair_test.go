package luminair_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/luminair/luminair-core/internal/luminair/components/add"
	"github.com/luminair/luminair-core/internal/luminair/field"
	"github.com/luminair/luminair-core/internal/luminair/pie"
	"github.com/luminair/luminair-core/pkg/luminair"
)

func addRows(lhs, rhs []uint64) []add.Row {
	rows := make([]add.Row, len(lhs))
	for i := range lhs {
		isLast := field.Zero()
		nextIdx := field.NewM31(uint64(i))
		if i+1 < len(lhs) {
			nextIdx = field.NewM31(uint64(i + 1))
		} else {
			isLast = field.One()
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

// End-to-end round trip through the public surface only: build a Pie,
// Prove it, Verify it.
func TestProveThenVerifyRoundTrip(t *testing.T) {
	table := add.NewTable(addRows([]uint64{5, 7, 9, 11}, []uint64{1, 2, 3, 4}))
	p := luminair.Pie{
		TableTraces: []luminair.TableTrace{pie.AddTable{Table: table}},
		ExecutionResources: luminair.ExecutionResources{
			OpCounter:  luminair.OpCounter{Add: 1},
			MaxLogSize: 4,
		},
	}
	settings := luminair.CircuitSettings{}

	proof, err := luminair.Prove(p, settings, zerolog.Nop())
	require.NoError(t, err)
	require.NotNil(t, proof)

	require.NoError(t, luminair.Verify(proof, settings))
}

func TestVerifyRejectsAProofForDifferentSettings(t *testing.T) {
	table := add.NewTable(addRows([]uint64{1}, []uint64{2}))
	p := luminair.Pie{
		TableTraces: []luminair.TableTrace{pie.AddTable{Table: table}},
		ExecutionResources: luminair.ExecutionResources{
			OpCounter:  luminair.OpCounter{Add: 1},
			MaxLogSize: 1,
		},
	}
	proof, err := luminair.Prove(p, luminair.CircuitSettings{}, zerolog.Nop())
	require.NoError(t, err)

	proof.StarkProof.MainRoot[0] ^= 0xFF
	require.Error(t, luminair.Verify(proof, luminair.CircuitSettings{}))
}
