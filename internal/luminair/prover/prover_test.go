package prover_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/luminair/luminair-core/internal/luminair/components/add"
	"github.com/luminair/luminair-core/internal/luminair/components/sin"
	"github.com/luminair/luminair-core/internal/luminair/components/sinlookup"
	"github.com/luminair/luminair-core/internal/luminair/field"
	"github.com/luminair/luminair-core/internal/luminair/pie"
	"github.com/luminair/luminair-core/internal/luminair/preprocessed"
	"github.com/luminair/luminair-core/internal/luminair/prover"
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

func TestProveSingleAddTableNoLUTsOpensEveryRow(t *testing.T) {
	table := add.NewTable(addRows([]uint64{1, 2, 3, 4}, []uint64{10, 20, 30, 40}))
	p := pie.LuminairPie{
		TableTraces: []pie.TableTrace{pie.AddTable{Table: table}},
		ExecutionResources: pie.ExecutionResources{
			OpCounter:  pie.OpCounter{Add: 1},
			MaxLogSize: 4,
		},
	}

	proof, err := prover.Prove(p, pie.CircuitSettings{}, zerolog.Nop())
	require.NoError(t, err)
	require.NotNil(t, proof.Claim.Add)
	require.Equal(t, uint32(4), proof.Claim.Add.LogSize)
	require.NotNil(t, proof.InteractionClaim.Add)
	// A lone add table's node-dataflow tokens have no producer/consumer
	// counterpart in this fixture (that pairing lives in a full computation
	// graph) — InteractionClaim.Sum()'s zero-check is exercised at the
	// verifier level (C7), not here.
	require.NotZero(t, proof.StarkProof.MainRoot)
	require.Empty(t, proof.StarkProof.PreprocessedOpenings)
	require.Len(t, proof.StarkProof.MainOpenings, 16)
	require.Equal(t, 0, proof.StarkProof.MainOpenings[0].Group)
}

func TestProveSinWithLUTCommitsBothComponents(t *testing.T) {
	const lutLogSize = 4
	lutPair := preprocessed.SinColumns(lutLogSize)
	const accessedIdx = 3
	inVal := lutPair[0].Values[accessedIdx]
	outVal := lutPair[1].Values[accessedIdx]

	sinRow := sin.Row{
		NodeID: field.NewM31(2), InID: field.NewM31(0),
		Idx: field.Zero(), IsLastIdx: field.One(),
		NextNodeID: field.NewM31(2), NextInID: field.NewM31(0), NextIdx: field.Zero(),
		InVal: inVal, OutVal: outVal, RemVal: field.Zero(), Scale: field.NewM31(12),
		InMult: field.One(), OutMult: field.One(),
	}
	sinTable := sin.NewTable([]sin.Row{sinRow})

	// sin's padding rows (size 16, one real row) each emit their own
	// LUT-access token for (in_val=0, out_val=0) unconditionally (see
	// sin/witness.go) — which happens to be LUT entry 0 (sin(0)=0), a real
	// entry, not an out-of-range one. sinlookup's multiplicity trace must
	// account for those 15 padding-row accesses at index 0 in addition to
	// the one real access at accessedIdx, or the two components' LogUp
	// sides won't balance.
	const paddedSinRows = 1 << lutLogSize
	lookupRows := make([]sinlookup.Row, 1<<lutLogSize)
	lookupRows[0] = sinlookup.Row{Multiplicity: field.NewM31(uint64(paddedSinRows - 1))}
	lookupRows[accessedIdx] = sinlookup.Row{Multiplicity: field.One()}
	lookupTable := sinlookup.NewTable(lookupRows)

	p := pie.LuminairPie{
		TableTraces: []pie.TableTrace{
			pie.SinTable{Table: sinTable},
			pie.SinLookupTable{Table: lookupTable},
		},
		ExecutionResources: pie.ExecutionResources{
			OpCounter:  pie.OpCounter{Sin: 1},
			MaxLogSize: lutLogSize,
		},
	}
	settings := pie.CircuitSettings{
		LUTs: []pie.LUTSetting{{Function: preprocessed.FunctionSin, LogSize: lutLogSize}},
	}

	proof, err := prover.Prove(p, settings, zerolog.Nop())
	require.NoError(t, err)
	require.NotNil(t, proof.Claim.Sin)
	require.NotNil(t, proof.Claim.SinLookup)
	// The LUT-access side of the relation is self-contained (sin emits the
	// (in,out) token, sinlookup consumes it) and balances on its own even
	// though this fixture has no producer/consumer for sin's node-dataflow
	// tokens — checking the full cross-operator sum is the verifier's job
	// (C7) once a complete computation graph is present.
	require.NotZero(t, proof.StarkProof.PreprocessedRoot)
	require.NotEmpty(t, proof.StarkProof.PreprocessedOpenings)
}

func TestProveRejectsEmptyTable(t *testing.T) {
	p := pie.LuminairPie{
		TableTraces: []pie.TableTrace{pie.AddTable{Table: add.NewTable(nil)}},
	}
	_, err := prover.Prove(p, pie.CircuitSettings{}, zerolog.Nop())
	require.Error(t, err)
}
