// Command luminair-demo builds a small traced computation by hand, proves
// it, verifies the proof, and prints a summary to stdout — a runnable
// stand-in for the JSON-over-stdin driver a real dataflow-graph tracer
// would produce a Pie from (see cmd/vybium-vm-prover in the teacher repo
// for that shape, now replaced: this module's Pie is built directly by
// its only caller rather than deserialized from an external VM trace).
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/luminair/luminair-core/internal/luminair/components/add"
	"github.com/luminair/luminair-core/internal/luminair/components/sin"
	"github.com/luminair/luminair-core/internal/luminair/components/sinlookup"
	"github.com/luminair/luminair-core/internal/luminair/field"
	"github.com/luminair/luminair-core/internal/luminair/pie"
	"github.com/luminair/luminair-core/internal/luminair/preprocessed"
	"github.com/luminair/luminair-core/pkg/luminair"
)

type summary struct {
	Scenario         string `json:"scenario"`
	PreprocessedRoot string `json:"preprocessed_root"`
	MainRoot         string `json:"main_root"`
	InteractionRoot  string `json:"interaction_root"`
	MainQueries      int    `json:"main_queries"`
	Verified         bool   `json:"verified"`
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	results := []summary{
		runAddOnly(log),
		runSinViaLUT(log),
	}

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(out))
}

// runAddOnly proves a lone elementwise add over two length-4 tensors
// (scenario S1): out[i] = lhs[i] + rhs[i], no lookup tables required.
func runAddOnly(log zerolog.Logger) summary {
	log.Info().Msg("building add-only trace")
	rows := addRows([]uint64{1, 2, 3, 4}, []uint64{10, 20, 30, 40})
	p := luminair.Pie{
		TableTraces: []luminair.TableTrace{pie.AddTable{Table: add.NewTable(rows)}},
		ExecutionResources: luminair.ExecutionResources{
			OpCounter:  luminair.OpCounter{Add: 1},
			MaxLogSize: 4,
		},
	}

	proof, err := luminair.Prove(p, luminair.CircuitSettings{}, log)
	if err != nil {
		fatal(err)
	}
	if err := luminair.Verify(proof, luminair.CircuitSettings{}); err != nil {
		fatal(err)
	}

	return summary{
		Scenario:         "add-only",
		PreprocessedRoot: hexRoot(proof.StarkProof.PreprocessedRoot),
		MainRoot:         hexRoot(proof.StarkProof.MainRoot),
		InteractionRoot:  hexRoot(proof.StarkProof.InteractionRoot),
		MainQueries:      len(proof.StarkProof.MainOpenings),
		Verified:         true,
	}
}

// runSinViaLUT proves a single sin evaluation routed through the shared
// preprocessed sin lookup table (scenario S3): sin's table emits the
// access token, sinlookup's multiplicity table balances it.
func runSinViaLUT(log zerolog.Logger) summary {
	log.Info().Msg("building sin-via-LUT trace")
	const lutLogSize = 4
	lutPair := preprocessed.SinColumns(lutLogSize)
	const accessedIdx = 5

	sinRow := sin.Row{
		NodeID: field.NewM31(2), InID: field.NewM31(0),
		Idx: field.Zero(), IsLastIdx: field.One(),
		NextNodeID: field.NewM31(2), NextInID: field.NewM31(0), NextIdx: field.Zero(),
		InVal: lutPair[0].Values[accessedIdx], OutVal: lutPair[1].Values[accessedIdx],
		RemVal: field.Zero(), Scale: field.NewM31(12),
		InMult: field.One(), OutMult: field.One(),
	}
	const paddedRows = 1 << lutLogSize
	lookupRows := make([]sinlookup.Row, paddedRows)
	lookupRows[0] = sinlookup.Row{Multiplicity: field.NewM31(uint64(paddedRows - 1))}
	lookupRows[accessedIdx] = sinlookup.Row{Multiplicity: field.One()}

	p := luminair.Pie{
		TableTraces: []luminair.TableTrace{
			pie.SinTable{Table: sin.NewTable([]sin.Row{sinRow})},
			pie.SinLookupTable{Table: sinlookup.NewTable(lookupRows)},
		},
		ExecutionResources: luminair.ExecutionResources{
			OpCounter:  luminair.OpCounter{Sin: 1},
			MaxLogSize: lutLogSize,
		},
	}
	settings := luminair.CircuitSettings{
		LUTs: []luminair.LUTSetting{{Function: luminair.FunctionSin, LogSize: lutLogSize}},
	}

	proof, err := luminair.Prove(p, settings, log)
	if err != nil {
		fatal(err)
	}
	if err := luminair.Verify(proof, settings); err != nil {
		fatal(err)
	}

	return summary{
		Scenario:         "sin-via-lut",
		PreprocessedRoot: hexRoot(proof.StarkProof.PreprocessedRoot),
		MainRoot:         hexRoot(proof.StarkProof.MainRoot),
		InteractionRoot:  hexRoot(proof.StarkProof.InteractionRoot),
		MainQueries:      len(proof.StarkProof.MainOpenings),
		Verified:         true,
	}
}

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

func hexRoot(r [32]byte) string {
	return fmt.Sprintf("%x", r)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "luminair-demo: error:", err)
	os.Exit(1)
}
