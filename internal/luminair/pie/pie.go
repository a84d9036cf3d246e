// Package pie defines the proving input container (PIE): the tagged union
// of per-operator trace tables plus execution resources the prover
// orchestrator consumes once, per §6 and original_source's pie.rs.
package pie

import (
	"github.com/luminair/luminair-core/internal/luminair/components/add"
	"github.com/luminair/luminair-core/internal/luminair/components/exp2"
	"github.com/luminair/luminair-core/internal/luminair/components/exp2lookup"
	"github.com/luminair/luminair-core/internal/luminair/components/maxreduce"
	"github.com/luminair/luminair-core/internal/luminair/components/mul"
	"github.com/luminair/luminair-core/internal/luminair/components/recip"
	"github.com/luminair/luminair-core/internal/luminair/components/sin"
	"github.com/luminair/luminair-core/internal/luminair/components/sinlookup"
	"github.com/luminair/luminair-core/internal/luminair/components/sqrt"
	"github.com/luminair/luminair-core/internal/luminair/components/sumreduce"
)

// TableTrace is the tagged union over the operator set, generalizing
// original_source's pie.rs `enum TableTrace` (there Add/Mul/SumReduce/
// Recip/MaxReduce/Sin/SinLookup; this module adds Sqrt/Exp2/Exp2Lookup to
// cover every operator §2's component table lists). isTableTrace is the
// sealing method; every concrete variant below embeds the operator's own
// Table type unchanged.
type TableTrace interface {
	isTableTrace()
}

type AddTable struct{ Table add.Table }
type MulTable struct{ Table mul.Table }
type RecipTable struct{ Table recip.Table }
type SqrtTable struct{ Table sqrt.Table }
type SinTable struct{ Table sin.Table }
type Exp2Table struct{ Table exp2.Table }
type SumReduceTable struct{ Table sumreduce.Table }
type MaxReduceTable struct{ Table maxreduce.Table }
type SinLookupTable struct{ Table sinlookup.Table }
type Exp2LookupTable struct{ Table exp2lookup.Table }

func (AddTable) isTableTrace()         {}
func (MulTable) isTableTrace()         {}
func (RecipTable) isTableTrace()       {}
func (SqrtTable) isTableTrace()        {}
func (SinTable) isTableTrace()         {}
func (Exp2Table) isTableTrace()        {}
func (SumReduceTable) isTableTrace()   {}
func (MaxReduceTable) isTableTrace()   {}
func (SinLookupTable) isTableTrace()   {}
func (Exp2LookupTable) isTableTrace()  {}

// OpCounter counts occurrences of each operator kind, mirroring pie.rs's
// `OpCounter` extended with the operators the distilled spec adds.
type OpCounter struct {
	Add        int
	Mul        int
	Recip      int
	Sqrt       int
	Sin        int
	Exp2       int
	SumReduce  int
	MaxReduce  int
}

// ExecutionResources mirrors pie.rs's struct of the same name: the op
// counter plus the largest log-size any single operator table reached.
// The prover copies MaxLogSize into the proof's DomainLogSize; it computes
// no twiddles and no blowup factor from it.
type ExecutionResources struct {
	OpCounter  OpCounter
	MaxLogSize uint32
}

// InputInfo mirrors pie.rs: whether a node input traces back to a graph
// initializer (vs. another node's output), and the id it refers to.
type InputInfo struct {
	IsInitializer bool
	ID            uint32
}

// OutputInfo mirrors pie.rs: whether a node's output is one of the graph's
// declared final outputs.
type OutputInfo struct {
	IsFinalOutput bool
}

// NodeInfo mirrors pie.rs: per-node bookkeeping the graph executor hands
// the prover so it can, e.g., decide which LogUp tokens never get consumed
// (final outputs) versus tokens that must balance against a consumer.
type NodeInfo struct {
	Inputs       []InputInfo
	Output       OutputInfo
	NumConsumers uint32
	ID           uint32
}

// LuminairPie is the proving input (PIE): an ordered list of per-operator
// trace tables plus execution resources, consumed once by the prover
// orchestrator (§6).
type LuminairPie struct {
	TableTraces        []TableTrace
	ExecutionResources ExecutionResources
	Nodes              map[uint32]NodeInfo
}
