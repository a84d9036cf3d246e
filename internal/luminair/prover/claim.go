package prover

import (
	"github.com/luminair/luminair-core/internal/luminair/air"
	"github.com/luminair/luminair-core/internal/luminair/field"
	"github.com/luminair/luminair-core/internal/luminair/pie"
)

// Claim aggregates every present operator's public log-size, mirroring
// original_source's LuminairClaim: one optional field per component,
// mixed into the channel in a single fixed order so prover and verifier
// agree on it without needing to serialize which operators are absent.
type Claim struct {
	Add        *air.Claim
	Mul        *air.Claim
	Recip      *air.Claim
	Sqrt       *air.Claim
	Sin        *air.Claim
	Exp2       *air.Claim
	SumReduce  *air.Claim
	MaxReduce  *air.Claim
	SinLookup  *air.Claim
	Exp2Lookup *air.Claim

	Resources pie.ExecutionResources
}

// MixInto absorbs every present claim into ch, in the order ordered() lists —
// the verifier re-derives the identical order from its own re-run, so the
// channel state after this call only depends on which operators are
// present and their log-sizes, never on LuminairPie.TableTraces' order.
func (c Claim) MixInto(ch air.Channel) {
	for _, cl := range c.ordered() {
		if cl != nil {
			cl.MixInto(ch)
		}
	}
}

func (c Claim) ordered() []*air.Claim {
	return []*air.Claim{
		c.Add, c.Mul, c.Recip, c.Sqrt, c.Sin, c.Exp2,
		c.SumReduce, c.MaxReduce, c.SinLookup, c.Exp2Lookup,
	}
}

// InteractionClaim aggregates every present operator's claimed LogUp sum,
// mixed in the same canonical order as Claim.
type InteractionClaim struct {
	Add        *air.InteractionClaim
	Mul        *air.InteractionClaim
	Recip      *air.InteractionClaim
	Sqrt       *air.InteractionClaim
	Sin        *air.InteractionClaim
	Exp2       *air.InteractionClaim
	SumReduce  *air.InteractionClaim
	MaxReduce  *air.InteractionClaim
	SinLookup  *air.InteractionClaim
	Exp2Lookup *air.InteractionClaim
}

func (c InteractionClaim) MixInto(ch air.Channel) {
	for _, ic := range c.ordered() {
		if ic != nil {
			ic.MixInto(ch)
		}
	}
}

func (c InteractionClaim) ordered() []*air.InteractionClaim {
	return []*air.InteractionClaim{
		c.Add, c.Mul, c.Recip, c.Sqrt, c.Sin, c.Exp2,
		c.SumReduce, c.MaxReduce, c.SinLookup, c.Exp2Lookup,
	}
}

// Sum adds together every present operator's claimed_sum — §8's global
// LogUp soundness condition requires this to equal zero in QM31 across the
// whole proof, not just within one operator's own table.
func (c InteractionClaim) Sum() field.QM31 {
	total := field.QM31Zero()
	for _, ic := range c.ordered() {
		if ic != nil {
			total = total.Add(ic.ClaimedSum)
		}
	}
	return total
}
