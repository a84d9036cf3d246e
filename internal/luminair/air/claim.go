package air

import "github.com/luminair/luminair-core/internal/luminair/field"

// Channel is the Fiat-Shamir contract every claim/interaction-claim mixes
// into, and every interaction-element draw comes from. Declared here
// (rather than imported from the stark package) so air stays the
// dependency leaf every component package builds on; internal/luminair/stark
// provides the concrete implementation.
type Channel interface {
	MixBytes(b []byte)
	MixFelts(values []field.M31)
	DrawQM31() field.QM31
}

// Claim is the public dimension of one operator's committed trace segment:
// its log-size, mixed into the channel so the trace's shape is bound into
// the transcript (§3, §4.4 step 3).
type Claim struct {
	LogSize uint32
}

// MixInto absorbs the claim into ch.
func (c Claim) MixInto(ch Channel) {
	ch.MixFelts([]field.M31{field.NewM31(uint64(c.LogSize))})
}

// InteractionClaim is the public claimed_sum of one operator's LogUp
// column (§3). The system-wide soundness condition is that every present
// operator's claimed_sum, summed together, is zero in QM31.
type InteractionClaim struct {
	ClaimedSum field.QM31
}

// MixInto absorbs the four M31 limbs of the claimed sum into ch.
func (ic InteractionClaim) MixInto(ch Channel) {
	ch.MixFelts([]field.M31{
		ic.ClaimedSum.C0.A, ic.ClaimedSum.C0.B,
		ic.ClaimedSum.C1.A, ic.ClaimedSum.C1.B,
	})
}
