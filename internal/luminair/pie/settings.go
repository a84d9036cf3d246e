package pie

import (
	"github.com/luminair/luminair-core/internal/luminair/field"
	"github.com/luminair/luminair-core/internal/luminair/preprocessed"
)

// LUTSetting declares one preprocessed LUT a proof run requires, by
// function and its log-size (K in §4.3's "2^K" sizing). Domain is only
// meaningful for Exp2 (§9's open question on the exp2 LUT domain, resolved
// by making it a settings parameter); Sin ignores it.
type LUTSetting struct {
	Function preprocessed.Function
	LogSize  uint32
	Domain   preprocessed.Exp2Domain
}

// CircuitSettings is the set of LUTs a proof run requires, drawn from
// {Sin, Exp2} per §6. Prover and verifier must construct byte-identical
// settings — it is never part of the proof itself, only an input both
// sides already agree on out of band.
type CircuitSettings struct {
	LUTs []LUTSetting
}

// Has reports whether settings declares a LUT for fn, returning its
// log-size.
func (s CircuitSettings) Has(fn preprocessed.Function) (uint32, bool) {
	for _, lut := range s.LUTs {
		if lut.Function == fn {
			return lut.LogSize, true
		}
	}
	return 0, false
}

// BuildColumns deterministically derives every declared LUT's two value
// columns in canonical order (§4.3), the single source of truth the prover
// and verifier orchestrators both call so their preprocessed commitments
// are byte-identical.
func (s CircuitSettings) BuildColumns() []preprocessed.Column {
	var cols []preprocessed.Column
	for _, lut := range s.LUTs {
		switch lut.Function {
		case preprocessed.FunctionSin:
			pair := preprocessed.SinColumns(lut.LogSize)
			cols = append(cols, pair[0], pair[1])
		case preprocessed.FunctionExp2:
			domain := lut.Domain
			if domain == (preprocessed.Exp2Domain{}) {
				domain = preprocessed.DefaultExp2Domain(lut.LogSize)
			}
			pair := preprocessed.Exp2Columns(lut.LogSize, domain)
			cols = append(cols, pair[0], pair[1])
		}
	}
	return preprocessed.ByCanonicalOrder(cols)
}

// GroupedColumns splits BuildColumns' flat canonically-ordered list back
// into one two-column (input, output) group per declared LUT, the shape
// stark.CommitMulti needs, alongside the function draw order and a direct
// function-to-columns lookup for the lookup-witness components. The single
// function both the prover and verifier orchestrators call, so their
// groupings — and therefore their per-LUT commitments — are byte-identical
// by construction rather than by two independently-written loops agreeing.
func (s CircuitSettings) GroupedColumns() ([][][]field.M31, []preprocessed.Function, map[preprocessed.Function][2][]field.M31) {
	cols := s.BuildColumns()
	var groups [][][]field.M31
	var order []preprocessed.Function
	byFn := make(map[preprocessed.Function][2][]field.M31)
	for i := 0; i+1 < len(cols); i += 2 {
		a, b := cols[i], cols[i+1]
		groups = append(groups, [][]field.M31{a.Values, b.Values})
		order = append(order, a.Function)
		byFn[a.Function] = [2][]field.M31{a.Values, b.Values}
	}
	return groups, order, byFn
}
