// Package sin implements the sine operator component. Unlike add/mul/recip,
// its value is not directly constrained by polynomial arithmetic: correctness
// is delegated entirely to the shared sin LUT, checked by the sinlookup
// component's multiplicity balance (§4.2.x, §4.2.y).
package sin

import "github.com/luminair/luminair-core/internal/luminair/field"

// Row mirrors recip/sqrt/exp2's unary (rem_val, scale) row shape, per
// original_source's exp2/component.rs column order — sin is structurally
// identical.
type Row struct {
	NodeID, InID         field.M31
	Idx, IsLastIdx       field.M31
	NextNodeID, NextInID field.M31
	NextIdx              field.M31
	InVal, OutVal        field.M31
	RemVal, Scale        field.M31
	InMult, OutMult      field.M31
}

func (r Row) Fields() []field.M31 {
	return []field.M31{
		r.NodeID, r.InID, r.Idx, r.IsLastIdx,
		r.NextNodeID, r.NextInID, r.NextIdx,
		r.InVal, r.OutVal, r.RemVal, r.Scale,
		r.InMult, r.OutMult,
	}
}

func Padding() Row {
	return Row{IsLastIdx: field.One()}
}

type Table struct {
	Rows []Row
}

func NewTable(rows []Row) Table { return Table{Rows: rows} }
