// Package exp2 implements the base-2 exponential operator component, the
// direct Go counterpart of original_source's exp2 component: no real
// polynomial identity constrains in_val/out_val, correctness is carried by
// the shared exp2 LUT via exp2lookup's multiplicity balance.
package exp2

import "github.com/luminair/luminair-core/internal/luminair/field"

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
