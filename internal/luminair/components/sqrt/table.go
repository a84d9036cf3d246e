// Package sqrt implements the fixed-point square-root operator component:
// out_val * out_val + rem_val = in_val * 2^scale, 0 <= rem_val < 2*out_val+1.
package sqrt

import "github.com/luminair/luminair-core/internal/luminair/field"

// Row is one execution-trace row for a sqrt operator instance, sharing
// recip's (rem_val, scale) unary row shape.
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
