// Package recip implements the fixed-point reciprocal operator component:
// in_val * out_val + rem_val = 2^scale, 0 <= rem_val < in_val.
package recip

import "github.com/luminair/luminair-core/internal/luminair/field"

// Row is one execution-trace row for a recip operator instance, matching
// §4.2's unary row anatomy with the (rem_val, scale) pair recip and sqrt
// both carry.
type Row struct {
	NodeID, InID       field.M31
	Idx, IsLastIdx     field.M31
	NextNodeID, NextInID field.M31
	NextIdx            field.M31
	InVal, OutVal      field.M31
	RemVal, Scale      field.M31
	InMult, OutMult    field.M31
}

func (r Row) Fields() []field.M31 {
	return []field.M31{
		r.NodeID, r.InID, r.Idx, r.IsLastIdx,
		r.NextNodeID, r.NextInID, r.NextIdx,
		r.InVal, r.OutVal, r.RemVal, r.Scale,
		r.InMult, r.OutMult,
	}
}

// Padding returns the padding row. Its scale is 0, so the reciprocal target
// is 2^0 = 1; rem_val = 1 makes 0*0 + 1 = 1 hold on padding rows.
func Padding() Row {
	return Row{IsLastIdx: field.One(), RemVal: field.One()}
}

type Table struct {
	Rows []Row
}

func NewTable(rows []Row) Table { return Table{Rows: rows} }
