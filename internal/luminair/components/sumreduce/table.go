// Package sumreduce implements the sum-reduction operator component:
// a running accumulator over one reduction slice, emitting the slice's
// total once per slice and consuming every contributing input once.
package sumreduce

import "github.com/luminair/luminair-core/internal/luminair/field"

// Row carries the per-slice accumulator alongside the usual node bookkeeping
// (§4.2.x): acc, in_val, is_slice_last, with next_acc mirrored into the next
// row's acc for the transition constraint.
type Row struct {
	NodeID, InID         field.M31
	Idx, IsLastIdx       field.M31
	NextNodeID, NextInID field.M31
	NextIdx              field.M31
	Acc, InVal           field.M31
	IsSliceLast          field.M31
	NextAcc              field.M31
	OutVal               field.M31
	InMult, OutMult      field.M31
}

func (r Row) Fields() []field.M31 {
	return []field.M31{
		r.NodeID, r.InID, r.Idx, r.IsLastIdx,
		r.NextNodeID, r.NextInID, r.NextIdx,
		r.Acc, r.InVal, r.IsSliceLast, r.NextAcc, r.OutVal,
		r.InMult, r.OutMult,
	}
}

func Padding() Row {
	return Row{IsLastIdx: field.One(), IsSliceLast: field.One()}
}

type Table struct {
	Rows []Row
}

func NewTable(rows []Row) Table { return Table{Rows: rows} }
