// Package maxreduce implements the max-reduction operator component: the
// same per-slice accumulator skeleton as sumreduce, plus a boolean gt_flag
// and remainder column proving gt_flag = 1 iff in_val > acc (§4.2.x).
package maxreduce

import "github.com/luminair/luminair-core/internal/luminair/field"

type Row struct {
	NodeID, InID         field.M31
	Idx, IsLastIdx       field.M31
	NextNodeID, NextInID field.M31
	NextIdx              field.M31
	Acc, InVal           field.M31
	IsSliceLast          field.M31
	GtFlag, RemVal       field.M31
	NextAcc              field.M31
	OutVal               field.M31
	InMult, OutMult      field.M31
}

func (r Row) Fields() []field.M31 {
	return []field.M31{
		r.NodeID, r.InID, r.Idx, r.IsLastIdx,
		r.NextNodeID, r.NextInID, r.NextIdx,
		r.Acc, r.InVal, r.IsSliceLast, r.GtFlag, r.RemVal, r.NextAcc, r.OutVal,
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
