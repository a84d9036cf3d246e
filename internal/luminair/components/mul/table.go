// Package mul implements the element-wise multiplication operator
// component: out_val = lhs_val * rhs_val.
package mul

import "github.com/luminair/luminair-core/internal/luminair/field"

// Row is one execution-trace row for a mul operator instance.
type Row struct {
	NodeID, LhsID, RhsID      field.M31
	Idx, IsLastIdx            field.M31
	NextNodeID                field.M31
	NextLhsID, NextRhsID      field.M31
	NextIdx                   field.M31
	LhsVal, RhsVal, OutVal    field.M31
	LhsMult, RhsMult, OutMult field.M31
}

func (r Row) Fields() []field.M31 {
	return []field.M31{
		r.NodeID, r.LhsID, r.RhsID, r.Idx, r.IsLastIdx,
		r.NextNodeID, r.NextLhsID, r.NextRhsID, r.NextIdx,
		r.LhsVal, r.RhsVal, r.OutVal,
		r.LhsMult, r.RhsMult, r.OutMult,
	}
}

func Padding() Row {
	return Row{IsLastIdx: field.One()}
}

type Table struct {
	Rows []Row
}

func NewTable(rows []Row) Table { return Table{Rows: rows} }
