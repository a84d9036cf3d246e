// Package add implements the element-wise addition operator component:
// out_val = lhs_val + rhs_val, with emit/consume LogUp tokens tying the
// producing and consuming graph nodes together.
package add

import "github.com/luminair/luminair-core/internal/luminair/field"

// Row is one execution-trace row for an add operator instance, in the
// exact field order §4.2's common row anatomy lists for a binary operator.
type Row struct {
	NodeID, LhsID, RhsID field.M31
	Idx, IsLastIdx        field.M31
	NextNodeID             field.M31
	NextLhsID, NextRhsID   field.M31
	NextIdx                field.M31
	LhsVal, RhsVal, OutVal field.M31
	LhsMult, RhsMult, OutMult field.M31
}

// Fields returns the row's values in schema order, the sequence a Cursor
// reads via NextMask().
func (r Row) Fields() []field.M31 {
	return []field.M31{
		r.NodeID, r.LhsID, r.RhsID, r.Idx, r.IsLastIdx,
		r.NextNodeID, r.NextLhsID, r.NextRhsID, r.NextIdx,
		r.LhsVal, r.RhsVal, r.OutVal,
		r.LhsMult, r.RhsMult, r.OutMult,
	}
}

// Padding is the canonical padding row: all zero except IsLastIdx=1, so a
// padded row neither contributes a transition edge nor a LogUp token
// (multiplicities zero).
func Padding() Row {
	return Row{IsLastIdx: field.One()}
}

// Table is the dynamically sized, not-yet-padded set of rows the graph
// executor hands the prover for every add instance in the computation.
type Table struct {
	Rows []Row
}

// NewTable wraps a slice of rows produced by the graph executor.
func NewTable(rows []Row) Table { return Table{Rows: rows} }
