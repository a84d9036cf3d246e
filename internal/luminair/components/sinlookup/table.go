// Package sinlookup implements the sin LUT witness component (§4.2.y),
// structurally identical to exp2lookup but bound to the sin preprocessed
// table.
package sinlookup

import "github.com/luminair/luminair-core/internal/luminair/field"

type Row struct {
	Multiplicity field.M31
}

func (r Row) Fields() []field.M31 { return []field.M31{r.Multiplicity} }

func Padding() Row { return Row{} }

type Table struct {
	Rows []Row
}

func NewTable(rows []Row) Table { return Table{Rows: rows} }
