// Package exp2lookup implements the exp2 LUT witness component (§4.2.y):
// a single multiplicity column tracking how many times each preprocessed
// exp2 LUT row was referenced by exp2 operator instances.
package exp2lookup

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
