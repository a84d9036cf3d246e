// Package trace implements the operator-independent half of the trace
// table model (C2): padding row counts up to a power of two, building
// lane-parallel packed columns as the canonical representation (§9), and
// deriving the scalar columns every operator commits and opens from them.
package trace

import (
	"math/bits"

	"github.com/luminair/luminair-core/internal/luminair/field"
	"github.com/luminair/luminair-core/internal/luminair/parallel"
)

// PaddedSize returns the row count a table of n rows pads to (the next
// power of two, at least one lane width) and its log2.
func PaddedSize(n int) (size int, logSize uint32) {
	size = n
	if size < field.NLanes {
		size = field.NLanes
	}
	size = nextPowerOfTwo(size)
	logSize = uint32(bits.Len(uint(size)) - 1)
	return size, logSize
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// PadRows extends rows to size by repeated appends of padding, matching
// §4.1's "pad table.rows to size with padding rows". Operators supply their
// own canonical padding row value (typically all-zero plus is_last_idx=1).
func PadRows[T any](rows []T, size int, padding T) []T {
	if len(rows) >= size {
		return rows
	}
	out := make([]T, size)
	copy(out, rows)
	for i := len(rows); i < size; i++ {
		out[i] = padding
	}
	return out
}

// PackColumn groups a padded scalar column (length a multiple of NLanes)
// into packed rows via lane-wise transpose. This is the "packing function"
// §4.1 names: one PackedM31 per group of NLanes scalar values, in order.
func PackColumn(values []field.M31) []field.PackedM31 {
	n := len(values) / field.NLanes
	out := make([]field.PackedM31, n)
	for i := 0; i < n; i++ {
		var row field.PackedM31
		base := i * field.NLanes
		for lane := 0; lane < field.NLanes; lane++ {
			row[lane] = values[base+lane]
		}
		out[i] = row
	}
	return out
}

// UnpackColumn is PackColumn's inverse: it reads a single scalar value back
// out of a packed column at a row index expressed in scalar (unpacked)
// coordinates. UnpackColumns below is the column-at-a-time form every
// operator's WriteTrace uses to derive its committed columns.
func UnpackColumn(packed []field.PackedM31, scalarIndex int) field.M31 {
	return packed[scalarIndex/field.NLanes][scalarIndex%field.NLanes]
}

// BuildPackedColumns builds nCols packed columns of padded length size (a
// multiple of NLanes — PaddedSize guarantees this) directly in their
// canonical packed form (§9): fields(i) returns scalar row i's column
// values in schema order, and every group of NLanes consecutive scalar
// rows is assembled into one packed row. Row groups are filled
// concurrently via parallel.ZipRows — §5's zip-style iteration, here over
// packed rows rather than scalar ones — with each goroutine owning one
// packed row index across every column, so there is no shared-index
// contention.
func BuildPackedColumns(size, nCols int, fields func(i int) []field.M31) ([][]field.PackedM31, error) {
	nPacked := size / field.NLanes
	packed := make([][]field.PackedM31, nCols)
	for c := range packed {
		packed[c] = make([]field.PackedM31, nPacked)
	}
	err := parallel.ZipRows(nPacked, func(p int) error {
		base := p * field.NLanes
		for lane := 0; lane < field.NLanes; lane++ {
			vals := fields(base + lane)
			for c, v := range vals {
				packed[c][p][lane] = v
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return packed, nil
}

// UnpackColumns derives the scalar columns the STARK engine actually
// commits to and opens from their canonical packed representation: the
// packed form is authoritative, and these are read back out of it via
// UnpackColumn rather than populated directly from row data.
func UnpackColumns(packed [][]field.PackedM31, size int) [][]field.M31 {
	columns := make([][]field.M31, len(packed))
	for c, col := range packed {
		scalars := make([]field.M31, size)
		for i := range scalars {
			scalars[i] = UnpackColumn(col, i)
		}
		columns[c] = scalars
	}
	return columns
}
