package trace_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luminair/luminair-core/internal/luminair/field"
	"github.com/luminair/luminair-core/internal/luminair/trace"
)

func TestPaddedSizeClampsToLaneWidth(t *testing.T) {
	size, logSize := trace.PaddedSize(3)
	require.Equal(t, field.NLanes, size)
	require.Equal(t, uint32(4), logSize)
}

func TestPaddedSizeRoundsUpToPowerOfTwo(t *testing.T) {
	size, logSize := trace.PaddedSize(20)
	require.Equal(t, 32, size)
	require.Equal(t, uint32(5), logSize)
}

func TestPadRowsFillsWithPadding(t *testing.T) {
	rows := []int{1, 2, 3}
	padded := trace.PadRows(rows, 8, -1)
	require.Equal(t, []int{1, 2, 3, -1, -1, -1, -1, -1}, padded)
}

func TestPackColumnRoundTripsThroughUnpack(t *testing.T) {
	values := make([]field.M31, field.NLanes*3)
	for i := range values {
		values[i] = field.NewM31(uint64(i))
	}
	packed := trace.PackColumn(values)
	require.Len(t, packed, 3)
	for i := range values {
		require.True(t, values[i].Equal(trace.UnpackColumn(packed, i)))
	}
}

func TestBuildPackedColumnsRoundTripsThroughUnpackColumns(t *testing.T) {
	size := field.NLanes * 4
	nCols := 3
	packed, err := trace.BuildPackedColumns(size, nCols, func(i int) []field.M31 {
		return []field.M31{
			field.NewM31(uint64(i)),
			field.NewM31(uint64(i * 2)),
			field.NewM31(uint64(i * 3)),
		}
	})
	require.NoError(t, err)
	require.Len(t, packed, nCols)
	require.Len(t, packed[0], size/field.NLanes)

	columns := trace.UnpackColumns(packed, size)
	require.Len(t, columns, nCols)
	for i := 0; i < size; i++ {
		require.True(t, columns[0][i].Equal(field.NewM31(uint64(i))))
		require.True(t, columns[1][i].Equal(field.NewM31(uint64(i*2))))
		require.True(t, columns[2][i].Equal(field.NewM31(uint64(i*3))))
	}
}

// TestBuildPackedColumnsExceedsChunkThreshold exercises the
// parallel.ZipRows fan-out path (not just its sequential fallback) by
// building enough packed rows to cross the chunk-size cutoff.
func TestBuildPackedColumnsExceedsChunkThreshold(t *testing.T) {
	size := field.NLanes * 2048
	packed, err := trace.BuildPackedColumns(size, 1, func(i int) []field.M31 {
		return []field.M31{field.NewM31(uint64(i % 2147483647))}
	})
	require.NoError(t, err)
	columns := trace.UnpackColumns(packed, size)
	require.True(t, columns[0][size-1].Equal(field.NewM31(uint64((size-1)%2147483647))))
}
