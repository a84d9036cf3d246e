package preprocessed_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luminair/luminair-core/internal/luminair/field"
	"github.com/luminair/luminair-core/internal/luminair/preprocessed"
)

func decodeSigned(v field.M31) int64 {
	u := int64(v.Uint32())
	half := int64(field.Modulus) / 2
	if u > half {
		return u - int64(field.Modulus)
	}
	return u
}

func TestSinColumnsKeyPoints(t *testing.T) {
	cols := preprocessed.SinColumns(2) // size 4: 0, pi/2, pi, 3pi/2
	require.Len(t, cols[0].Values, 4)

	scale := int64(1) << preprocessed.FPScale
	// sin(0) = 0
	require.InDelta(t, 0, decodeSigned(cols[1].Values[0]), 1)
	// sin(pi/2) = 1
	require.InDelta(t, scale, decodeSigned(cols[1].Values[1]), 1)
	// sin(pi) = 0
	require.InDelta(t, 0, decodeSigned(cols[1].Values[2]), 1)
	// sin(3pi/2) = -1
	require.InDelta(t, -scale, decodeSigned(cols[1].Values[3]), 1)
}

func TestExp2ColumnsKeyPoints(t *testing.T) {
	domain := preprocessed.Exp2Domain{Min: -2 << preprocessed.FPScale, Max: 2 << preprocessed.FPScale}
	cols := preprocessed.Exp2Columns(2, domain) // size 4, stride 1<<preprocessed.FPScale => inputs -2,-1,0,1 (scaled)

	scale := int64(1) << preprocessed.FPScale
	want := []int64{
		toRaw(0.25), // 2^-2
		toRaw(0.5),  // 2^-1
		toRaw(1),    // 2^0
		toRaw(2),    // 2^1
	}
	for i, w := range want {
		require.InDelta(t, w, decodeSigned(cols[1].Values[i]), 1)
	}
	_ = scale
}

func toRaw(v float64) int64 {
	return int64(v * float64(int64(1)<<preprocessed.FPScale))
}

func TestByCanonicalOrderSortsByFunctionThenColIndex(t *testing.T) {
	sin := preprocessed.SinColumns(2)
	exp2 := preprocessed.Exp2Columns(2, preprocessed.DefaultExp2Domain(2))
	mixed := []preprocessed.Column{exp2[1], sin[1], exp2[0], sin[0]}
	sorted := preprocessed.ByCanonicalOrder(mixed)
	require.Equal(t, preprocessed.FunctionSin, sorted[0].Function)
	require.Equal(t, 0, sorted[0].ColIndex)
	require.Equal(t, preprocessed.FunctionSin, sorted[1].Function)
	require.Equal(t, 1, sorted[1].ColIndex)
	require.Equal(t, preprocessed.FunctionExp2, sorted[2].Function)
	require.Equal(t, 0, sorted[2].ColIndex)
	require.Equal(t, preprocessed.FunctionExp2, sorted[3].Function)
	require.Equal(t, 1, sorted[3].ColIndex)
}
