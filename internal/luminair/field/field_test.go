package field_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luminair/luminair-core/internal/luminair/field"
)

func TestM31ArithmeticWrapsAtModulus(t *testing.T) {
	a := field.NewM31(uint64(field.Modulus - 1))
	one := field.One()
	require.True(t, a.Add(one).IsZero(), "p-1 + 1 must wrap to zero")
}

func TestM31MulAndInvRoundTrip(t *testing.T) {
	a := field.NewM31(123456789)
	inv := a.Inv()
	require.True(t, a.Mul(inv).Equal(field.One()))
}

func TestM31SubUnderflow(t *testing.T) {
	zero := field.Zero()
	one := field.One()
	require.True(t, zero.Sub(one).Equal(field.NewM31(uint64(field.Modulus-1))))
}

func TestQM31MulInvRoundTrip(t *testing.T) {
	q := field.QM31{
		C0: field.NewCM31(field.NewM31(7), field.NewM31(11)),
		C1: field.NewCM31(field.NewM31(13), field.NewM31(17)),
	}
	inv := q.Inv()
	require.True(t, q.Mul(inv).Equal(field.QM31One()))
}

func TestQM31EmbedsM31(t *testing.T) {
	v := field.NewM31(42)
	q := field.QM31FromM31(v)
	require.True(t, q.Sub(field.QM31FromM31(v)).IsZero())
}

func TestBatchInverseQM31MatchesScalarInverse(t *testing.T) {
	in := make([]field.QM31, 0, 32)
	for i := uint64(1); i <= 32; i++ {
		in = append(in, field.QM31FromM31(field.NewM31(i)))
	}
	out, err := field.BatchInverseQM31(in)
	require.NoError(t, err)
	require.Len(t, out, len(in))
	for i, v := range in {
		require.True(t, v.Mul(out[i]).Equal(field.QM31One()))
	}
}

func TestBatchInverseQM31RejectsZero(t *testing.T) {
	_, err := field.BatchInverseQM31([]field.QM31{field.QM31One(), field.QM31Zero()})
	require.Error(t, err)
}

func TestParallelBatchInverseQM31MatchesSequential(t *testing.T) {
	in := make([]field.QM31, 0, 4096)
	for i := uint64(1); i <= 4096; i++ {
		in = append(in, field.QM31FromM31(field.NewM31(i*7+3)))
	}
	seq, err := field.BatchInverseQM31(in)
	require.NoError(t, err)
	par, err := field.ParallelBatchInverseQM31(in, 8)
	require.NoError(t, err)
	require.Equal(t, seq, par)
}
