package air_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luminair/luminair-core/internal/luminair/air"
	"github.com/luminair/luminair-core/internal/luminair/field"
)

func TestConstraintCheckerAcceptsSatisfiedConstraint(t *testing.T) {
	lhs := field.NewM31(3)
	rhs := field.NewM31(4)
	out := field.NewM31(7)
	checker := air.NewConstraintChecker("add", []field.M31{lhs, rhs, out})

	l := checker.NextMask()
	r := checker.NextMask()
	o := checker.NextMask()
	checker.AddConstraint(l.Add(r).Sub(o))

	require.NoError(t, checker.Err())
}

func TestConstraintCheckerRejectsViolatedConstraint(t *testing.T) {
	lhs := field.NewM31(3)
	rhs := field.NewM31(4)
	out := field.NewM31(999)
	checker := air.NewConstraintChecker("add", []field.M31{lhs, rhs, out})

	l := checker.NextMask()
	r := checker.NextMask()
	o := checker.NextMask()
	checker.AddConstraint(l.Add(r).Sub(o))

	require.Error(t, checker.Err())
}

func TestDegreeBoundTracksMultiplicationDegree(t *testing.T) {
	d := air.NewDegreeBound(3)
	lhs := d.NextMask()
	rhs := d.NextMask()
	out := d.NextMask()
	d.AddConstraint(lhs.Mul(rhs).Sub(out))
	require.Equal(t, 2, d.MaxDegree())
}

func TestElementsCombineIsLinear(t *testing.T) {
	elements := air.Elements{
		Coeffs: []field.QM31{field.QM31FromM31(field.NewM31(2)), field.QM31FromM31(field.NewM31(3))},
		Beta:   field.QM31FromM31(field.NewM31(5)),
	}
	got := elements.Combine([]field.M31{field.NewM31(10), field.NewM31(20)})
	want := field.QM31FromM31(field.NewM31(2*10 + 3*20 + 5))
	require.True(t, got.Equal(want))
}
