package air

import "github.com/luminair/luminair-core/internal/luminair/field"

// Elements is a drawn set of random QM31 challenges used to linearly
// combine a fixed-arity tuple of M31 values into one QM31 denominator for
// a LogUp relation entry: combine([v0, v1]) = coeffs[0]*v0 + coeffs[1]*v1 +
// beta. NodeElements (producer/consumer dataflow) and every per-LUT
// LookupElements are the same shape — 2 coefficients plus a constant term
// — so one type serves both, matching §6's "3 QM31" description for each.
type Elements struct {
	Coeffs []field.QM31
	Beta   field.QM31
}

// DrawElements draws arity coefficients plus one constant term from ch, in
// that order, and returns the resulting Elements. Arity is 2 for both
// NodeElements ((value, id)) and every LookupElements ((input, output)).
func DrawElements(ch Channel, arity int) Elements {
	coeffs := make([]field.QM31, arity)
	for i := range coeffs {
		coeffs[i] = ch.DrawQM31()
	}
	return Elements{Coeffs: coeffs, Beta: ch.DrawQM31()}
}

// Combine applies the random linear combination to values, which must have
// length equal to the Elements' arity.
func (e Elements) Combine(values []field.M31) field.QM31 {
	sum := e.Beta
	for i, v := range values {
		sum = sum.Add(e.Coeffs[i].MulM31(v))
	}
	return sum
}
