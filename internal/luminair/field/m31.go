// Package field implements the Mersenne-31 base field, its quartic extension
// QM31, and lane-packed vectors of both.
package field

// Modulus is the Mersenne prime p = 2^31 - 1.
const Modulus uint32 = (1 << 31) - 1

// NLanes is the SIMD lane width packed rows are transposed into.
const NLanes = 16

// M31 is an element of the field of integers modulo 2^31 - 1, always kept
// in [0, Modulus) canonical form.
type M31 uint32

// NewM31 reduces an arbitrary uint64 into canonical M31 form.
func NewM31(v uint64) M31 {
	return M31(reduceU64(v))
}

// Zero is the additive identity.
func Zero() M31 { return M31(0) }

// One is the multiplicative identity.
func One() M31 { return M31(1) }

func reduceU64(v uint64) uint32 {
	// Mersenne reduction: x mod (2^31-1) == (x & p) + (x >> 31), iterated
	// until the result fits below p.
	for v > uint64(Modulus) {
		v = (v & uint64(Modulus)) + (v >> 31)
	}
	if v == uint64(Modulus) {
		return 0
	}
	return uint32(v)
}

// Add returns a + b mod p.
func (a M31) Add(b M31) M31 {
	s := uint32(a) + uint32(b)
	if s >= Modulus {
		s -= Modulus
	}
	return M31(s)
}

// Sub returns a - b mod p.
func (a M31) Sub(b M31) M31 {
	if a >= b {
		return M31(uint32(a) - uint32(b))
	}
	return M31(Modulus - uint32(b) + uint32(a))
}

// Neg returns -a mod p.
func (a M31) Neg() M31 {
	if a == 0 {
		return 0
	}
	return M31(Modulus - uint32(a))
}

// Mul returns a * b mod p.
func (a M31) Mul(b M31) M31 {
	return NewM31(uint64(a) * uint64(b))
}

// IsZero reports whether a is the additive identity.
func (a M31) IsZero() bool { return a == 0 }

// Equal reports whether a and b are the same canonical element.
func (a M31) Equal(b M31) bool { return a == b }

// Pow computes a^e mod p by square-and-multiply.
func (a M31) Pow(e uint32) M31 {
	result := One()
	base := a
	for e > 0 {
		if e&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		e >>= 1
	}
	return result
}

// Inv returns the multiplicative inverse of a via Fermat's little theorem
// (a^(p-2)). Callers must not invoke this on the zero element, which has
// no inverse.
func (a M31) Inv() M31 {
	return a.Pow(Modulus - 2)
}

// Uint32 returns the canonical representative as a uint32.
func (a M31) Uint32() uint32 { return uint32(a) }
