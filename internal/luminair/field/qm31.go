package field

// CM31 is the quadratic extension M31[i]/(i^2+1), a + b*i.
type CM31 struct {
	A, B M31
}

// NewCM31 builds a complex-extension element from its real and imaginary parts.
func NewCM31(a, b M31) CM31 { return CM31{A: a, B: b} }

func (c CM31) Add(o CM31) CM31 { return CM31{c.A.Add(o.A), c.B.Add(o.B)} }
func (c CM31) Sub(o CM31) CM31 { return CM31{c.A.Sub(o.A), c.B.Sub(o.B)} }
func (c CM31) Neg() CM31       { return CM31{c.A.Neg(), c.B.Neg()} }

func (c CM31) Mul(o CM31) CM31 {
	// (a+bi)(c+di) = (ac-bd) + (ad+bc)i
	return CM31{
		A: c.A.Mul(o.A).Sub(c.B.Mul(o.B)),
		B: c.A.Mul(o.B).Add(c.B.Mul(o.A)),
	}
}

func (c CM31) MulM31(s M31) CM31 { return CM31{c.A.Mul(s), c.B.Mul(s)} }

func (c CM31) IsZero() bool { return c.A.IsZero() && c.B.IsZero() }

// Norm returns a^2+b^2, an M31 element (the conjugate product).
func (c CM31) Norm() M31 { return c.A.Mul(c.A).Add(c.B.Mul(c.B)) }

func (c CM31) Conjugate() CM31 { return CM31{c.A, c.B.Neg()} }

func (c CM31) Inv() CM31 {
	nInv := c.Norm().Inv()
	conj := c.Conjugate()
	return CM31{conj.A.Mul(nInv), conj.B.Mul(nInv)}
}

// QM31 is the quartic extension CM31[u]/(u^2-(2+i)), c0 + c1*u. This is the
// field over which interaction (LogUp) arithmetic and Fiat-Shamir challenges
// live, matching the circle-STARK field tower.
type QM31 struct {
	C0, C1 CM31
}

// nonResidue is R = 2+i, the element u^2 reduces to.
var nonResidue = CM31{A: M31(2), B: M31(1)}

// QM31Zero is the additive identity.
func QM31Zero() QM31 { return QM31{} }

// QM31One is the multiplicative identity.
func QM31One() QM31 { return QM31{C0: CM31{A: One()}} }

// QM31FromM31 embeds a base-field element into the extension.
func QM31FromM31(v M31) QM31 { return QM31{C0: CM31{A: v}} }

func (q QM31) Add(o QM31) QM31 { return QM31{q.C0.Add(o.C0), q.C1.Add(o.C1)} }
func (q QM31) Sub(o QM31) QM31 { return QM31{q.C0.Sub(o.C0), q.C1.Sub(o.C1)} }
func (q QM31) Neg() QM31       { return QM31{q.C0.Neg(), q.C1.Neg()} }

func (q QM31) Mul(o QM31) QM31 {
	// (c0+c1 u)(d0+d1 u) = (c0 d0 + R c1 d1) + (c0 d1 + c1 d0) u
	c0d0 := q.C0.Mul(o.C0)
	c1d1 := q.C1.Mul(o.C1)
	c0d1 := q.C0.Mul(o.C1)
	c1d0 := q.C1.Mul(o.C0)
	return QM31{
		C0: c0d0.Add(nonResidue.Mul(c1d1)),
		C1: c0d1.Add(c1d0),
	}
}

func (q QM31) MulM31(s M31) QM31 { return QM31{q.C0.MulM31(s), q.C1.MulM31(s)} }

func (q QM31) IsZero() bool { return q.C0.IsZero() && q.C1.IsZero() }

func (q QM31) Equal(o QM31) bool { return q.C0 == o.C0 && q.C1 == o.C1 }

// conjugate over the u-extension: (c0, c1) -> (c0, -c1).
func (q QM31) uConjugate() QM31 { return QM31{q.C0, q.C1.Neg()} }

// Inv returns the multiplicative inverse. Panics semantics are avoided by
// callers: the zero element has no inverse and must be excluded before use
// (BatchInverseQM31 rejects it with an error).
func (q QM31) Inv() QM31 {
	// q * uConj(q) = c0^2 - R c1^2, an element of CM31; invert there, then
	// scale back.
	conj := q.uConjugate()
	norm := q.C0.Mul(q.C0).Sub(nonResidue.Mul(q.C1.Mul(q.C1)))
	normInv := norm.Inv()
	return QM31{conj.C0.Mul(normInv), conj.C1.Mul(normInv)}
}
