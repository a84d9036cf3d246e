package field

// PackedM31 is a lane-parallel vector of NLanes base-field elements, the
// unit a packed trace row operates on. There is no real SIMD backend here:
// the slice stands in for a hardware vector the way the circle domain FFT
// in the teacher's codebase stands in for a real one, but the lane-wise
// operation shape is preserved so callers never branch on scalar-vs-packed.
type PackedM31 [NLanes]M31

// BroadcastM31 fills every lane with the same scalar.
func BroadcastM31(v M31) PackedM31 {
	var p PackedM31
	for i := range p {
		p[i] = v
	}
	return p
}

func (p PackedM31) Add(o PackedM31) PackedM31 {
	var r PackedM31
	for i := range p {
		r[i] = p[i].Add(o[i])
	}
	return r
}

func (p PackedM31) Sub(o PackedM31) PackedM31 {
	var r PackedM31
	for i := range p {
		r[i] = p[i].Sub(o[i])
	}
	return r
}

func (p PackedM31) Mul(o PackedM31) PackedM31 {
	var r PackedM31
	for i := range p {
		r[i] = p[i].Mul(o[i])
	}
	return r
}

func (p PackedM31) Neg() PackedM31 {
	var r PackedM31
	for i := range p {
		r[i] = p[i].Neg()
	}
	return r
}

// PackedQM31 is a lane-parallel vector of NLanes extension-field elements,
// used for interaction (LogUp) columns and Fiat-Shamir-drawn challenges
// broadcast across a row.
type PackedQM31 [NLanes]QM31

func BroadcastQM31(v QM31) PackedQM31 {
	var p PackedQM31
	for i := range p {
		p[i] = v
	}
	return p
}

func PackedQM31FromM31(p PackedM31) PackedQM31 {
	var r PackedQM31
	for i := range p {
		r[i] = QM31FromM31(p[i])
	}
	return r
}

func (p PackedQM31) Add(o PackedQM31) PackedQM31 {
	var r PackedQM31
	for i := range p {
		r[i] = p[i].Add(o[i])
	}
	return r
}

func (p PackedQM31) Sub(o PackedQM31) PackedQM31 {
	var r PackedQM31
	for i := range p {
		r[i] = p[i].Sub(o[i])
	}
	return r
}

func (p PackedQM31) Mul(o PackedQM31) PackedQM31 {
	var r PackedQM31
	for i := range p {
		r[i] = p[i].Mul(o[i])
	}
	return r
}

func (p PackedQM31) Neg() PackedQM31 {
	var r PackedQM31
	for i := range p {
		r[i] = p[i].Neg()
	}
	return r
}
