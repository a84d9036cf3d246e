// Package preprocessed builds the fixed, deterministic lookup-table
// columns (C3) for sin and exp2: pairs of (input, output) M31 columns
// derived purely from circuit settings, shared read-only between an
// operator's lookup component and its lookup-witness component (§9 "LUT
// sharing").
package preprocessed

import (
	"math"

	"github.com/luminair/luminair-core/internal/luminair/field"
)

// FPScale is the fixed-point scale every fixed-point value in this system
// uses: a value v is encoded as round(v * 2^FPScale).
const FPScale = 12

// Function names the transcendental function a LUT implements.
type Function int

const (
	FunctionSin Function = iota
	FunctionExp2
)

// Column is a single preprocessed LUT column: input or output values for
// one function, at a fixed log-size, carrying the canonical ordering key
// (function, col_index) §4.3 requires prover and verifier to agree on.
type Column struct {
	Function Function
	ColIndex int
	LogSize  uint32
	Values   []field.M31
}

// Exp2Domain pins the (otherwise unspecified, per spec's open question) LUT
// input range for exp2: [Min, Max) in raw fixed-point units. Settings
// supplies this per §9's resolution "treat as a settings parameter".
type Exp2Domain struct {
	Min, Max int64
}

// DefaultExp2Domain is symmetric around zero, matching the spec text's
// "typically [-2^(K-1), 2^(K-1))" example.
func DefaultExp2Domain(logSize uint32) Exp2Domain {
	half := int64(1) << (logSize - 1)
	return Exp2Domain{Min: -half, Max: half}
}

// toFixedPoint rounds v*2^FPScale to the nearest integer, rounding a tie
// away from zero. This is the rounding mode pinned for LUT generation,
// per spec §9's open question — round-half-to-even would also be sound,
// but away-from-zero matches the simpler, more common fixed-point
// convention. The operator components do no rounding of their own: recip
// and sqrt commit the rem_val their caller supplies.
func toFixedPoint(v float64) int64 {
	scaled := v * float64(int64(1)<<FPScale)
	if scaled >= 0 {
		return int64(math.Floor(scaled + 0.5))
	}
	return int64(math.Ceil(scaled - 0.5))
}

// encodeSigned maps a signed fixed-point integer onto its M31 canonical
// representative (negative values become p - |v|).
func encodeSigned(v int64) field.M31 {
	m := int64(field.Modulus)
	r := v % m
	if r < 0 {
		r += m
	}
	return field.M31(uint32(r))
}

// SinColumns builds the two sin LUT columns at the given log-size: input_i
// = i * 2*pi / 2^logSize quantized to fixed point, output_i =
// round(sin(input_i) * 2^FPScale).
func SinColumns(logSize uint32) [2]Column {
	size := 1 << logSize
	inputs := make([]field.M31, size)
	outputs := make([]field.M31, size)
	for i := 0; i < size; i++ {
		theta := float64(i) * 2 * math.Pi / float64(size)
		inRaw := toFixedPoint(theta)
		outRaw := toFixedPoint(math.Sin(theta))
		inputs[i] = encodeSigned(inRaw)
		outputs[i] = encodeSigned(outRaw)
	}
	return [2]Column{
		{Function: FunctionSin, ColIndex: 0, LogSize: logSize, Values: inputs},
		{Function: FunctionSin, ColIndex: 1, LogSize: logSize, Values: outputs},
	}
}

// Exp2Columns builds the two exp2 LUT columns at the given log-size and
// domain: input_i steps across [domain.Min, domain.Max) in raw fixed-point
// units, output_i = round(2^(input_i / 2^FPScale) * 2^FPScale).
func Exp2Columns(logSize uint32, domain Exp2Domain) [2]Column {
	size := 1 << logSize
	inputs := make([]field.M31, size)
	outputs := make([]field.M31, size)
	span := domain.Max - domain.Min
	for i := 0; i < size; i++ {
		var raw int64
		if size > 1 {
			raw = domain.Min + int64(i)*span/int64(size)
		} else {
			raw = domain.Min
		}
		real := float64(raw) / float64(int64(1)<<FPScale)
		outRaw := toFixedPoint(math.Exp2(real))
		inputs[i] = encodeSigned(raw)
		outputs[i] = encodeSigned(outRaw)
	}
	return [2]Column{
		{Function: FunctionExp2, ColIndex: 0, LogSize: logSize, Values: inputs},
		{Function: FunctionExp2, ColIndex: 1, LogSize: logSize, Values: outputs},
	}
}

// ByCanonicalOrder sorts columns by (Function, ColIndex), the order §4.3
// requires prover and verifier to derive identically.
func ByCanonicalOrder(cols []Column) []Column {
	out := make([]Column, len(cols))
	copy(out, cols)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0; j-- {
			a, b := out[j-1], out[j]
			if a.Function > b.Function || (a.Function == b.Function && a.ColIndex > b.ColIndex) {
				out[j-1], out[j] = out[j], out[j-1]
			} else {
				break
			}
		}
	}
	return out
}
