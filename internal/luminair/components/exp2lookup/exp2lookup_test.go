package exp2lookup_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luminair/luminair-core/internal/luminair/air"
	"github.com/luminair/luminair-core/internal/luminair/components/exp2lookup"
	"github.com/luminair/luminair-core/internal/luminair/field"
)

func TestWriteTraceCopiesMultiplicity(t *testing.T) {
	rows := []exp2lookup.Row{
		{Multiplicity: field.NewM31(3)},
		{Multiplicity: field.NewM31(0)},
	}
	claim, _, columns, err := exp2lookup.WriteTrace(exp2lookup.NewTable(rows))
	require.NoError(t, err)
	require.Equal(t, uint32(4), claim.LogSize)
	require.True(t, columns[0][0].Equal(field.NewM31(3)))
}

func TestWriteInteractionTraceAcceptsMatchingLUTColumns(t *testing.T) {
	rows := []exp2lookup.Row{{Multiplicity: field.One()}}
	_, gen, _, err := exp2lookup.WriteTrace(exp2lookup.NewTable(rows))
	require.NoError(t, err)

	ch := testChannel{}
	elements := air.DrawElements(ch, 2)
	size := 16
	lutInput := make([]field.M31, size)
	lutOutput := make([]field.M31, size)
	for i := range lutInput {
		lutInput[i] = field.NewM31(uint64(i))
		lutOutput[i] = field.NewM31(uint64(i * 2))
	}
	_, _, err = gen.WriteInteractionTrace(elements, lutInput, lutOutput)
	require.NoError(t, err)
}

func TestWriteInteractionTraceRejectsLengthMismatch(t *testing.T) {
	rows := []exp2lookup.Row{{Multiplicity: field.One()}}
	_, gen, _, err := exp2lookup.WriteTrace(exp2lookup.NewTable(rows))
	require.NoError(t, err)

	ch := testChannel{}
	elements := air.DrawElements(ch, 2)
	_, _, err = gen.WriteInteractionTrace(elements, []field.M31{field.One()}, []field.M31{field.One()})
	require.Error(t, err)
}

func TestWriteTraceRejectsEmptyTable(t *testing.T) {
	_, _, _, err := exp2lookup.WriteTrace(exp2lookup.NewTable(nil))
	require.Error(t, err)
}

// testChannel is a minimal deterministic air.Channel stand-in for drawing
// Elements in tests without pulling in the stark package.
type testChannel struct{}

func (testChannel) MixBytes([]byte)         {}
func (testChannel) MixFelts([]field.M31)    {}
func (testChannel) DrawQM31() field.QM31    { return field.QM31FromM31(field.NewM31(7)) }
