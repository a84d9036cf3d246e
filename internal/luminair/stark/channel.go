package stark

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/luminair/luminair-core/internal/luminair/air"
	"github.com/luminair/luminair-core/internal/luminair/field"
)

// Channel is the Fiat-Shamir transcript: absorbs commitments and claims via
// MixBytes/MixFelts and emits challenges via DrawQM31, exactly the contract
// §6 names. Grounded on utils/channel.go's Send/hash state-update pattern,
// narrowed to the one hash function the teacher's channel already defaults
// to (sha3) rather than carrying its poseidon/rescue/sha256 switch, since
// nothing in this proving core needs a pluggable hash.
type Channel struct {
	state [32]byte
}

// NewChannel returns a channel in its initial state.
func NewChannel() *Channel {
	return &Channel{}
}

// MixBytes absorbs raw bytes into the transcript.
func (c *Channel) MixBytes(b []byte) {
	h := sha3.New256()
	h.Write(c.state[:])
	h.Write(b)
	copy(c.state[:], h.Sum(nil))
}

// MixFelts absorbs a sequence of base-field elements, little-endian.
func (c *Channel) MixFelts(values []field.M31) {
	buf := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*4:], v.Uint32())
	}
	c.MixBytes(buf)
}

// DrawQM31 derives one extension-field challenge from the current state and
// advances the state, so repeated draws without an intervening Mix produce
// distinct, deterministic values.
func (c *Channel) DrawQM31() field.QM31 {
	limbs := [4]field.M31{}
	for i := range limbs {
		limbs[i] = field.NewM31(uint64(c.draw32()))
	}
	return field.QM31{
		C0: field.NewCM31(limbs[0], limbs[1]),
		C1: field.NewCM31(limbs[2], limbs[3]),
	}
}

func (c *Channel) draw32() uint32 {
	h := sha3.Sum256(c.state[:])
	c.state = h
	return binary.LittleEndian.Uint32(h[:4])
}

// State returns a copy of the current transcript digest, useful for tests
// that assert determinism (§8 invariant 5).
func (c *Channel) State() [32]byte { return c.state }

var _ air.Channel = (*Channel)(nil)
