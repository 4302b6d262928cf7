package fe222

import (
	"testing"

	"github.com/emc2/primefields/internal/assert"
)

func TestZeroOneRoundTrip(t *testing.T) {
	z := Zero()
	assert.Equal(t, 1, z.IsZero())

	o := One()
	b := o.Bytes()
	back, err := FromBytes(b)
	assert.NoError(t, err)
	assert.Equal(t, 1, back.Equal(o))
}

func TestArithmeticSanity(t *testing.T) {
	two := FromUint64(2)
	four := Params.New().Multiply(two, two)
	sq := Params.New().Square(two)
	four.Normalize(four)
	sq.Normalize(sq)
	assert.Equal(t, 1, four.Equal(sq))

	inv := Params.New().Invert(four)
	back := Params.New().Multiply(four, inv)
	back.Normalize(back)
	assert.Equal(t, 1, back.Equal(One()))
}

func TestRandomIsWellFormed(t *testing.T) {
	r, err := Random()
	assert.NoError(t, err)
	if len(r.Bytes()) != Params.PackedBytes {
		t.Fatalf("unexpected packed length")
	}
}
