// Package fe383 binds the generic [field] engine to p = 2^383 - 187, the base
// field of E-383.
package fe383

import (
	"crypto/rand"
	"io"

	"github.com/emc2/primefields/field"
)

// Params describes this field's shape: n=383, c=187.
var Params = field.NewParams("fe383", 383, 187, 55)

// Zero returns the additive identity.
func Zero() *field.Element { return Params.Zero() }

// One returns the multiplicative identity.
func One() *field.Element { return Params.One() }

// FromUint64 returns the element represented by v.
func FromUint64(v uint64) *field.Element { return Params.FromUint64(v) }

// FromBytes unpacks a `Params.PackedBytes`-byte little-endian encoding
// into a new element, without reducing modulo p (spec.md §4.5).
func FromBytes(b []byte) (*field.Element, error) {
	return Params.New().SetBytes(b)
}

// FromReader reads exactly Params.PackedBytes bytes from r and unpacks
// them into a new element.
func FromReader(r io.Reader) (*field.Element, error) {
	e := Params.New()
	if err := e.SetReader(r); err != nil {
		return nil, err
	}
	return e, nil
}

// Random returns a new element sampled from crypto/rand, masked to this
// field's bit width but not reduced modulo p (see [field.Element.SetRandom]
// for the documented bias).
func Random() (*field.Element, error) {
	e := Params.New()
	if err := e.SetRandom(rand.Reader); err != nil {
		return nil, err
	}
	return e, nil
}
