// Package integration exercises the generic [field] engine's fe255
// instantiation against two independent consumer-layer checks spec.md §1
// names as integration examples rather than core scope:
//
//   - a differential oracle: this package's Curve25519 field arithmetic
//     (fields/fe255, built on the generic unsaturated-limb engine) is
//     cross-checked byte-for-byte against filippo.io/edwards25519/field,
//     an independently-authored implementation of the identical modulus.
//   - the birational equivalence between the Montgomery curve
//     (RFC 7748's curve25519) and its twisted-Edwards form (ed25519),
//     which is how a real caller would actually use this engine: as the
//     field underneath curve arithmetic it does not itself implement.
//
// Neither check is part of the engine's own test surface; both live here
// because they require a second, real elliptic-curve library to compare
// against.
package integration

import (
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	edfield "filippo.io/edwards25519/field"

	"github.com/emc2/primefields/field"
	"github.com/emc2/primefields/fields/fe255"
)

// toOurs re-encodes a filippo.io/edwards25519/field.Element into our own
// fe255.Element via the shared little-endian byte wire format both
// implementations use for GF(2^255-19) — the cheapest possible bridge
// between two independent field implementations of the same modulus.
func toOurs(e *edfield.Element) *field.Element {
	v, err := fe255.FromBytes(e.Bytes())
	if err != nil {
		panic(fmt.Sprintf("integration: oracle element did not round-trip: %v", err))
	}
	return v
}

// montgomeryPoint is the (u, v) affine coordinate pair of a point on
// curve25519: v^2 = u^3 + A*u^2 + u, A = 486662.
type montgomeryPoint struct {
	u, v *field.Element
}

var (
	_A = fe255.FromUint64(486662)
	_1 = fe255.One()

	// sqrt486664 is -|sqrt(-486664)|, the scaling factor RFC 7748's
	// birational map uses so the Edwards generator maps to the
	// Montgomery base point (u=9).
	sqrt486664 = computeSqrt486664()
)

func computeSqrt486664() *field.Element {
	negA2 := fe255.Params.New().Neg(fe255.FromUint64(486664))
	if negA2.Legendre() != 1 {
		panic("integration: -486664 is not a quadratic residue mod p, wrong field shape")
	}
	root := fe255.Params.New().Sqrt(negA2)
	root.Normalize(root)
	// Choose the negative (odd) representative, matching the teacher's
	// own "-|sqrt(-486664)|" convention.
	if root.Sign() == 0 {
		root.Neg(root)
	}
	return root
}

// montgomeryFromEdwards converts a twisted-Edwards point (from a real
// ed25519 implementation) to its Montgomery (u, v) affine coordinates
// using only this module's own fe255 field arithmetic: every field op in
// this function is [fields/fe255], not filippo's.
//
// (u, v) = ((1+y)/(1-y), sqrt(-486664)*u/x), per RFC 7748 §4.1.
func montgomeryFromEdwards(p *edwards25519.Point) (*montgomeryPoint, error) {
	X, Y, Z, _ := p.ExtendedCoordinates()
	x, y, z := toOurs(X), toOurs(Y), toOurs(Z)

	if z.IsZero() == 1 {
		return nil, errors.New("integration: point at infinity has no affine Montgomery form")
	}

	zinv := fe255.Params.New().Invert(z)
	ax := fe255.Params.New().Multiply(x, zinv)
	ay := fe255.Params.New().Multiply(y, zinv)

	oneMinusY := fe255.Params.New().Sub(_1, ay)
	if oneMinusY.IsZero() == 1 {
		return nil, errors.New("integration: y = 1 has no Montgomery u-coordinate")
	}
	oneMinusYInv := fe255.Params.New().Invert(oneMinusY)

	u := fe255.Params.New().Add(_1, ay)
	u.Multiply(u, oneMinusYInv)

	if ax.IsZero() == 1 {
		return nil, errors.New("integration: x = 0 has no Montgomery v-coordinate")
	}
	xInv := fe255.Params.New().Invert(ax)
	v := fe255.Params.New().Multiply(sqrt486664, u)
	v.Multiply(v, xInv)

	u.Normalize(u)
	v.Normalize(v)
	return &montgomeryPoint{u: u, v: v}, nil
}

// edwardsFromMontgomery is the inverse map:
// (x, y) = (sqrt(-486664)*u/v, (u-1)/(u+1)).
//
// It returns the extended (X, Y, Z, T) coordinates via filippo's own
// edwards25519.Point constructor so the result can be compared against
// that library's point equality and serialization, closing the loop
// between the two engines.
func edwardsFromMontgomery(m *montgomeryPoint) (*edwards25519.Point, error) {
	if m.v.IsZero() == 1 {
		return nil, errors.New("integration: v = 0 has no Edwards x-coordinate")
	}
	vInv := fe255.Params.New().Invert(m.v)
	x := fe255.Params.New().Multiply(sqrt486664, m.u)
	x.Multiply(x, vInv)

	uPlus1 := fe255.Params.New().Add(m.u, _1)
	if uPlus1.IsZero() == 1 {
		return nil, errors.New("integration: u = -1 has no Edwards y-coordinate")
	}
	uPlus1Inv := fe255.Params.New().Invert(uPlus1)
	y := fe255.Params.New().Sub(m.u, _1)
	y.Multiply(y, uPlus1Inv)

	x.Normalize(x)
	y.Normalize(y)

	// Re-encode through filippo's field so the result lives inside its
	// own edwards25519.Point type for a same-library equality check.
	ex, err := new(edfield.Element).SetBytes(x.Bytes())
	if err != nil {
		return nil, err
	}
	ey, err := new(edfield.Element).SetBytes(y.Bytes())
	if err != nil {
		return nil, err
	}
	one := new(edfield.Element).One()
	t := new(edfield.Element).Multiply(ex, ey)

	pt, err := new(edwards25519.Point).SetExtendedCoordinates(ex, ey, one, t)
	if err != nil {
		return nil, fmt.Errorf("integration: not a valid edwards25519 point: %w", err)
	}
	return pt, nil
}
