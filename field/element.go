package field

// Element is a value in Z/pZ for some pseudo-Mersenne p = 2^n - c, stored
// as D unsaturated limbs. The zero value is not meaningful on its own — an
// Element must be obtained from a [Params] constructor (or [Params.New])
// so it carries the shape it belongs to.
//
// An Element may be "loose" (limbs may exceed their nominal digit width,
// and the top limb's residual carry-out may be non-zero) or "normalized"
// (every limb in range, top limb's carry-out zero, encoded integer in
// [0, p)). Every arithmetic kernel accepts loose inputs and produces loose
// outputs; [Element.Normalize] is the only operation that canonicalizes.
// Equality, Pack, Sign, and Legendre require a normalized receiver — the
// fields/ constructors and [Element] methods that need canonical form
// normalize internally before calling them.
type Element struct {
	p    *Params
	limb []int64
}

// New returns the zero element of the field described by pp.
func (pp *Params) New() *Element {
	return &Element{p: pp, limb: make([]int64, pp.D)}
}

// Zero returns the additive identity.
func (pp *Params) Zero() *Element {
	return pp.New()
}

// One returns the multiplicative identity.
func (pp *Params) One() *Element {
	e := pp.New()
	e.limb[0] = 1
	return e
}

// FromUint64 returns the element represented by v.
func (pp *Params) FromUint64(v uint64) *Element {
	e := pp.New()
	e.limb[0] = int64(v & uint64(pp.digitMask))
	rest := v >> uint(pp.DigitBits)
	for i := 1; i < pp.D && rest != 0; i++ {
		width := pp.DigitBits
		mask := pp.digitMask
		if i == pp.D-1 {
			width = pp.HighDigitBits
			mask = pp.highDigitMask
		}
		e.limb[i] = int64(rest & uint64(mask))
		rest >>= uint(width)
	}
	return e
}

// sameField panics if a and b were not built from the same *Params. Mixing
// elements from two different concrete fields in one operation is a
// programming error, not a documented contract violation, so it is caught
// eagerly rather than left as silent undefined behavior.
func sameField(a, b *Element) {
	if a.p != b.p {
		panic("field: mismatched field parameters")
	}
}

// Params returns the parameter set this element belongs to.
func (e *Element) Params() *Params {
	return e.p
}

// Clone returns a new Element with the same value and shape as e.
func (e *Element) Clone() *Element {
	out := e.p.New()
	copy(out.limb, e.limb)
	return out
}

// Set sets v = a and returns v.
func (v *Element) Set(a *Element) *Element {
	if v.p == nil {
		v.p = a.p
		v.limb = make([]int64, a.p.D)
	} else {
		sameField(v, a)
	}
	copy(v.limb, a.limb)
	return v
}

// SetInt64 sets v to the (possibly negative) small integer n and returns
// v. n must lie within the scalar add bounds documented on [Element.AddScalar].
func (v *Element) SetInt64(n int64) *Element {
	v.limb = make([]int64, v.p.D)
	if n >= 0 {
		return v.AddScalar(v, n)
	}
	return v.SubScalar(v, -n)
}
