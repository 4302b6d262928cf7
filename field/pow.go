package field

// powLadder evaluates x raised to the exponent encoded by bits (most
// significant bit first) using a fixed square-and-multiply sequence: one
// Square per bit, one Multiply-by-x per set bit. The sequence itself
// depends only on the field's shape (it is compiled into *Params once, by
// [NewParams]), never on x, so the number and order of field operations
// performed is identical for every input — the ladder is the mechanism by
// which Invert, Legendre, Sqrt, and InvSqrt stay constant-time despite
// computing a modular exponentiation.
func (pp *Params) powLadder(x *Element, bits []uint8) *Element {
	r := pp.One()
	for _, b := range bits {
		r.Square(r)
		if b == 1 {
			r.Multiply(r, x)
		}
	}
	return r
}

// Invert sets v = 1/x mod p (x^(p-2)) and returns v.
//
// If x == 0, Invert sets v = 0, since 0^(p-2) = 0 under the ladder; the
// caller must guard against inverting zero where correctness requires it
// (spec.md §7 treats this as a documented, non-error outcome).
func (v *Element) Invert(x *Element) *Element {
	r := x.p.powLadder(x, x.p.invExp)
	return v.Set(r)
}

// Legendre returns the Legendre symbol of e as a tri-state int8: 1 if e is
// a non-zero quadratic residue, -1 if e is a non-residue, 0 if e is zero.
// The zero case is folded in explicitly rather than reported as -1,
// matching the original field's PrimeField.legendre (see DESIGN.md).
func (e *Element) Legendre() int8 {
	p := e.p
	s := p.getScratchpad()
	defer p.putScratchpad(s)

	copy(s.d0, e.limb)
	xCopy := &Element{p: p, limb: s.d0}

	r := p.powLadder(xCopy, p.legendreExp)
	r.Normalize(r)

	isZero := int8(r.IsZero())
	isOne := int8(r.Equal(p.One()))
	other := (1 - isZero) * (1 - isOne)

	return isOne - other
}

// LegendreQuartic returns x^((p-1)/4), only defined for fields where
// p ≡ 5 (mod 8) (spec.md §4.4's "Quartic Legendre"). It panics on a field
// where the quartic ladder does not exist, since calling it there is a
// programming error rather than a documented runtime condition.
func (v *Element) LegendreQuartic(x *Element) *Element {
	if !x.p.hasQuartic {
		panic("field: LegendreQuartic undefined for this modulus (p not 5 mod 8)")
	}
	r := x.p.powLadder(x, x.p.quarticExp)
	return v.Set(r)
}

// Sqrt sets v to a square root of x and returns v.
//
// The caller must ensure x is a quadratic residue (Legendre(x) != -1);
// Sqrt does not check and produces a well-formed but meaningless element
// otherwise, per spec.md §4.4 and §7.
func (v *Element) Sqrt(x *Element) *Element {
	p := x.p
	r := p.powLadder(x, p.sqrtExp)

	if p.kind == sqrtMod4 {
		return v.Set(r)
	}

	// p ≡ 5 (mod 8): r = x^((p+3)/8) is correct only when x is a quartic
	// residue; otherwise the true root is r * 2^((p-1)/4). Select branch-
	// free on whether r^2 == x.
	check := p.New().Square(r)
	cond := check.Equal(x)
	corrected := p.New().Multiply(r, p.correction)
	out := p.New().Select(r, corrected, cond)
	return v.Set(out)
}

// InvSqrt sets v = 1/sqrt(x) and returns v, for x with Legendre(x) != -1.
//
// Like Sqrt, correctness requires the caller to have already established
// x is a quadratic residue; InvSqrt does not check.
func (v *Element) InvSqrt(x *Element) *Element {
	p := x.p
	r := p.powLadder(x, p.invSqrtExp)

	if p.kind == sqrtMod4 {
		return v.Set(r)
	}

	// p ≡ 5 (mod 8): r = x^((p-5)/8) is the inverse square root only when
	// r^2 * x == 1; otherwise multiply by the same correction factor used
	// by Sqrt.
	check := p.New().Square(r)
	check.Multiply(check, x)
	cond := check.Equal(p.One())
	corrected := p.New().Multiply(r, p.correction)
	out := p.New().Select(r, corrected, cond)
	return v.Set(out)
}
