package field

// reduce folds a base-2^64 double-width product back into this field's
// limb radix using the pseudo-Mersenne identity 2^n ≡ c (mod p): the
// product is split at bit n into a low half and a high half, the high
// half is multiplied by c, and the two halves are added back together.
// This fold is applied twice: the first leaves a value only a few dozen
// bits above 2^n, the second brings it under 2^n plus a small multiple of
// c, so repeated squarings do not grow the top limb. The result is still
// loose (below 2p) and Normalize is left to finish the job, per spec.md §4.3.
func (pp *Params) reduce(wide []uint64) []int64 {
	combined := wide
	for i := 0; i < 2; i++ {
		low := wordsLowBits(combined, pp.N)
		high := wordsShiftRight(combined, pp.N)
		highC := wordsMulSmall(high, uint64(pp.C))
		combined = wordsAdd(low, highC)
	}
	return wordsToLimbs(combined, pp.D, pp.DigitBits)
}

func (v *Element) bind(p *Params) {
	if v.p == nil {
		v.p = p
		v.limb = make([]int64, p.D)
	} else {
		if v.p != p {
			panic("field: mismatched field parameters")
		}
	}
}

// Multiply sets v = x * y and returns v. x and y must belong to the same
// field; v may alias either (or both).
func (v *Element) Multiply(x, y *Element) *Element {
	sameField(x, y)
	v.bind(x.p)

	wx := limbsToWords(x.limb, x.p.DigitBits)
	wy := limbsToWords(y.limb, x.p.DigitBits)
	wide := wordsMulFull(wx, wy)
	v.limb = x.p.reduce(wide)
	return v
}

// Mul is an alias for [Element.Multiply], matching the verb the rest of
// the package uses for in-place binary operators.
func (v *Element) Mul(x, y *Element) *Element {
	return v.Multiply(x, y)
}

// Square sets v = x * x and returns v, computing each cross term once and
// doubling it rather than computing every term twice.
func (v *Element) Square(x *Element) *Element {
	v.bind(x.p)

	wx := limbsToWords(x.limb, x.p.DigitBits)
	wide := wordsSquareFull(wx)
	v.limb = x.p.reduce(wide)
	return v
}

// MulScalar sets v = x * b and returns v. b must lie in
// [-(2^32 - 2^MulDigitBits), 2^MulDigitBits); exceeding that range is
// undefined behavior the engine does not check.
func (v *Element) MulScalar(x *Element, b int64) *Element {
	v.bind(x.p)

	if b < 0 {
		v.MulScalar(x, -b)
		return v.Neg(v)
	}

	wx := limbsToWords(x.limb, x.p.DigitBits)
	wide := wordsMulSmall(wx, uint64(b))
	v.limb = x.p.reduce(wide)
	return v
}

// Div sets v = x / y (x * inv(y)) and returns v. If y == 0, Div sets v = 0,
// matching [Element.Invert]'s documented behavior at zero.
func (v *Element) Div(x, y *Element) *Element {
	sameField(x, y)
	p := y.p
	s := p.getScratchpad()
	defer p.putScratchpad(s)

	// Stage the divisor in scratch so Invert's ladder never touches y's
	// own storage, per spec.md §4.6.
	copy(s.d2, y.limb)
	divisor := &Element{p: p, limb: s.d2}

	inv := p.New().Invert(divisor)
	return v.Multiply(x, inv)
}

// DivScalar sets v = x / b and returns v, where b is a small non-zero
// integer within [Element.MulScalar]'s bound.
func (v *Element) DivScalar(x *Element, b int64) *Element {
	inv := x.p.New().Invert(x.p.New().SetInt64(b))
	return v.Multiply(x, inv)
}
