package field

// Select sets v to a if cond == 1, or to b if cond == 0, and returns v.
// a and b must belong to the same field. cond must be 0 or 1; any other
// value is undefined behavior (the mask expansion below assumes it).
//
// This is the branch-free selection primitive spec.md §5 describes: cond
// is expanded to an all-zero or all-one 64-bit mask and every limb is
// composed with AND/OR, never an if on a secret-derived condition.
func (v *Element) Select(a, b *Element, cond int) *Element {
	sameField(a, b)
	v.bind(a.p)
	m := -int64(cond & 1)
	for i := range v.limb {
		v.limb[i] = (m & a.limb[i]) | (^m & b.limb[i])
	}
	return v
}

// Mask returns an element whose every limb is all-ones (within that
// limb's digit width) if bit == 1, or all-zero if bit == 0 — the mask
// value spec.md §5's branch-free selection composes with AND/OR.
func (pp *Params) Mask(bit int) *Element {
	e := pp.New()
	m := -int64(bit & 1)
	for i := range e.limb {
		if i == pp.D-1 {
			e.limb[i] = m & pp.highDigitMask
		} else {
			e.limb[i] = m & pp.digitMask
		}
	}
	return e
}

// Or sets v to the limb-wise bitwise OR of x and y and returns v. This is
// a raw bit operation on the limb representation, not a field operation;
// it exists to compose masks built from [Params.Mask] and comparison
// results the way the constant-time kernels do internally.
func (v *Element) Or(x, y *Element) *Element {
	sameField(x, y)
	v.bind(x.p)
	for i := range v.limb {
		v.limb[i] = x.limb[i] | y.limb[i]
	}
	return v
}

// Equal returns 1 if e and o represent the same field element and 0
// otherwise. Both operands are normalized internally first (equality is
// defined only on canonical form, spec.md §3). The comparison is an
// XOR-OR fold across every limb followed by a branch-free zero test, so
// its running time does not depend on where a difference first appears.
func (e *Element) Equal(o *Element) int {
	sameField(e, o)
	a := e.p.normalize(e.limb)
	b := e.p.normalize(o.limb)

	var diff int64
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	// (diff | -diff) has its sign bit set iff diff != 0, for any int64
	// two's-complement encoding including the all-zero and INT64_MIN
	// corners.
	neq := (diff | -diff) >> 63 & 1
	return int(1 - neq)
}

// Eq is an alias for [Element.Equal], matching the lowercase verb
// spec.md §6 names.
func (e *Element) Eq(o *Element) int {
	return e.Equal(o)
}

// IsZero returns 1 if e normalizes to 0, and 0 otherwise.
func (e *Element) IsZero() int {
	return e.Equal(e.p.Zero())
}

// Sign returns the low bit of e's canonical representative (0 or 1), the
// convention used throughout elliptic-curve point compression to pick one
// of a pair {x, -x}.
func (e *Element) Sign() int {
	n := e.p.normalize(e.limb)
	return int(n[0] & 1)
}

// Signum returns 0 if e is zero, 1 if e is non-zero with Sign() == 0, or
// -1 if e is non-zero with Sign() == 1.
func (e *Element) Signum() int {
	if e.IsZero() == 1 {
		return 0
	}
	if e.Sign() == 1 {
		return -1
	}
	return 1
}

// Bit returns bit n (0 = least significant) of e's canonical
// representative, or 0 if n is out of range.
func (e *Element) Bit(n int) int {
	if n < 0 {
		return 0
	}
	norm := e.p.normalize(e.limb)
	words := limbsToWords(norm, e.p.DigitBits)
	wi := n / 64
	if wi >= len(words) {
		return 0
	}
	return int((words[wi] >> uint(n%64)) & 1)
}

// Abs sets v to the canonical representative of x if its [Element.Sign]
// is 0, or to its negation if Sign is 1, so the result is always the
// "even" member of the {x, -x} pair. Returns v.
func (v *Element) Abs(x *Element) *Element {
	p := x.p
	xn := p.New().Normalize(x)
	neg := p.New().Neg(xn)
	cond := xn.Sign()
	out := p.New().Select(neg, xn, cond)
	return v.Set(out)
}
