package field

// [Params.AddBounds] reports the bounds on the scalar accepted by AddScalar
// and SubScalar: the caller's responsibility per the engine's contract, not
// checked here.
//
// addSub computes out = x + sign*y, propagating the residual high-limb
// carry of both inputs into limb 0 (multiplied by c, since 2^n ≡ c mod p)
// and then the ordinary digit-to-digit carry across the rest of the
// limbs. The top limb's own carry-out bits (above HighDigitBits) are
// removed from x[D-1]/y[D-1] before they are summed with the rest of the
// digit: that carry-out was already folded into limb 0 as a multiple of
// c, and 2^n ≡ c (mod p) means a value's residue is preserved only when
// the k·2^n contribution is replaced by k·c, not added alongside it. The
// output top limb is left unmasked so it retains its own (new) carry-out
// for the next operation to consume. Every limb of out is written only
// after the corresponding limbs of x and y have been read, so out may
// alias x, y, or both.
func (pp *Params) addSub(out, x, y []int64, sign int64) {
	top := pp.D - 1
	kx := x[top] >> pp.HighDigitBits
	ky := y[top] >> pp.HighDigitBits
	carry := (kx + sign*ky) * pp.C

	for i := 0; i <= top; i++ {
		xi, yi := x[i], y[i]
		if i == top {
			xi &= pp.highDigitMask
			yi &= pp.highDigitMask
		}
		s := xi + sign*yi + carry
		if i == top {
			out[i] = s
		} else {
			out[i] = s & pp.digitMask
			carry = s >> pp.DigitBits
		}
	}
}

// addSubScalar computes out = x + sign*b, where b contributes only at limb
// 0 (the rest of the limbs see no addend beyond the carry chain). See
// [Params.addSub] for why x[D-1]'s carry-out bits must be masked off
// before it is summed with the folded carry.
func (pp *Params) addSubScalar(out, x []int64, b int64, sign int64) {
	top := pp.D - 1
	kx := x[top] >> pp.HighDigitBits
	carry := kx * pp.C

	for i := 0; i <= top; i++ {
		xi := x[i]
		if i == top {
			xi &= pp.highDigitMask
		}
		s := xi + carry
		if i == 0 {
			s += sign * b
		}
		if i == top {
			out[i] = s
		} else {
			out[i] = s & pp.digitMask
			carry = s >> pp.DigitBits
		}
	}
}

// Add sets v = x + y and returns v.
func (v *Element) Add(x, y *Element) *Element {
	sameField(x, y)
	if v.p == nil {
		v.p = x.p
		v.limb = make([]int64, x.p.D)
	} else {
		sameField(v, x)
	}
	v.p.addSub(v.limb, x.limb, y.limb, 1)
	return v
}

// Sub sets v = x - y and returns v. The subtraction is computed as
// x + (bias - y); bias is a loose encoding of 4p, so the result is still
// congruent to x - y (mod p). Individual limb sums may go negative; they
// borrow through [Params.addSub]'s arithmetic right shift.
func (v *Element) Sub(x, y *Element) *Element {
	sameField(x, y)
	if v.p == nil {
		v.p = x.p
		v.limb = make([]int64, x.p.D)
	} else {
		sameField(v, x)
	}
	biased := make([]int64, v.p.D)
	v.p.addSub(biased, v.p.bias, y.limb, -1)
	v.p.addSub(v.limb, x.limb, biased, 1)
	return v
}

// Neg sets v = -x (i.e. 0 - x, biased to stay non-negative) and returns v.
func (v *Element) Neg(x *Element) *Element {
	return v.Sub(x.p.Zero(), x)
}

// AddScalar sets v = x + b and returns v. b must lie in
// [-(2^64 - 2^DigitBits), 2^DigitBits); exceeding that range overflows the
// carry budget and is undefined behavior the engine does not check.
func (v *Element) AddScalar(x *Element, b int64) *Element {
	if v.p == nil {
		v.p = x.p
		v.limb = make([]int64, x.p.D)
	} else {
		sameField(v, x)
	}
	v.p.addSubScalar(v.limb, x.limb, b, 1)
	return v
}

// SubScalar sets v = x - b and returns v, subject to the same bound as
// [Element.AddScalar].
func (v *Element) SubScalar(x *Element, b int64) *Element {
	if v.p == nil {
		v.p = x.p
		v.limb = make([]int64, x.p.D)
	} else {
		sameField(v, x)
	}
	biased := v.p.Zero()
	biased.SubScalarUnsafeBiased(b)
	v.p.addSub(v.limb, x.limb, biased.limb, 1)
	return v
}

// SubScalarUnsafeBiased sets v = bias - b, used internally by SubScalar to
// keep the subtrahend non-negative before folding it in as an addend.
func (v *Element) SubScalarUnsafeBiased(b int64) *Element {
	v.p.addSubScalar(v.limb, v.p.bias, b, -1)
	return v
}
