package field

// normalize brings limb (a loose encoding, every digit possibly exceeding
// its nominal width) to the canonical representative in [0, p): fold any
// existing residual carry into limb 0 (spec.md §4.1 step 1 generalized to
// an arbitrary starting carry, not just 0/1), then test whether the
// result is still >= p by adding c and inspecting the new carry-out, and
// branch-free-select between the folded value and the folded-minus-p
// value.
//
// A single fold's ripple-carry exactly renormalizes every non-top limb,
// but can still leave the top limb's own carry-out above 1 (bounded by
// how loose the input digits were, not by D). A second fold starts from
// limbs that are already all in range, so its own carry-in (a small
// multiple of c) can push the top limb's carry-out no higher than 1 —
// which is what the final compare-and-subtract step requires.
func (pp *Params) normalize(limb []int64) []int64 {
	s := pp.getScratchpad()
	defer pp.putScratchpad(s)

	// Fold any residual high-limb carry-out back into limb 0, twice.
	pp.addSubScalar(s.d0, limb, 0, 1)
	pp.addSubScalar(s.d0, s.d0, 0, 1)

	// candidate = folded + c; its own carry-out tells us whether folded
	// was >= p, since p = 2^n - c.
	pp.addSubScalar(s.d1, s.d0, pp.C, 1)
	k := s.d1[pp.D-1] >> pp.HighDigitBits
	mask := -k // all-ones if k == 1, all-zero if k == 0

	out := make([]int64, pp.D)
	for i := 0; i < pp.D; i++ {
		c := s.d1[i]
		if i == pp.D-1 {
			c &= pp.highDigitMask
		}
		out[i] = (mask & c) | (^mask & s.d0[i])
	}
	return out
}

// Normalize sets v to the canonical representative of x in [0, p) and
// returns v. Normalize is idempotent: normalizing an already-normalized
// element is a no-op value-wise.
func (v *Element) Normalize(x *Element) *Element {
	out := x.p.normalize(x.limb)
	v.bind(x.p)
	v.limb = out
	return v
}
