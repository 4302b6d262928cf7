package field

import (
	"math/big"
	mathrand "math/rand"
	"reflect"
	"testing"
	"testing/quick"

	"github.com/emc2/primefields/internal/assert"
)

// The generic engine is exercised here against two locally-defined
// shapes spanning both supported sqrt kinds: testP255 (p = 2^255-19,
// same shape as Curve25519, p ≡ 5 mod 8) and testP222 (p = 2^222-117,
// same shape as E-222, p ≡ 3 mod 4, and with HighDigitBits != DigitBits
// unlike testP255). The concrete fields/feNNN packages import this same
// engine, so proving it correct here covers every instantiation; a
// direct import of fields/fe255 here would be an import cycle.
var (
	testP255 = NewParams("testfe255", 255, 19, 51)
	testP222 = NewParams("testfe222", 222, 117, 56)
)

// quickCheckConfig returns a quick.Config that scales the max count by
// slowScale unless -short is set, matching the teacher's own test tuning.
func quickCheckConfig(slowScale int) *quick.Config {
	cfg := new(quick.Config)
	if !testing.Short() {
		cfg.MaxCountScale = float64(slowScale)
	}
	return cfg
}

type genElement struct {
	p *Params
}

// generate produces a mildly loose element: every limb up to 4x its
// nominal digit range, which is "any 64-bit pattern consistent with the
// carry budget" (spec.md §3) without overflowing the kernels' signed
// 64-bit arithmetic the way a fully random 64-bit limb would for these
// digit widths.
func (g genElement) generate(rand *mathrand.Rand) *Element {
	e := g.p.New()
	for i := range e.limb {
		mask := g.p.digitMask
		if i == g.p.D-1 {
			mask = g.p.highDigitMask
		}
		e.limb[i] = rand.Int63n(mask*4 + 1)
	}
	return e
}

// quickElement255 wraps *Element so testing/quick can generate random
// loose values for testP255 via the Generator interface.
type quickElement255 struct{ *Element }

func (quickElement255) Generate(rand *mathrand.Rand, size int) reflect.Value {
	g := genElement{p: testP255}
	return reflect.ValueOf(quickElement255{g.generate(rand)})
}

func TestAddMatchesRepeatedOne(t *testing.T) {
	p := testP255
	x := p.One()
	y := p.New().Add(x, x)

	for range 10 {
		x.Add(x, y)
	}

	x.Normalize(x)
	want := p.FromUint64(21)
	assert.Equal(t, 1, x.Equal(want))
}

func TestSubUnwindsAdd(t *testing.T) {
	p := testP255
	x := p.FromUint64(21)
	y := p.FromUint64(2)

	for range 10 {
		x.Sub(x, y)
	}
	x.Normalize(x)
	assert.Equal(t, 1, x.Equal(p.One()))
}

func TestMultiplyAndSquareAgree(t *testing.T) {
	p := testP255
	two := p.FromUint64(2)

	byMul := p.One()
	for range 10 {
		byMul.Multiply(byMul, two)
	}
	byMul.Normalize(byMul)
	assert.Equal(t, 1, byMul.Equal(p.FromUint64(1024)))

	bySquare := p.New().Add(p.One(), p.One())
	for range 3 {
		bySquare.Square(bySquare)
	}
	bySquare.Normalize(bySquare)
	// 2^(2^3) = 256
	assert.Equal(t, 1, bySquare.Equal(p.FromUint64(256)))
}

func TestMultiplyDistributesOverAdd(t *testing.T) {
	prop := func(x, y, z quickElement255) bool {
		p := testP255
		t1 := p.New().Add(x.Element, y.Element)
		t1.Multiply(t1, z.Element)

		t2 := p.New().Multiply(x.Element, z.Element)
		t3 := p.New().Multiply(y.Element, z.Element)
		t2.Add(t2, t3)

		return t1.Equal(t2) == 1
	}
	err := quick.Check(prop, quickCheckConfig(256))
	assert.NoError(t, err)
}

func TestAddCommutesAndAssociates(t *testing.T) {
	prop := func(x, y, z quickElement255) bool {
		p := testP255
		xy := p.New().Add(x.Element, y.Element)
		yx := p.New().Add(y.Element, x.Element)
		if xy.Equal(yx) == 0 {
			return false
		}

		xyZ := p.New().Add(xy, z.Element)
		yzX := p.New().Add(p.New().Add(y.Element, z.Element), x.Element)
		return xyZ.Equal(yzX) == 1
	}
	err := quick.Check(prop, quickCheckConfig(256))
	assert.NoError(t, err)
}

func TestNegIsZeroMinusX(t *testing.T) {
	prop := func(x quickElement255) bool {
		p := testP255
		neg := p.New().Neg(x.Element)
		sub := p.New().Sub(p.Zero(), x.Element)
		return neg.Equal(sub) == 1
	}
	err := quick.Check(prop, quickCheckConfig(256))
	assert.NoError(t, err)
}

func TestInverseOfNonZero(t *testing.T) {
	prop := func(x quickElement255) bool {
		p := testP255
		if x.Element.IsZero() == 1 {
			return true
		}
		inv := p.New().Invert(x.Element)
		prod := p.New().Multiply(x.Element, inv)
		prod.Normalize(prod)
		return prod.Equal(p.One()) == 1
	}
	err := quick.Check(prop, quickCheckConfig(256))
	assert.NoError(t, err)
}

func TestInverseOfZeroIsZero(t *testing.T) {
	p := testP255
	inv := p.New().Invert(p.Zero())
	assert.Equal(t, 1, inv.IsZero())
}

func TestDivIsMultiplyByInverse(t *testing.T) {
	p := testP255
	x := p.FromUint64(10)
	y := p.FromUint64(3)
	q := p.New().Div(x, y)
	back := p.New().Multiply(q, y)
	back.Normalize(back)
	assert.Equal(t, 1, back.Equal(x))
}

func TestSqrtOfSquareRoundtrips(t *testing.T) {
	prop := func(x quickElement255) bool {
		p := testP255
		sq := p.New().Square(x.Element)
		if sq.Legendre() != 1 {
			return true // shouldn't happen for a nonzero square, but guard anyway
		}
		r := p.New().Sqrt(sq)
		back := p.New().Square(r)
		back.Normalize(back)
		sq.Normalize(sq)
		return back.Equal(sq) == 1
	}
	err := quick.Check(prop, quickCheckConfig(256))
	assert.NoError(t, err)
}

func TestInvSqrtOfSquareIsInverseOfRoot(t *testing.T) {
	p := testP255
	x := p.FromUint64(3)
	sq := p.New().Square(x)
	if sq.Legendre() != 1 {
		t.Fatal("test fixture expected a quadratic residue")
	}
	is := p.New().InvSqrt(sq)
	check := p.New().Square(is)
	check.Multiply(check, sq)
	check.Normalize(check)
	assert.Equal(t, 1, check.Equal(p.One()))
}

func TestLegendreOfSquareIsOne(t *testing.T) {
	prop := func(x quickElement255) bool {
		p := testP255
		if x.Element.IsZero() == 1 {
			return true
		}
		sq := p.New().Square(x.Element)
		return sq.Legendre() == 1
	}
	err := quick.Check(prop, quickCheckConfig(256))
	assert.NoError(t, err)
}

func TestLegendreOfZeroIsZero(t *testing.T) {
	p := testP255
	assert.Equal(t, int8(0), p.Zero().Legendre())
}

func TestLegendreIsMultiplicative(t *testing.T) {
	prop := func(x, y quickElement255) bool {
		p := testP255
		if x.Element.IsZero() == 1 || y.Element.IsZero() == 1 {
			return true
		}
		lx := x.Element.Legendre()
		ly := y.Element.Legendre()
		prod := p.New().Multiply(x.Element, y.Element)
		lxy := prod.Legendre()
		return lx*ly == lxy
	}
	err := quick.Check(prop, quickCheckConfig(256))
	assert.NoError(t, err)
}

// looseValue reconstructs the (possibly far from canonical) integer a
// loose limb array encodes, the same positional convention packBig and
// limbsToWords use: limb[i] contributes at bit i*DigitBits, regardless of
// how far any individual limb strays past its nominal width.
func looseValue(p *Params, limb []int64) *big.Int {
	v := new(big.Int)
	for i := len(limb) - 1; i >= 0; i-- {
		v.Lsh(v, uint(p.DigitBits))
		v.Add(v, big.NewInt(limb[i]))
	}
	return v
}

func TestNormalizeIsIdempotentAndInRange(t *testing.T) {
	prop := func(x quickElement255) bool {
		p := testP255
		n1 := p.New().Normalize(x.Element)
		n2 := p.New().Normalize(n1)
		if n1.Equal(n2) == 0 {
			return false
		}
		if n1.limb[p.D-1]>>p.HighDigitBits != 0 {
			return false
		}
		for i := 0; i < p.D-1; i++ {
			if n1.limb[i] < 0 || n1.limb[i] > p.digitMask {
				return false
			}
		}

		want := new(big.Int).Mod(looseValue(p, x.Element.limb), p.p)
		got := looseValue(p, n1.limb)
		return got.Cmp(want) == 0
	}
	err := quick.Check(prop, quickCheckConfig(256))
	assert.NoError(t, err)
}

func TestPackUnpackRoundTrip(t *testing.T) {
	prop := func(x quickElement255) bool {
		p := testP255
		n := p.New().Normalize(x.Element)
		b := n.Bytes()
		if len(b) != p.PackedBytes {
			return false
		}
		back, err := p.New().SetBytes(b)
		if err != nil {
			return false
		}
		back.Normalize(back)
		return back.Equal(n) == 1
	}
	err := quick.Check(prop, quickCheckConfig(256))
	assert.NoError(t, err)
}

func TestUnpackZeroBytesIsZero(t *testing.T) {
	p := testP222
	b := make([]byte, p.PackedBytes)
	e, err := p.New().SetBytes(b)
	assert.NoError(t, err)
	assert.Equal(t, 1, e.IsZero())
	assert.Equal(t, make([]byte, p.PackedBytes), e.Bytes())
}

func TestAliasSafety(t *testing.T) {
	p := testP255
	x := p.FromUint64(7)
	y := p.FromUint64(9)

	distinct := p.New().Add(x, y)

	aliased := p.New().Set(x)
	aliased.Add(aliased, y)

	assert.Equal(t, 1, distinct.Equal(aliased))

	mdistinct := p.New().Multiply(x, y)
	maliased := p.New().Set(x)
	maliased.Multiply(maliased, y)
	assert.Equal(t, 1, mdistinct.Equal(maliased))

	sdistinct := p.New().Square(x)
	saliased := p.New().Set(x)
	saliased.Square(saliased)
	assert.Equal(t, 1, sdistinct.Equal(saliased))
}

func TestEqualIsNotAffectedByLooseness(t *testing.T) {
	p := testP255
	// Sub adds the 4p bias, so this holds p + 3 rather than the canonical 3.
	loose := p.New().Sub(p.FromUint64(3), p.Zero())
	canonical := p.FromUint64(3)
	assert.Equal(t, 1, loose.Equal(canonical))
}

func TestDestroyScrubsLimbs(t *testing.T) {
	p := testP255
	x := p.FromUint64(42)
	x.Destroy()
	for _, l := range x.limb {
		assert.Equal(t, int64(-1), l)
	}
}

func TestScratchpadScrubsOnRelease(t *testing.T) {
	p := testP255
	s := p.getScratchpad()
	s.d0[0] = 123
	p.putScratchpad(s)

	s2 := p.getScratchpad()
	defer p.putScratchpad(s2)
	for _, l := range s2.d0 {
		assert.Equal(t, int64(-1), l)
	}
}

func TestSign222Field(t *testing.T) {
	// testP222 has HighDigitBits != DigitBits, exercising the asymmetric
	// top-limb path through normalize/pack that testP255 (where they're
	// equal) cannot.
	p := testP222
	x := p.FromUint64(5)
	assert.Equal(t, 1, x.Sign())
	assert.Equal(t, -1, x.Signum())

	y := p.FromUint64(4)
	assert.Equal(t, 0, y.Sign())
	assert.Equal(t, 1, y.Signum())

	assert.Equal(t, 0, p.Zero().Signum())
}

func TestMaskAndOr(t *testing.T) {
	p := testP255
	allOnes := p.Mask(1)
	allZero := p.Mask(0)

	combined := p.New().Or(allZero, p.FromUint64(5))
	combined.Normalize(combined)
	assert.Equal(t, 1, combined.Equal(p.FromUint64(5)))

	for i, l := range allOnes.limb {
		if i == p.D-1 {
			assert.Equal(t, p.highDigitMask, l)
		} else {
			assert.Equal(t, p.digitMask, l)
		}
	}
}

func TestSelectIsBranchFree(t *testing.T) {
	p := testP255
	a := p.FromUint64(11)
	b := p.FromUint64(22)

	assert.Equal(t, 1, p.New().Select(a, b, 1).Equal(a))
	assert.Equal(t, 1, p.New().Select(a, b, 0).Equal(b))
}

func TestBitExtractsLowBit(t *testing.T) {
	p := testP255
	odd := p.FromUint64(7)
	even := p.FromUint64(8)
	assert.Equal(t, 1, odd.Bit(0))
	assert.Equal(t, 0, even.Bit(0))
}
