package field

import (
	"fmt"
	"math/big"
	"sync"
)

// sqrtKind selects which fixed ladder Sqrt and InvSqrt use, determined by
// the modulus's residue mod 4 and mod 8. Only the two shapes actually
// occurring among pseudo-Mersenne curve moduli are supported; a modulus
// that is 1 mod 8 would need general Tonelli-Shanks, which this engine
// does not implement (Non-goal: no arbitrary moduli support).
type sqrtKind int

const (
	sqrtMod4 sqrtKind = iota // p ≡ 3 (mod 4): sqrt(x) = x^((p+1)/4)
	sqrtMod8                 // p ≡ 5 (mod 8): sqrt(x) = x^((p+3)/8), corrected
)

// Params describes the shape of one pseudo-Mersenne field p = 2^N - C and
// carries everything derived from that shape once, at construction time:
// limb geometry, the bias used to keep subtraction non-negative, and the
// compiled bit patterns of every power ladder. All of it is immutable
// after [NewParams] returns, so a *Params is safe for concurrent use by
// many goroutines even though the [Element]s built from it are not.
type Params struct {
	Name string

	N int   // bit width of the modulus
	C int64 // p = 2^N - C

	D             int // number of limbs
	DigitBits     int // value bits in limbs [0, D-2]
	HighDigitBits int // value bits in limb D-1
	MulDigitBits  int // half-limb width used to size the scalar bounds
	PackedBytes   int // ceil(N/8)

	digitMask     int64
	highDigitMask int64

	p *big.Int

	mod4 int
	mod8 int
	kind sqrtKind

	hasQuartic bool

	// bias is a loose, non-negative encoding of 4p in this field's limb
	// radix, added before every subtraction. Limb sums inside addSub can
	// still go negative and borrow through its arithmetic right shift.
	bias []int64

	invExp      []uint8 // bits of p-2, MSB first
	legendreExp []uint8 // bits of (p-1)/2
	sqrtExp     []uint8 // bits of (p+1)/4 or (p+3)/8
	quarticExp  []uint8 // bits of (p-1)/4, only when hasQuartic
	invSqrtExp  []uint8 // bits of (3p-5)/4 or (p-5)/8

	// correction is 2^((p-1)/4) mod p, precomputed via the quartic ladder
	// applied to the literal 2. Only populated when kind == sqrtMod8.
	correction *Element

	// scratchPool is the per-field scratchpad cache; see scratch.go.
	scratchPool *sync.Pool
}

// NewParams builds the parameter set for a field p = 2^n - c, choosing a
// limb count from targetDigitBits (the desired width of a non-top limb;
// the actual width is rounded so limbs divide n as evenly as possible).
//
// NewParams panics if the resulting shape is internally inconsistent or if
// p is not 1 or 3 mod 4 support can't be derived (the modulus must be 3
// mod 4 or 5 mod 8) — this is a configuration-time fault, not a runtime
// one: it can only be triggered by a bad parameter table, never by field
// arithmetic on untrusted input.
func NewParams(name string, n int, c int64, targetDigitBits int) *Params {
	if n <= 0 || c <= 0 || targetDigitBits <= 0 {
		panic("field: invalid parameters")
	}

	p := new(big.Int).Lsh(big.NewInt(1), uint(n))
	p.Sub(p, big.NewInt(c))
	if p.Sign() <= 0 {
		panic("field: c too large for n")
	}

	d := (n + targetDigitBits - 1) / targetDigitBits
	digitBits := (n + d - 1) / d
	highDigitBits := n - (d-1)*digitBits
	if highDigitBits <= 0 || digitBits >= 64 {
		panic("field: degenerate limb geometry")
	}
	mulDigitBits := (digitBits + 1) / 2

	four := new(big.Int).Mod(p, big.NewInt(4))
	eight := new(big.Int).Mod(p, big.NewInt(8))

	pp := &Params{
		Name:          name,
		N:             n,
		C:             c,
		D:             d,
		DigitBits:     digitBits,
		HighDigitBits: highDigitBits,
		MulDigitBits:  mulDigitBits,
		PackedBytes:   (n + 7) / 8,
		digitMask:     (int64(1) << digitBits) - 1,
		highDigitMask: (int64(1) << highDigitBits) - 1,
		p:             p,
		mod4:          int(four.Int64()),
		mod8:          int(eight.Int64()),
	}
	pp.scratchPool = newScratchPool(d)

	switch pp.mod4 {
	case 3:
		pp.kind = sqrtMod4
	case 1:
		if pp.mod8 != 5 {
			panic(fmt.Sprintf("field %s: unsupported modulus residue p mod 8 = %d (need 3 mod 4 or 5 mod 8)", name, pp.mod8))
		}
		pp.kind = sqrtMod8
		pp.hasQuartic = true
	default:
		panic(fmt.Sprintf("field %s: p mod 4 = %d, expected 1 or 3", name, pp.mod4))
	}

	one := big.NewInt(1)
	pMinus1 := new(big.Int).Sub(p, one)

	pp.invExp = expBits(new(big.Int).Sub(p, big.NewInt(2)))
	pp.legendreExp = expBits(new(big.Int).Rsh(pMinus1, 1))

	switch pp.kind {
	case sqrtMod4:
		sqrtExp := new(big.Int).Add(p, one)
		sqrtExp.Rsh(sqrtExp, 2)
		pp.sqrtExp = expBits(sqrtExp)

		invSqrtExp := new(big.Int).Mul(p, big.NewInt(3))
		invSqrtExp.Sub(invSqrtExp, big.NewInt(5))
		invSqrtExp.Rsh(invSqrtExp, 2)
		pp.invSqrtExp = expBits(invSqrtExp)
	case sqrtMod8:
		sqrtExp := new(big.Int).Add(p, big.NewInt(3))
		sqrtExp.Rsh(sqrtExp, 3)
		pp.sqrtExp = expBits(sqrtExp)

		quarticExp := new(big.Int).Rsh(pMinus1, 2)
		pp.quarticExp = expBits(quarticExp)

		invSqrtExp := new(big.Int).Sub(p, big.NewInt(5))
		invSqrtExp.Rsh(invSqrtExp, 3)
		pp.invSqrtExp = expBits(invSqrtExp)
	}

	pp.bias = biasLimbs(p, d, digitBits)

	if pp.kind == sqrtMod8 {
		two := pp.FromUint64(2)
		pp.correction = pp.powLadder(two, pp.quarticExp)
	}

	return pp
}

// expBits returns the bits of x, most-significant first, with leading
// zero bits trimmed. x must be non-negative.
func expBits(x *big.Int) []uint8 {
	bl := x.BitLen()
	bits := make([]uint8, bl)
	for i := 0; i < bl; i++ {
		bits[i] = uint8(x.Bit(bl - 1 - i))
	}
	return bits
}

// packBig packs a non-negative big.Int into d limbs of digitBits value
// bits each; the top limb is left unmasked, holding whatever bits spill
// past digit d-1's nominal width. For an exact n-bit value (such as p
// itself) that spill is empty. For a deliberately oversized value (such
// as the subtraction bias below) it is exactly the loose residual carry
// the data model allows.
func packBig(x *big.Int, d, digitBits int) []int64 {
	limbs := make([]int64, d)
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(digitBits)), big.NewInt(1))
	t := new(big.Int).Set(x)
	for i := 0; i < d-1; i++ {
		limb := new(big.Int).And(t, mask)
		limbs[i] = limb.Int64()
		t.Rsh(t, uint(digitBits))
	}
	limbs[d-1] = t.Int64()
	return limbs
}

// biasLimbs packs 4p into the field's limb radix — a loose, non-negative
// encoding of zero (mod p) that every subtraction adds in. addSub folds
// its top-limb carry-out into limb 0 like any other operand's.
func biasLimbs(p *big.Int, d, digitBits int) []int64 {
	fourP := new(big.Int).Lsh(p, 2)
	return packBig(fourP, d, digitBits)
}

// Modulus returns a copy of p = 2^n - c.
func (pp *Params) Modulus() *big.Int {
	return new(big.Int).Set(pp.p)
}
