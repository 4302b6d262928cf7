// Package field implements unsaturated-limb arithmetic modulo primes of the
// form p = 2^n - c, the pseudo-Mersenne shape used by a family of
// elliptic-curve base fields (Curve25519, Curve1174, E-222, E-383,
// Curve41417, M-511, and others).
//
// A single [Params] value describes one concrete field's shape (n, c, limb
// count, digit widths, and the compiled power-ladder exponents); [Element]
// is the shared representation operated on by every instantiation. Concrete
// fields live under the sibling fields/ packages, each binding a package
// level *Params and exposing the constructor surface callers expect for a
// named field type.
//
// Every kernel is constant-time: the sequence of arithmetic operations and
// branches depends only on a field's shape (n, c, limb count), never on
// limb contents. There is no variable-time fast path, no big.Int fallback
// in the arithmetic hot path, and no assembly; every kernel is portable
// 64-bit Go.
package field
