package field

import (
	"errors"
	"fmt"
	"io"
)

// SetBytes sets v to the value encoded by x, a little-endian byte slice of
// exactly v.Params().PackedBytes bytes, and returns v. v must already be
// bound to a field (e.g. via [Params.New]). Unpack does not reduce modulo
// p: bits at or above position N are accepted as-is and contribute to a
// loose value, per spec.md §4.5 and §6.
//
// If len(x) != PackedBytes, SetBytes returns [ErrInvalidLength] and leaves
// v unspecified.
func (v *Element) SetBytes(x []byte) (*Element, error) {
	p := v.p
	if len(x) != p.PackedBytes {
		return nil, ErrInvalidLength
	}
	words := bytesToWords(x)
	v.limb = wordsToLimbs(words, p.D, p.DigitBits)
	return v, nil
}

// SetReader reads exactly PackedBytes bytes from r and sets v to the
// decoded element, matching [Element.SetBytes]'s unpack semantics. v must
// already be bound to a field. A short read is reported as
// [ErrInvalidLength] wrapping the underlying io.ErrUnexpectedEOF / io.EOF.
func (v *Element) SetReader(r io.Reader) error {
	buf := make([]byte, v.p.PackedBytes)
	if _, err := io.ReadFull(r, buf); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLength, err)
	}
	_, err := v.SetBytes(buf)
	return err
}

// Bytes returns the canonical little-endian encoding of e as exactly
// PackedBytes bytes. e is normalized first, composing the "normalize +
// normalizedPack" operation spec.md §4.5 describes as the path from a
// loose value to a serialized one.
func (e *Element) Bytes() []byte {
	norm := e.p.normalize(e.limb)
	words := limbsToWords(norm, e.p.DigitBits)
	return wordsToBytesFixed(words, e.p.PackedBytes)
}

// FillBytes writes e's canonical encoding into buf and returns buf. It
// panics if buf is shorter than PackedBytes.
func (e *Element) FillBytes(buf []byte) []byte {
	if len(buf) < e.p.PackedBytes {
		panic("field: buffer too short for FillBytes")
	}
	b := e.Bytes()
	copy(buf, b)
	for i := len(b); i < len(buf); i++ {
		buf[i] = 0
	}
	return buf
}

// WriteTo writes e's canonical PackedBytes encoding to w and returns the
// number of bytes written, satisfying io.WriterTo.
func (e *Element) WriteTo(w io.Writer) (int64, error) {
	b := e.Bytes()
	n, err := w.Write(b)
	if err == nil && n != len(b) {
		err = errors.Join(ErrShortWrite, io.ErrShortWrite)
	}
	return int64(n), err
}

// String returns e's canonical value as a big-endian-looking hex string,
// independent of the little-endian wire encoding [Element.Bytes] produces
// — a debugging aid only, not a serialization format.
func (e *Element) String() string {
	b := e.Bytes()
	be := make([]byte, len(b))
	for i, x := range b {
		be[len(b)-1-i] = x
	}
	return fmt.Sprintf("%x", be)
}
