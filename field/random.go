package field

import (
	"encoding/binary"
	"fmt"
	"io"
)

// SetRandom sets v to D random 64-bit words read from r, masking the top
// word to HighDigitBits, and returns v. v must already be bound to a
// field. Per spec.md §3's lifecycle and §9's open question, this does not
// reject values >= p: the resulting distribution is uniform modulo 2^N
// but biased modulo p by a factor of at most 2^N/p - 1, which is
// negligible for these field sizes but not exactly zero. Callers that
// need unbiased field samples (e.g. scalar generation) must correct for
// this themselves; the engine documents the bias rather than rejection-
// sampling internally, since rejection sampling is variable-time in the
// number of reads.
func (v *Element) SetRandom(r io.Reader) error {
	p := v.p
	limb := make([]int64, p.D)
	var word [8]byte
	for i := 0; i < p.D; i++ {
		if _, err := io.ReadFull(r, word[:]); err != nil {
			return fmt.Errorf("field: random read: %w", err)
		}
		w := binary.LittleEndian.Uint64(word[:])
		if i == p.D-1 {
			w &= uint64(p.highDigitMask)
		}
		limb[i] = int64(w)
	}
	v.limb = limb
	return nil
}
