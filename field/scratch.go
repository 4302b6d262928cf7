package field

import "sync"

// scratchpad is the three-buffer work area spec.md §4.6 describes:
// normalize stages two intermediate values (d0, d1) and Legendre stages a
// read-only copy of its input (d0) while the ladder runs; Div stages the
// divisor before inverting it. Buffers are D limbs wide, matching the
// field they were drawn from.
type scratchpad struct {
	d0, d1, d2 []int64
}

// scrub overwrites every buffer with all-ones, the same "distinguishable
// from fresh zero" fill [Element.Destroy] uses, so an idle scratchpad
// never holds a stale secret between uses.
func (s *scratchpad) scrub() {
	for _, buf := range [][]int64{s.d0, s.d1, s.d2} {
		for i := range buf {
			buf[i] = -1
		}
	}
}

// getScratchpad borrows a scratchpad sized for pp from the per-field pool.
// The pool is Go's idiomatic stand-in for spec.md §4.6's "per-thread
// cache, at most one idle scratchpad, lazily initialized on first use":
// sync.Pool hands out at most one value to any one goroutine at a time
// and reuses values local to the calling P, so two goroutines never
// observe the same scratchpad simultaneously without the caller having to
// manage thread-local storage by hand.
func (pp *Params) getScratchpad() *scratchpad {
	return pp.scratchPool.Get().(*scratchpad)
}

// putScratchpad scrubs s and returns it to pp's pool. Every caller of
// getScratchpad must defer this.
func (pp *Params) putScratchpad(s *scratchpad) {
	s.scrub()
	pp.scratchPool.Put(s)
}

func newScratchPool(d int) *sync.Pool {
	return &sync.Pool{
		New: func() any {
			return &scratchpad{
				d0: make([]int64, d),
				d1: make([]int64, d),
				d2: make([]int64, d),
			}
		},
	}
}
