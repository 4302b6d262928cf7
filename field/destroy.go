package field

// Destroy overwrites every limb of e with all-ones bits, the scrubbing
// discipline spec.md §3 and §4.6 require of any element that held a
// cryptographic secret. After Destroy, e must not be used again except
// to be destroyed a second time (idempotent) or reassigned with Set.
//
//go:noinline
func (e *Element) Destroy() {
	for i := range e.limb {
		e.limb[i] = -1
	}
}
