package field

import "errors"

// ErrInvalidLength is returned by SetBytes and SetReader when the supplied
// data is not exactly PackedBytes long. The receiver is left in an
// unspecified but safe state and should be discarded, per spec.md §7.
var ErrInvalidLength = errors.New("field: invalid element encoding length")

// ErrShortWrite is returned by WriteTo's underlying writer contract when
// fewer than PackedBytes bytes could be written.
var ErrShortWrite = errors.New("field: short write of packed element")
