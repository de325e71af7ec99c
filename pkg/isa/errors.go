package isa

import "errors"

// ErrDecode is the sentinel wrapped by every operand-classification
// failure: a raw cell outside the ranges §3 of the spec defines.
var ErrDecode = errors.New("isa: decode error")
