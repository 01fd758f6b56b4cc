package bitword

import "errors"

// ErrBitsOutOfRange is returned by New when the requested signature length
// does not fit within MaxBits.
var ErrBitsOutOfRange = errors.New("bitword: bit length out of range")

// ErrBitIndexOutOfRange is returned by SetBit/Bit when the bit index is
// negative or beyond the word's configured length.
var ErrBitIndexOutOfRange = errors.New("bitword: bit index out of range")

// ErrLengthMismatch is returned by HammingDistance when comparing two words
// configured with a different number of bits.
var ErrLengthMismatch = errors.New("bitword: length mismatch")
