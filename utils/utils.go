// Package utils holds the tiny alloc-free helpers shared by the table core,
// the debug logger and the demo harness: byte/string casts, manual integer
// formatting, and direct fd-2 writers that bypass fmt entirely.
package utils

import (
	"syscall"
	"unsafe"
)

///////////////////////////////////////////////////////////////////////////////
// Zero-alloc conversions
///////////////////////////////////////////////////////////////////////////////

// B2s converts a []byte to string without an allocation.
// ⚠️ Caller must ensure the input slice remains valid and unchanged.
//
//go:nosplit
//go:inline
func B2s(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// s2b is the inverse view: the string's bytes without a copy.
//
//go:nosplit
//go:inline
func s2b(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

///////////////////////////////////////////////////////////////////////////////
// Manual integer formatting — no strconv, no fmt
///////////////////////////////////////////////////////////////////////////////

// Itoa formats a signed integer into a fresh string. Used on cold logging
// paths where pulling in strconv's tables buys nothing.
func Itoa(n int) string {
	if n == 0 {
		return "0"
	}

	var buf [20]byte // enough for -9223372036854775808
	i := len(buf)
	neg := n < 0
	u := uint64(n)
	if neg {
		u = uint64(-n)
	}
	for u > 0 {
		i--
		buf[i] = byte('0' + u%10)
		u /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

///////////////////////////////////////////////////////////////////////////////
// Direct console writers — fd 2, no buffering, no fmt
///////////////////////////////////////////////////////////////////////////////

// PrintWarning writes msg straight to stderr. No locking: intended for the
// single-threaded cold paths (diagnostics, bucket dumps, startup narration).
//
//go:nosplit
func PrintWarning(msg string) {
	syscall.Write(2, s2b(msg))
}

// PrintError is PrintWarning with an "ERROR: " tag for failure diagnostics.
func PrintError(msg string) {
	PrintWarning("ERROR: " + msg)
}
