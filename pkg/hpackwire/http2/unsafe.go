package http2

import "unsafe"

// bytesToString reinterprets b as a string without copying.
//
// The caller must not retain b beyond the returned string's lifetime, and
// must not mutate b afterward: strings are assumed immutable throughout
// the rest of the package.
//
//go:inline
func bytesToString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// stringToBytes reinterprets s as a []byte without copying. The result
// must never be written to.
//
//go:inline
func stringToBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
