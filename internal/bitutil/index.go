// Package bitutil holds the branch-free bit tricks used by the evaluator on
// 16-bit suit lanes.
package bitutil

// deBruijn16 is a 16-bit de Bruijn sequence: every 4-bit window of it is
// distinct, so multiplying it by a power of two and keeping the top nibble
// identifies the power.
const deBruijn16 uint16 = 0b0000111101100101

// deBruijnIndex maps the top nibble of deBruijn16<<i back to i.
var deBruijnIndex = [16]uint8{0, 1, 11, 2, 14, 12, 8, 3, 15, 10, 13, 7, 9, 6, 5, 4}

// IndexOf returns the position of the single set bit in w.
// The result is unspecified if w has zero or more than one bit set.
func IndexOf(w uint16) uint8 {
	return deBruijnIndex[(w*deBruijn16)>>12]
}

// AppendIndices appends the position of every set bit in w to dst, lowest
// first, and returns the extended slice. Passing a stack buffer such as
// buf[:0] keeps the call allocation free.
func AppendIndices(dst []uint8, w uint16) []uint8 {
	for w != 0 {
		dst = append(dst, IndexOf(w&-w))
		w &= w - 1
	}
	return dst
}
