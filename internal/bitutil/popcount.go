package bitutil

const (
	m1 uint16 = 0x5555
	m2 uint16 = 0x3333
	m4 uint16 = 0x0f0f
	m8 uint16 = 0x00ff
)

// PopCount16 returns the number of set bits in w by summing adjacent 1, 2, 4
// and 8 bit fields in place.
func PopCount16(w uint16) int {
	w = (w & m1) + ((w >> 1) & m1)
	w = (w & m2) + ((w >> 2) & m2)
	w = (w & m4) + ((w >> 4) & m4)
	w = (w & m8) + ((w >> 8) & m8)
	return int(w)
}
