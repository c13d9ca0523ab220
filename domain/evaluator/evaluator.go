package evaluator

import "github.com/olehougaard/equity/domain/card"

// Evaluate returns the strength of h, a hand of two to seven cards.
//
// Hands outside that range, or words the card encoding would never produce,
// are not rejected; they yield whatever the bit arithmetic gives, typically
// a weak high-card Value.
func Evaluate(h card.Hand) Value {
	if sf := straightFlush(h); sf != 0 {
		return sf
	}
	pairs := paired(h)
	if pairs&(Quad|Boat) != 0 {
		return pairs
	}
	if f := flush(h); f != 0 {
		return f
	}
	if s := straight(h); s != 0 {
		return s
	}
	return pairs
}

// Compare returns 1 if a beats b, -1 if b beats a and 0 on a tie.
func Compare(a, b card.Hand) int {
	va, vb := Evaluate(a), Evaluate(b)
	switch {
	case va > vb:
		return 1
	case va < vb:
		return -1
	default:
		return 0
	}
}
