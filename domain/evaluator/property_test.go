package evaluator

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olehougaard/equity/domain/card"
	"github.com/olehougaard/equity/domain/deck"
)

// deal returns n random hands of size cards each, reproducible from seed.
func deal(t testing.TB, seed string, n, size int) []card.Hand {
	t.Helper()
	d := deck.NewSeeded([]byte(seed))
	hands := make([]card.Hand, n)
	for i := range hands {
		d.Reset()
		d.Shuffle()
		h, err := d.DrawHand(size)
		require.NoError(t, err)
		hands[i] = h
	}
	return hands
}

// bestOfFive evaluates every five-card subset of h and keeps the best.
func bestOfFive(h card.Hand) Value {
	cards := h.Cards()
	var best Value
	var pick func(start, left int, acc card.Hand)
	pick = func(start, left int, acc card.Hand) {
		if left == 0 {
			if v := Evaluate(acc); v > best {
				best = v
			}
			return
		}
		for i := start; i <= len(cards)-left; i++ {
			pick(i+1, left-1, acc|cards[i].Bit())
		}
	}
	pick(0, 5, 0)
	return best
}

func TestSevenCardsEqualBestFive(t *testing.T) {
	for _, h := range deal(t, "best of five, seven cards", 3000, 7) {
		require.Equal(t, bestOfFive(h), Evaluate(h), "hand %s", h)
	}
}

func TestSixCardsEqualBestFive(t *testing.T) {
	for _, h := range deal(t, "best of five, six cards", 3000, 6) {
		require.Equal(t, bestOfFive(h), Evaluate(h), "hand %s", h)
	}
}

func TestCategoryDominance(t *testing.T) {
	var lo, hi [StraightFlushes + 1]Value
	var seen [StraightFlushes + 1]bool
	for _, h := range deal(t, "category dominance", 20000, 7) {
		v := Evaluate(h)
		require.LessOrEqual(t, bits.OnesCount64(uint64(v&categoryMask)), 1, "hand %s has several flags", h)
		c := v.Category()
		if !seen[c] || v < lo[c] {
			lo[c] = v
		}
		if !seen[c] || v > hi[c] {
			hi[c] = v
		}
		seen[c] = true
	}
	prev := -1
	for c := HighCard; c <= StraightFlushes; c++ {
		if !seen[c] {
			continue
		}
		if prev >= 0 {
			assert.Less(t, uint64(hi[prev]), uint64(lo[c]), "%v overlaps %v", Category(prev), c)
		}
		prev = int(c)
	}
	// Straight flushes and quads are too rare for the sample; check them by flag.
	assert.Greater(t, uint64(eval("2c", "3c", "4c", "5c", "Ac")), uint64(eval("Ac", "Ad", "Ah", "As", "Kc")))
	assert.Greater(t, uint64(eval("2c", "2d", "2h", "2s", "3c")), uint64(eval("Ac", "Ad", "Ah", "Ks", "Kc")))
	assert.Greater(t, uint64(eval("2c", "2d", "2h", "3s", "3c")), uint64(eval("Ac", "Kc", "Qc", "Jc", "9c")))
}

func TestStraightEdges(t *testing.T) {
	low := eval("Ac", "2d", "3h", "4s", "5c")
	six := eval("2d", "3h", "4s", "5c", "6d")
	broadway := eval("Tc", "Jd", "Qh", "Ks", "Ac")
	assert.Less(t, uint64(low), uint64(six))
	assert.Equal(t, Straight|wheel, low)
	for _, v := range []Value{low, six, eval("9c", "Td", "Jh", "Qs", "Kc"), eval("5c", "6d", "7h", "8s", "9c")} {
		assert.Less(t, uint64(v), uint64(broadway))
	}
	assert.Greater(t, uint64(eval("Tc", "Jc", "Qc", "Kc", "Ac")), uint64(eval("9d", "Td", "Jd", "Qd", "Kd")))
}

func TestKickerSaturation(t *testing.T) {
	five := eval("Qc", "Tc", "Jc", "Ac", "3c")
	assert.Equal(t, five, eval("Qc", "Tc", "Jc", "Ac", "3c", "2c"))
	assert.Equal(t, five, eval("Qc", "Tc", "Jc", "Ac", "3c", "2c", "Jd"))
	pair := eval("Ac", "Ad", "Kh", "Qs", "9c")
	assert.Equal(t, pair, eval("Ac", "Ad", "Kh", "Qs", "9c", "4d", "2h"))
}

func TestEvaluateDoesNotAllocate(t *testing.T) {
	hands := deal(t, "allocations", 64, 7)
	var sink Value
	allocs := testing.AllocsPerRun(100, func() {
		for _, h := range hands {
			sink |= Evaluate(h)
		}
	})
	assert.Zero(t, allocs)
	_ = sink
}

func BenchmarkEvaluate7(b *testing.B) {
	hands := deal(b, "benchmark", 1<<12, 7)
	b.ResetTimer()
	var sink Value
	for i := 0; i < b.N; i++ {
		sink ^= Evaluate(hands[i&(len(hands)-1)])
	}
	_ = sink
}

func BenchmarkEvaluate5(b *testing.B) {
	hands := deal(b, "benchmark", 1<<12, 5)
	b.ResetTimer()
	var sink Value
	for i := 0; i < b.N; i++ {
		sink ^= Evaluate(hands[i&(len(hands)-1)])
	}
	_ = sink
}
