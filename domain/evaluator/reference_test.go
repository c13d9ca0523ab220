package evaluator

import (
	"testing"

	"github.com/paulhankin/poker"
	"github.com/stretchr/testify/require"

	"github.com/olehougaard/equity/domain/card"
)

// reference scores a seven-card hand with an independent evaluator.
func reference(t *testing.T, h card.Hand) int16 {
	t.Helper()
	cards := h.Cards()
	require.Len(t, cards, 7)
	var final [7]poker.Card
	for i, c := range cards {
		rank := poker.Rank(c.Rank())
		if c.Rank() == card.Ace {
			rank = 1
		}
		pc, err := poker.MakeCard(poker.Suit(c.Suit()), rank)
		require.NoError(t, err)
		final[i] = pc
	}
	return poker.Eval7(&final)
}

func sign[T int16 | Value](a, b T) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

func TestOrderMatchesReference(t *testing.T) {
	hands := deal(t, "reference order", 20000, 7)
	for i := 1; i < len(hands); i++ {
		a, b := hands[i-1], hands[i]
		expected := sign(reference(t, a), reference(t, b))
		got := sign(Evaluate(a), Evaluate(b))
		require.Equal(t, expected, got, "%s (%v) vs %s (%v)", a, Evaluate(a), b, Evaluate(b))
	}
}

func TestTiesMatchReference(t *testing.T) {
	// Hands sharing a five-card board tie far more often than random deals.
	board := card.MustParseHand("Ac", "Kd", "Qh", "Js", "9c")
	holes := [][]string{
		{"2c", "3d"}, {"2h", "3s"}, {"4c", "5d"}, {"Tc", "2d"}, {"Th", "3c"},
		{"Ad", "2s"}, {"Ah", "3h"}, {"9d", "9h"}, {"8c", "7d"}, {"8h", "6s"},
	}
	for i := range holes {
		for j := range holes {
			a := board | card.MustParseHand(holes[i]...)
			b := board | card.MustParseHand(holes[j]...)
			expected := sign(reference(t, a), reference(t, b))
			require.Equal(t, expected, Compare(a, b), "%s vs %s", a, b)
		}
	}
}
