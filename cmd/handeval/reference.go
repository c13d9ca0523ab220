package main

import (
	"fmt"

	"github.com/paulhankin/poker"

	"github.com/olehougaard/equity/domain/card"
)

// describeReference names a seven-card hand with the paulhankin/poker
// evaluator, as a second opinion next to our own description.
func describeReference(h card.Hand) (string, error) {
	cards := h.Cards()
	if len(cards) != maxCards {
		return "", fmt.Errorf("reference needs %d cards, got %d", maxCards, len(cards))
	}
	final := make([]poker.Card, len(cards))
	for i, c := range cards {
		rank := poker.Rank(c.Rank())
		if c.Rank() == card.Ace {
			rank = 1
		}
		pc, err := poker.MakeCard(poker.Suit(c.Suit()), rank)
		if err != nil {
			return "", fmt.Errorf("invalid card %s: %w", c.Notation(), err)
		}
		final[i] = pc
	}
	return poker.Describe(final)
}
