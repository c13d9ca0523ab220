package card

import (
	"fmt"
	"math/bits"
	"strings"
)

// Hand is a set of cards packed one bit per card into four suit lanes.
type Hand uint64

// NewHand packs cards into a Hand. Repeated cards collapse into one bit.
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h |= c.Bit()
	}
	return h
}

// ParseHand parses each notation with ParseCard and packs the result.
func ParseHand(notations ...string) (Hand, error) {
	var h Hand
	for _, n := range notations {
		c, err := ParseCard(n)
		if err != nil {
			return 0, err
		}
		if h.Contains(c) {
			return 0, fmt.Errorf("%w: %s", ErrDuplicateCard, c.Notation())
		}
		h |= c.Bit()
	}
	return h, nil
}

// MustParseHand is like ParseHand but panics on invalid notation. It is
// meant for fixtures.
func MustParseHand(notations ...string) Hand {
	h, err := ParseHand(notations...)
	if err != nil {
		panic(err)
	}
	return h
}

// Len returns the number of cards in h, ignoring low-ace aliases.
func (h Hand) Len() int {
	return bits.OnesCount64(uint64(h & Mask))
}

// Contains reports whether c is part of h.
func (h Hand) Contains(c Card) bool {
	return h&c.Bit() != 0
}

// Lane returns the rank bits held in suit s.
func (h Hand) Lane(s Suit) uint16 {
	return uint16(h >> s.Offset())
}

// Ranks returns the rank bits present in any suit.
func (h Hand) Ranks() uint16 {
	return h.Lane(Club) | h.Lane(Diamond) | h.Lane(Heart) | h.Lane(Spade)
}

// Cards unpacks h, ordered by suit and then by ascending rank.
func (h Hand) Cards() []Card {
	cards := make([]Card, 0, h.Len())
	for _, s := range Suits {
		lane := h.Lane(s) & RankMask
		for lane != 0 {
			i := bits.TrailingZeros16(lane)
			cards = append(cards, Card{suit: s, rank: Rank(i + 1)})
			lane &= lane - 1
		}
	}
	return cards
}

// String lists the cards of h in notation form separated by spaces.
func (h Hand) String() string {
	cards := h.Cards()
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.Notation()
	}
	return strings.Join(parts, " ")
}
