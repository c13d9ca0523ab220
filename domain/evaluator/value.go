package evaluator

import (
	"fmt"
	"math/bits"

	"github.com/olehougaard/equity/domain/card"
)

// Value is the strength of a hand. Values compare with ordinary integer
// comparison.
type Value uint64

const (
	kickerShift   = 0
	lspShift      = kickerShift + card.AceIndex + 1
	mspShift      = lspShift + 4
	twoPairShift  = mspShift + 4
	tripsShift    = twoPairShift + 1
	straightShift = tripsShift + 1
	flushShift    = straightShift + 1
	boatShift     = flushShift + 1
	quadShift     = boatShift + 1
	sfShift       = quadShift + 1
)

const (
	KickerMask Value = 1<<lspShift - 1
	LSPMask    Value = 0xf << lspShift
	MSPMask    Value = 0xf << mspShift

	TwoPair       Value = 1 << twoPairShift
	Trips         Value = 1 << tripsShift
	Straight      Value = 1 << straightShift
	Flush         Value = 1 << flushShift
	Boat          Value = 1 << boatShift
	Quad          Value = 1 << quadShift
	StraightFlush Value = 1 << sfShift

	categoryMask = TwoPair | Trips | Straight | Flush | Boat | Quad | StraightFlush
)

// Category is the class of a hand, weakest first.
type Category uint8

const (
	HighCard Category = iota
	OnePair
	TwoPairs
	ThreeOfAKind
	Straights
	Flushes
	FullHouse
	FourOfAKind
	StraightFlushes
)

var categoryNames = [...]string{
	HighCard:        "high card",
	OnePair:         "one pair",
	TwoPairs:        "two pair",
	ThreeOfAKind:    "three of a kind",
	Straights:       "straight",
	Flushes:         "flush",
	FullHouse:       "full house",
	FourOfAKind:     "four of a kind",
	StraightFlushes: "straight flush",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// Category decodes the class of the hand from its flag bits.
func (v Value) Category() Category {
	flags := v & categoryMask
	if flags == 0 {
		if v.MSP() != 0 {
			return OnePair
		}
		return HighCard
	}
	// Exactly one flag is set for any Value produced by Evaluate.
	return Category(bits.Len64(uint64(flags)) - twoPairShift + int(TwoPairs) - 1)
}

// MSP returns the rank of the most significant pair, or 0 if there is none.
// For trips and quads it is the rank of the set, for a full house the rank
// of the trips.
func (v Value) MSP() card.Rank {
	return card.Rank((v & MSPMask) >> mspShift)
}

// LSP returns the rank of the least significant pair, or 0 if there is none.
func (v Value) LSP() card.Rank {
	return card.Rank((v & LSPMask) >> lspShift)
}

// Kickers returns the rank bits kept in the kicker field. For straights and
// flushes these are the five ranks of the hand.
func (v Value) Kickers() uint16 {
	return uint16(v & KickerMask)
}

// KickerRanks lists the ranks in the kicker field, highest first. A low
// ace alias is reported as an ace.
func (v Value) KickerRanks() []card.Rank {
	k := v.Kickers()
	ranks := make([]card.Rank, 0, bits.OnesCount16(k))
	for k != 0 {
		i := 15 - bits.LeadingZeros16(k)
		k &^= 1 << i
		if i == card.LowAceIndex {
			ranks = append(ranks, card.Ace)
			continue
		}
		ranks = append(ranks, card.Rank(i+1))
	}
	return ranks
}

// high returns the top rank of a five-card run held in the kicker field.
func (v Value) high() card.Rank {
	return card.Rank(bits.Len16(v.Kickers()))
}

func (v Value) String() string {
	switch c := v.Category(); c {
	case StraightFlushes:
		if v.high() == card.Ace {
			return "royal flush"
		}
		return fmt.Sprintf("%s, %s high", c, v.high().Name())
	case FourOfAKind:
		return fmt.Sprintf("%s, %s", c, v.MSP().Plural())
	case FullHouse:
		return fmt.Sprintf("%s, %s full of %s", c, v.MSP().Plural(), v.LSP().Plural())
	case Flushes:
		return fmt.Sprintf("%s, %s", c, joinRanks(v.KickerRanks()))
	case Straights:
		return fmt.Sprintf("%s, %s high", c, v.high().Name())
	case ThreeOfAKind:
		return fmt.Sprintf("%s, %s", c, v.MSP().Plural())
	case TwoPairs:
		return fmt.Sprintf("%s, %s and %s", c, v.MSP().Plural(), v.LSP().Plural())
	case OnePair:
		return fmt.Sprintf("%s, %s", c, v.MSP().Plural())
	default:
		return fmt.Sprintf("%s, %s", c, joinRanks(v.KickerRanks()))
	}
}

func joinRanks(ranks []card.Rank) string {
	b := make([]byte, 0, 2*len(ranks))
	for i, r := range ranks {
		if i > 0 {
			b = append(b, '-')
		}
		b = append(b, r.Letter())
	}
	return string(b)
}
