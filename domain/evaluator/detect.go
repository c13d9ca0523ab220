package evaluator

import (
	"math/bits"

	"github.com/olehougaard/equity/domain/card"
	"github.com/olehougaard/equity/internal/bitutil"
)

const (
	wheel    = 1<<5 - 1
	broadway = wheel << (card.AceIndex - card.FiveIndex)

	rankMask = card.RankMask
)

// withLowAces sets the low-ace alias of every ace in h.
func withLowAces(h card.Hand) card.Hand {
	return h | (h&card.AceMask)>>(card.AceIndex-card.LowAceIndex)
}

// fold ORs the four lanes of w into one.
func fold(w uint64) uint16 {
	return uint16(w) | uint16(w>>16) | uint16(w>>32) | uint16(w>>48)
}

func straightFlush(h card.Hand) Value {
	h = withLowAces(h)
	for pattern := card.Hand(broadway); pattern >= wheel; pattern >>= 1 {
		club := pattern << card.ClubOffset
		if h&club == club {
			return StraightFlush | Value(pattern)
		}
		diamond := pattern << card.DiamondOffset
		if h&diamond == diamond {
			return StraightFlush | Value(pattern)
		}
		heart := pattern << card.HeartOffset
		if h&heart == heart {
			return StraightFlush | Value(pattern)
		}
		spade := pattern << card.SpadeOffset
		if h&spade == spade {
			return StraightFlush | Value(pattern)
		}
	}
	return 0
}

// copies counts the suits holding the rank at lane index i.
func copies(h card.Hand, i uint8) int {
	c := uint64(h>>i) & uint64(card.AllSuits)
	c += c >> 32
	c += c >> 16
	return int(c & 0x7)
}

// kickersNeeded is indexed by category. Only the categories paired can
// produce are filled in.
var kickersNeeded = [...]int{
	HighCard:     5,
	OnePair:      3,
	TwoPairs:     1,
	ThreeOfAKind: 2,
	FullHouse:    0,
	FourOfAKind:  1,
}

func paired(h card.Hand) Value {
	h &= card.Mask
	w := uint64(h)
	// A rank sits in at least two lanes iff some pair of lanes, one or two
	// lane widths apart around the cycle, both hold it.
	dup := fold(w&bits.RotateLeft64(w, -card.LaneWidth)) | fold(w&bits.RotateLeft64(w, -2*card.LaneWidth))

	var (
		kind        Value
		msp, lsp    card.Rank
		counterfeit int
		buf         [16]uint8
	)
	for _, i := range bitutil.AppendIndices(buf[:0], dup) {
		rank := card.Rank(i + 1)
		switch copies(h, i) {
		case 4:
			if kind == Trips {
				counterfeit += 2
			} else if msp != 0 {
				counterfeit++
			}
			kind, msp, lsp = Quad, rank, 0
		case 3:
			switch {
			case kind == Quad:
				counterfeit += 2
			case msp != 0:
				kind, lsp, msp = Boat, msp, rank
			default:
				kind, msp = Trips, rank
			}
		case 2:
			switch {
			case kind == Quad:
				counterfeit++
			case kind == Boat:
				lsp = rank
			case kind == Trips:
				kind, lsp = Boat, rank
			case msp != 0:
				if lsp != 0 {
					counterfeit++
				}
				kind, lsp, msp = TwoPair, msp, rank
			default:
				msp = rank
			}
		}
	}

	category := HighCard
	switch {
	case kind != 0:
		category = kind.Category()
	case msp != 0:
		category = OnePair
	}
	need := kickersNeeded[category]

	pool := fold(w) &^ (rankBit(msp) | rankBit(lsp))
	n := bitutil.PopCount16(pool)
	// A counterfeited pair gives up its slot from the bottom of the pool, but
	// never below what the category keeps: its rank may still be the kicker.
	for ; counterfeit > 0 && n > need; counterfeit-- {
		pool &= pool - 1
		n--
	}
	for ; n > need; n-- {
		pool &= pool - 1
	}
	return kind | Value(msp)<<mspShift | Value(lsp)<<lspShift | Value(pool)
}

func rankBit(r card.Rank) uint16 {
	if r == 0 {
		return 0
	}
	return 1 << r.Index()
}

func flush(h card.Hand) Value {
	for _, s := range card.Suits {
		lane := h.Lane(s) & rankMask
		n := bitutil.PopCount16(lane)
		if n < 5 {
			continue
		}
		for ; n > 5; n-- {
			lane &= lane - 1
		}
		return Flush | Value(lane)
	}
	return 0
}

func straight(h card.Hand) Value {
	ranks := withLowAces(h).Ranks()
	for pattern := uint16(broadway); pattern >= wheel; pattern >>= 1 {
		if ranks&pattern == pattern {
			return Straight | Value(pattern)
		}
	}
	return 0
}
