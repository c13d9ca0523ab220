package card

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

var (
	ErrInvalidCard   = errors.New("invalid card")
	ErrDuplicateCard = errors.New("duplicate card")
)

// Suit identifies one of the four lanes of a Hand.
type Suit uint8

const (
	Club    Suit = iota // ♣ (black)
	Diamond             // ♦ (red)
	Heart               // ♥ (red)
	Spade               // ♠ (black)
)

// Suits lists every suit in lane order.
var Suits = [4]Suit{Club, Diamond, Heart, Spade}

// Offset returns the position of the suit's lane inside a Hand.
func (s Suit) Offset() uint {
	return uint(s) * LaneWidth
}

// Letter returns the lowercase notation letter of the suit.
func (s Suit) Letter() byte {
	if s > Spade {
		return '?'
	}
	return "cdhs"[s]
}

func (s Suit) symbol() string {
	switch s {
	case Club:
		return pterm.Black("♣")
	case Diamond:
		return pterm.LightRed("♦")
	case Heart:
		return pterm.LightRed("♥")
	case Spade:
		return pterm.Black("♠")
	default:
		return "?"
	}
}

// Rank is the pip value of a card, Deuce (2) through Ace (14).
type Rank uint8

const (
	Deuce Rank = iota + 2
	Trey
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const rankLetters = "23456789TJQKA"

// Index returns the bit position of the rank inside a lane.
func (r Rank) Index() uint {
	return uint(r) - 1
}

// Valid reports whether r is one of the thirteen ranks.
func (r Rank) Valid() bool {
	return r >= Deuce && r <= Ace
}

// Letter returns the notation letter of the rank.
func (r Rank) Letter() byte {
	if !r.Valid() {
		return '?'
	}
	return rankLetters[r-Deuce]
}

// Name returns the English name of the rank, e.g. "jack".
func (r Rank) Name() string {
	if !r.Valid() {
		return "?"
	}
	return rankNames[r-Deuce]
}

// Plural returns the plural English name of the rank, e.g. "sixes".
func (r Rank) Plural() string {
	if r == Six {
		return "sixes"
	}
	return r.Name() + "s"
}

var rankNames = [...]string{"deuce", "trey", "four", "five", "six", "seven", "eight", "nine", "ten", "jack", "queen", "king", "ace"}

// Card represents a playing card with suit and rank.
type Card struct {
	suit Suit
	rank Rank
}

// NewCard creates a new Card with validation.
func NewCard(suit Suit, rank Rank) (Card, error) {
	if suit > Spade || !rank.Valid() {
		return Card{}, fmt.Errorf("%w: suit %d, rank %d", ErrInvalidCard, suit, rank)
	}
	return Card{suit: suit, rank: rank}, nil
}

// ParseCard parses rank+suit notation such as "Ac", "Td" or "10h".
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	rankPart, suitPart := strings.ToUpper(s[:len(s)-1]), s[len(s)-1]
	if rankPart == "10" {
		rankPart = "T"
	}
	if len(rankPart) != 1 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	i := strings.IndexByte(rankLetters, rankPart[0])
	if i < 0 {
		return Card{}, fmt.Errorf("%w: unknown rank in %q", ErrInvalidCard, s)
	}
	j := strings.IndexByte("cdhs", suitPart|0x20)
	if j < 0 {
		return Card{}, fmt.Errorf("%w: unknown suit in %q", ErrInvalidCard, s)
	}
	return Card{suit: Suit(j), rank: Deuce + Rank(i)}, nil
}

// Suit returns the suit of the Card.
func (c Card) Suit() Suit {
	return c.suit
}

// Rank returns the rank of the Card.
func (c Card) Rank() Rank {
	return c.rank
}

// Bit returns the single-card Hand holding c.
func (c Card) Bit() Hand {
	return 1 << (c.suit.Offset() + c.rank.Index())
}

// Notation returns the two-letter form of the card, e.g. "Ac".
func (c Card) Notation() string {
	return string([]byte{c.rank.Letter(), c.suit.Letter()})
}

// String renders the card with a coloured suit symbol.
func (c Card) String() string {
	return string(c.rank.Letter()) + c.suit.symbol()
}

// All returns the 52 cards ordered by suit and then by ascending rank.
func All() []Card {
	cards := make([]Card, 0, len(Suits)*13)
	for _, s := range Suits {
		for r := Deuce; r <= Ace; r++ {
			cards = append(cards, Card{suit: s, rank: r})
		}
	}
	return cards
}
