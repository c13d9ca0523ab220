// Package deck deals cards for evaluation: a standard 52-card deck shuffled
// with a kyber random stream.
package deck

import (
	"crypto/cipher"
	"errors"
	"fmt"

	"go.dedis.ch/kyber/v4/suites"

	"github.com/olehougaard/equity/domain/card"
)

const Size = 52

var ErrExhausted = errors.New("deck exhausted")

var suite suites.Suite = suites.MustFind("Ed25519")

// Deck is an ordered pile of cards. Cards before next have been dealt.
type Deck struct {
	cards  []card.Card
	next   int
	stream cipher.Stream
}

// New returns an unshuffled deck drawing its randomness from the suite's
// cryptographic stream.
func New() *Deck {
	return newDeck(suite.RandomStream())
}

// NewSeeded returns an unshuffled deck whose shuffles are fully determined
// by seed.
func NewSeeded(seed []byte) *Deck {
	return newDeck(suite.XOF(seed))
}

func newDeck(stream cipher.Stream) *Deck {
	d := &Deck{stream: stream}
	d.Reset()
	return d
}

// Reset puts every card back in suit and rank order.
func (d *Deck) Reset() {
	d.cards = card.All()
	d.next = 0
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}

// Remove takes the cards of h out of the undealt part of the deck, so that
// known cards such as a hero's hole cards are never dealt again.
func (d *Deck) Remove(h card.Hand) {
	kept := d.cards[:d.next]
	for _, c := range d.cards[d.next:] {
		if !h.Contains(c) {
			kept = append(kept, c)
		}
	}
	d.cards = kept
}

// Draw deals the next n cards.
func (d *Deck) Draw(n int) ([]card.Card, error) {
	if n < 0 || n > d.Remaining() {
		return nil, fmt.Errorf("%w: want %d cards, %d left", ErrExhausted, n, d.Remaining())
	}
	drawn := d.cards[d.next : d.next+n : d.next+n]
	d.next += n
	return drawn, nil
}

// DrawHand deals the next n cards packed into a Hand.
func (d *Deck) DrawHand(n int) (card.Hand, error) {
	cards, err := d.Draw(n)
	if err != nil {
		return 0, err
	}
	return card.NewHand(cards...), nil
}
