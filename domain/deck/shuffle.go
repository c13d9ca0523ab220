package deck

import (
	"math/big"

	"go.dedis.ch/kyber/v4/util/random"
)

// Shuffle permutes the undealt cards uniformly at random. Dealt cards keep
// their place.
func (d *Deck) Shuffle() {
	rest := d.cards[d.next:]
	for i := len(rest) - 1; i > 0; i-- {
		j := int(random.Int(big.NewInt(int64(i+1)), d.stream).Int64())
		rest[i], rest[j] = rest[j], rest[i]
	}
}
