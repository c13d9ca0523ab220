// Package evaluator ranks poker hands of two to seven cards.
//
// Evaluate maps a card.Hand to a Value whose natural integer order is the
// poker order: a larger Value beats a smaller one and equal Values tie. The
// evaluation uses only shifts, masks and a handful of short loops over
// 16-bit suit lanes, so it holds no state, never allocates and is safe to
// call from any number of goroutines.
//
// # Value layout
//
// From the least significant bit upward a Value holds the kicker ranks (one
// bit per rank, in lane order), the rank of the least significant pair, the
// rank of the most significant pair and then one flag per category:
// two pair, trips, straight, flush, full house (boat), quads and straight
// flush. One pair and high card carry no flag; they are told apart by the
// most significant pair field. Straights, flushes and straight flushes keep
// their five ranks in the kicker field.
package evaluator
