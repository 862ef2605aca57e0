// Package journal implements an append-only, hash-chained log of the events of
// one game.
//
// # Core Components
//
// Journal: the chain of events, starting from a genesis event. Every event
// stores the hash of the previous one, so any modification breaks the chain.
//
// Event: one thing that happened in the game (a draw, a bid, an auction
// result, the end of a round) with the round, the player involved and free
// form data.
//
// # Fingerprint
//
// Events carry no timestamps. Two games played with the same seed and the
// same deciders produce the same chain, so the hash of the latest event is a
// replay fingerprint: comparing fingerprints is enough to tell whether two
// runs diverged.
package journal
