// Package catalog holds the fixed game data of Razzia!: the card kinds with
// their supply and category flags, the cheque denominations and the starting
// cheque sets dealt for each supported player count.
//
// # Cards
//
// Card is a closed enumeration backed by a lookup table. Every kind carries
// the number of copies in the box and three flags: trinket, business and
// permanent. Permanent kinds survive the end-of-round archive and are scored
// again in later rounds; the others are removed after each round's scoring.
//
// # Cheques
//
// Cheque is an ordered numbered token (1 to 16). Starting sets are disjoint so
// no two players ever start with the same cheque, and the board always starts
// the game displaying cheque 1.
package catalog
