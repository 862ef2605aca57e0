// Package scoring implements the Razzia! scoring rules.
//
// # Categories
//
// Gold coins, thieves, trinkets, bodyguards, cars and drivers are scored at the
// end of every round over the cards a player currently holds. Businesses and
// cheques are scored once, at game end.
//
// # Attribution
//
// Every point is also attributed to the card or cheque that earned it, so
// reports can tell what a single card was worth. Attribution entries always
// add up to the category totals: a driver credits the cars it enables, and
// starting points that belong to no card (an empty trinket collection, the
// bodyguard penalty shares are measured against) are kept as baseline entries.
//
// # Forecasting
//
// Forecast and MarginalCardScore give strategies a static estimate of what a
// hand, or one more card, is worth for the rest of the game.
package scoring
