package scoring

import "github.com/luca-patrignani/razzia/domain/catalog"

// Category is a scoring category.
type Category int

const (
	Trinkets Category = iota
	Bodyguards
	Cars
	Drivers
	GoldCoins
	Thieves
	Businesses
	Cheques
	NumCategories
)

var categoryNames = [NumCategories]string{
	"Trinkets", "Bodyguards", "Cars", "Drivers", "GoldCoins", "Thieves", "Businesses", "Cheques",
}

func (c Category) String() string {
	if c < 0 || c >= NumCategories {
		return "Unknown"
	}
	return categoryNames[c]
}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, NumCategories)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// Breakdown is a score per category.
type Breakdown [NumCategories]int

// Total sums all categories.
func (b Breakdown) Total() int {
	t := 0
	for _, v := range b {
		t += v
	}
	return t
}

// Sub returns b - o category by category.
func (b Breakdown) Sub(o Breakdown) Breakdown {
	for i := range b {
		b[i] -= o[i]
	}
	return b
}

// Add returns b + o category by category.
func (b Breakdown) Add(o Breakdown) Breakdown {
	for i := range b {
		b[i] += o[i]
	}
	return b
}

const (
	goldCoinPoints = 3
	thiefPoints    = 2

	guardLowPenalty = -2
	guardHighBonus  = 5

	moneyLowPenalty = -5
	moneyHighBonus  = 5

	allBusinessesBonus   = 3
	multiBusinessPerCopy = 5
	multiBusinessFrom    = 3
)

// trinketBonus is indexed by the number of distinct trinket kinds held.
var trinketBonus = [...]int{-5, 0, 0, 5, 10, 15}

// trinketBaseline is what a player without trinkets scores each round.
var trinketBaseline = trinketBonus[0]

// GuardAdjustment is the bodyguard score for holding count bodyguards when the
// table-wide fewest and most are lo and hi. Both apply on ties.
func GuardAdjustment(count, lo, hi int) int {
	adj := 0
	if count == lo {
		adj += guardLowPenalty
	}
	if count == hi {
		adj += guardHighBonus
	}
	return adj
}

// ChequeAdjustment is the money score for a cheque total when the poorest and
// richest totals are lo and hi.
func ChequeAdjustment(total, lo, hi int) int {
	adj := 0
	if total == lo {
		adj += moneyLowPenalty
	}
	if total == hi {
		adj += moneyHighBonus
	}
	return adj
}

// TrinketBonus returns the trinket score for a number of distinct kinds.
func TrinketBonus(distinct int) int {
	if distinct < 0 {
		distinct = 0
	}
	if distinct >= len(trinketBonus) {
		distinct = len(trinketBonus) - 1
	}
	return trinketBonus[distinct]
}

// RoundBreakdown applies the round-scored category formulas to card counts.
// Businesses and cheques are left at zero.
func RoundBreakdown(counts catalog.Counts, guardLo, guardHi int) Breakdown {
	var b Breakdown
	b[GoldCoins] = goldCoinPoints * counts[catalog.GoldCoin]
	b[Thieves] = thiefPoints * counts[catalog.Thief]
	b[Trinkets] = TrinketBonus(counts.Distinct(catalog.TrinketCards()))
	b[Bodyguards] = GuardAdjustment(counts[catalog.Bodyguard], guardLo, guardHi)
	if counts[catalog.Driver] > 0 {
		b[Cars] = counts[catalog.Car]
	}
	b[Drivers] = counts[catalog.Driver]
	return b
}

// BusinessScore is one point per distinct business, a bonus for holding all
// of them and five points per copy beyond the second of any business.
func BusinessScore(counts catalog.Counts) int {
	businesses := catalog.BusinessCards()
	distinct := counts.Distinct(businesses)
	score := distinct
	if distinct == len(businesses) {
		score += allBusinessesBonus
	}
	for _, b := range businesses {
		if n := counts[b]; n >= multiBusinessFrom {
			score += multiBusinessPerCopy * (n - 2)
		}
	}
	return score
}
