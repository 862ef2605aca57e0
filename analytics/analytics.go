// Package analytics aggregates the records of many games: how often each seat
// wins and how many points each card kind is worth on average.
package analytics

import (
	"slices"

	"github.com/luca-patrignani/razzia/domain/catalog"
	"github.com/luca-patrignani/razzia/domain/scoring"
)

// Stat accumulates a mean.
type Stat struct {
	N   int
	Sum float64
}

func (s *Stat) add(v float64) {
	s.N++
	s.Sum += v
}

// Mean returns the average, false when nothing was added.
func (s Stat) Mean() (float64, bool) {
	if s.N == 0 {
		return 0, false
	}
	return s.Sum / float64(s.N), true
}

type Report struct {
	Games   int
	Aborted int
	// Wins counts games won by each player; tied winners all get the win and
	// the game also counts in Ties.
	Wins       map[string]int
	Ties       int
	Totals     map[string]*Stat
	Categories [scoring.NumCategories]Stat
	Cards      map[catalog.Card]*Stat
	// CardsByRound is keyed by the round the card was won in.
	CardsByRound map[int]map[catalog.Card]*Stat
}

func NewReport() *Report {
	return &Report{
		Wins:         make(map[string]int),
		Totals:       make(map[string]*Stat),
		Cards:        make(map[catalog.Card]*Stat),
		CardsByRound: make(map[int]map[catalog.Card]*Stat),
	}
}

// Add folds in the records of one finished game.
func (r *Report) Add(records map[string]*scoring.Record) {
	r.Games++
	winners := Winners(records)
	for _, w := range winners {
		r.Wins[w]++
	}
	if len(winners) > 1 {
		r.Ties++
	}
	for name, rec := range records {
		if _, ok := r.Wins[name]; !ok {
			r.Wins[name] = 0
		}
		stat(r.Totals, name).add(float64(rec.Total()))
		for _, c := range scoring.Categories() {
			r.Categories[c].add(float64(rec.ByCategory()[c]))
		}
		for _, sc := range rec.Cards() {
			stat(r.Cards, sc.Card).add(sc.Points())
			byRound, ok := r.CardsByRound[sc.Round]
			if !ok {
				byRound = make(map[catalog.Card]*Stat)
				r.CardsByRound[sc.Round] = byRound
			}
			stat(byRound, sc.Card).add(sc.Points())
		}
	}
}

// AddAborted counts a game that did not finish.
func (r *Report) AddAborted() { r.Aborted++ }

// Players returns the player names seen, sorted.
func (r *Report) Players() []string {
	names := make([]string, 0, len(r.Wins))
	for n := range r.Wins {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// CardMean returns the average points of a card kind, false if it was never
// won.
func (r *Report) CardMean(c catalog.Card) (float64, bool) {
	s, ok := r.Cards[c]
	if !ok {
		return 0, false
	}
	return s.Mean()
}

// Winners returns the players with the highest total, sorted by name.
func Winners(records map[string]*scoring.Record) []string {
	var out []string
	best := 0
	for name, rec := range records {
		switch t := rec.Total(); {
		case out == nil || t > best:
			out, best = []string{name}, t
		case t == best:
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

func stat[K comparable](m map[K]*Stat, k K) *Stat {
	s, ok := m[k]
	if !ok {
		s = &Stat{}
		m[k] = s
	}
	return s
}
