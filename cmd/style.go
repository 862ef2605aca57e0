package main

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/razzia/analytics"
	"github.com/luca-patrignani/razzia/application"
	"github.com/luca-patrignani/razzia/domain/catalog"
	"github.com/luca-patrignani/razzia/domain/scoring"
	"github.com/luca-patrignani/razzia/simulation"
)

func printGame(res simulation.Result) {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{{
		{Data: pbox.WithTitle(pterm.LightYellow("|ROUNDS|")).WithTitleTopCenter().Sprint(roundsInfo(res.Summaries))},
		{Data: pbox.WithTitle(pterm.LightGreen("|GAME|")).WithTitleTopCenter().Sprintf("id %s\nseed %d\nfingerprint %.16s", res.ID, res.Seed, res.Fingerprint)},
	}}).Render()
	pterm.DefaultTable.WithHasHeader().WithData(scoreTable(res.Records)).Render()
}

func printReport(r *analytics.Report) {
	pterm.DefaultSection.Println("Wins")
	pterm.DefaultTable.WithHasHeader().WithData(winsTable(r)).Render()
	pterm.DefaultSection.Println("Card values")
	pterm.DefaultTable.WithHasHeader().WithData(cardTable(r)).Render()
	if r.Aborted > 0 {
		pterm.Warning.Printfln("%d game(s) aborted", r.Aborted)
	}
}

func roundsInfo(summaries []application.RoundSummary) string {
	s := ""
	for _, r := range summaries {
		s += pterm.Sprintfln("Round %d: started by %s, %d turns, %d auctions (%d void), ended by %s",
			r.Round, pterm.LightCyan(r.Starter), r.Turns, r.Auctions, r.VoidAuctions, r.Reason)
	}
	return s
}

// scoreTable has one row per player, sorted by name, one column per scoring
// category and the split of the total between cards and cheques.
func scoreTable(records map[string]*scoring.Record) pterm.TableData {
	header := []string{"Player"}
	for _, c := range scoring.Categories() {
		header = append(header, c.String())
	}
	header = append(header, "Total", "Card points", "Cheque points", "Adjusted cards")
	data := pterm.TableData{header}

	names := make([]string, 0, len(records))
	for n := range records {
		names = append(names, n)
	}
	slices.Sort(names)
	for _, n := range names {
		r := records[n]
		row := []string{n}
		for _, c := range scoring.Categories() {
			row = append(row, strconv.Itoa(r.ByCategory()[c]))
		}
		row = append(row, strconv.Itoa(r.Total()),
			points(r.CardPoints()), points(r.ChequePoints()), points(r.AdjustedCardScore()))
		data = append(data, row)
	}
	return data
}

func winsTable(r *analytics.Report) pterm.TableData {
	data := pterm.TableData{{"Player", "Wins", "Mean score"}}
	for _, n := range r.Players() {
		mean := "-"
		if s, ok := r.Totals[n]; ok {
			if m, ok := s.Mean(); ok {
				mean = fmt.Sprintf("%.2f", m)
			}
		}
		data = append(data, []string{n, strconv.Itoa(r.Wins[n]), mean})
	}
	return data
}

// cardTable shows the mean points of every booty card overall and by the
// round it was won in.
func cardTable(r *analytics.Report) pterm.TableData {
	header := []string{"Card", "All"}
	for round := 1; round <= catalog.GameRounds; round++ {
		header = append(header, "Round "+strconv.Itoa(round))
	}
	data := pterm.TableData{header}
	for _, c := range catalog.BootyCards() {
		row := []string{c.String(), meanOf(r.Cards[c])}
		for round := 1; round <= catalog.GameRounds; round++ {
			row = append(row, meanOf(r.CardsByRound[round][c]))
		}
		data = append(data, row)
	}
	return data
}

func points(v float64) string { return fmt.Sprintf("%.2f", v) }

func meanOf(s *analytics.Stat) string {
	if s == nil {
		return "-"
	}
	m, ok := s.Mean()
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%.3f", m)
}
