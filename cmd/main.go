package main

import (
	"context"
	"log/slog"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/razzia/analytics"
	"github.com/luca-patrignani/razzia/application"
	"github.com/luca-patrignani/razzia/config"
	"github.com/luca-patrignani/razzia/random"
	"github.com/luca-patrignani/razzia/simulation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("razzia: %v", err)
	}
	level, _ := cfg.Level()

	// Create a new slog handler on the PTerm logger at the configured level
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(ptermLevel(level)))
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("R", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("azzia!", pterm.FgDarkGray.ToStyle()),
	).Render()

	if cfg.Seed == 0 {
		if cfg.Seed, err = random.NewSeed(); err != nil {
			config.Exitf("razzia: %v", err)
		}
	}
	pterm.Info.Printfln("Playing %d game(s) of %d players (%s) from seed %d", cfg.Games, cfg.Players, cfg.Strategy, cfg.Seed)

	spinner, _ := pterm.DefaultSpinner.Start("Playing ...")
	results, err := simulation.Run(context.Background(), simulation.Config{
		Players:  cfg.Players,
		Games:    cfg.Games,
		Workers:  cfg.Workers,
		Seed:     cfg.Seed,
		Strategy: cfg.Strategy,
		Rules:    application.DefaultRules(),
		Logger:   logger,
	})
	if err != nil {
		spinner.Fail()
		config.Exitf("razzia: %v", err)
	}
	spinner.Success()

	report := analytics.NewReport()
	for _, res := range results {
		if res.Err != nil {
			logger.Error("game aborted", "game", res.ID.String(), "seed", res.Seed, "error", res.Err)
			report.AddAborted()
			continue
		}
		report.Add(res.Records)
	}

	if len(results) == 1 && results[0].Err == nil {
		printGame(results[0])
	}
	printReport(report)
}

func ptermLevel(l slog.Level) pterm.LogLevel {
	switch {
	case l <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case l <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case l <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}
