//go:build !ebiten

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"meadowland/internal/app"
	"meadowland/internal/biome"
	"meadowland/internal/core"
)

// The default build generates the world headless and reports biome coverage.
// The window needs the ebiten build tag.
func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log, err := app.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log.Debug("headless build; rebuild with -tags ebiten for the window")

	session, err := app.NewSession(cfg.Map(), loader(cfg), log)
	if err != nil {
		log.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	step := core.NewFixedStep(cfg.TPS)
	for session.Phase() != core.PhaseMain {
		step.Wait()
		if err := session.Tick(); err != nil {
			log.Error("generation failed", "phase", session.Phase().String(), "err", err)
			os.Exit(1)
		}
	}
	// One more tick lets the session announce the main phase.
	if err := session.Tick(); err != nil {
		log.Error("main phase", "err", err)
		os.Exit(1)
	}
	report(log, session.Catalog(), session.Coverage(), step.Ticks())
}

func report(log *slog.Logger, catalog *biome.Catalog, cov *biome.Coverage, ticks uint64) {
	order := make([]int, len(cov.Counts))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int { return cov.Counts[b] - cov.Counts[a] })
	for _, idx := range order {
		if cov.Counts[idx] == 0 {
			continue
		}
		b, _ := catalog.At(idx)
		log.Info("coverage", "biome", b.Name, "cells", cov.Counts[idx], "share", fmt.Sprintf("%.1f%%", 100*cov.Share(idx)))
	}
	if cov.Unmatched > 0 {
		log.Warn("cells without a biome", "cells", cov.Unmatched)
	}
	log.Info("done", "ticks", ticks, "cells", cov.Total)
}
