//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"meadowland/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log, err := app.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	gen := cfg.Map()
	session, err := app.NewSession(gen, loader(cfg), log)
	if err != nil {
		log.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	game := app.New(session, cfg.Scale)
	size := gen.Size()

	ebiten.SetWindowTitle("meadowland")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("game stopped", "err", err)
		os.Exit(1)
	}
}
