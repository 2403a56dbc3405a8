//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifescope/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Resolve(flag.CommandLine); err != nil {
		log.Fatalf("config: %v", err)
	}

	session, err := app.NewSession(*cfg)
	if err != nil {
		log.Fatalf("session: %v", err)
	}
	game := app.New(session)

	ebiten.SetWindowTitle("Conway's Game Of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
