// Command life-run steps a seeded grid without a window and logs population
// as it goes. It drives the same Session the GUI uses, one interval per frame.
package main

import (
	"flag"
	"log"
	"time"

	"lifescope/internal/app"
	"lifescope/internal/input"
)

func main() {
	cfg := app.NewConfig()
	cfg.Density = 0.3
	cfg.GridWidth, cfg.GridHeight = 256, 256
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 500, "generations to simulate")
	every := flag.Int("every", 50, "log population every N generations (0 disables)")
	flag.Parse()
	if err := cfg.Resolve(flag.CommandLine); err != nil {
		log.Fatalf("config: %v", err)
	}

	session, err := app.NewSession(*cfg)
	if err != nil {
		log.Fatalf("session: %v", err)
	}
	ctrl := session.Controller()
	l := session.Life()
	log.Printf("grid=%dx%d workers=%d seed=%d density=%.2f population=%d",
		cfg.GridWidth, cfg.GridHeight, cfg.Workers, cfg.Seed, cfg.Density, l.Population())

	frame := input.Sample{DT: cfg.Interval}
	start := time.Now()
	for ctrl.Generation() < *steps {
		if !session.Tick(frame) {
			continue
		}
		if gen := ctrl.Generation(); *every > 0 && gen%*every == 0 {
			log.Printf("gen=%d population=%d", gen, l.Population())
		}
	}
	elapsed := time.Since(start)
	log.Printf("done: %d generations in %s (%.1f gen/s), final population=%d",
		ctrl.Generation(), elapsed.Round(time.Millisecond), float64(ctrl.Generation())/elapsed.Seconds(), l.Population())
}
