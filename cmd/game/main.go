package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Bounce-Lab/internal/app"
	"github.com/Garsondee/Bounce-Lab/internal/sim"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "YAML world file (default: built-in world)")
	flag.Parse()

	cfg := sim.DefaultConfig()
	if configPath != "" {
		loaded, err := sim.LoadConfig(configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}

	a, err := app.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("Bounce Lab")
	ebiten.SetWindowSize(int(cfg.World.Width)*2, int(cfg.World.Height)*2)
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
