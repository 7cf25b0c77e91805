//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strconv"

	"sandfall/internal/app"
	"sandfall/internal/core"
	"sandfall/internal/sand"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	factory, ok := core.Sims()["sand"]
	if !ok {
		logger.Fatal("sand simulation not registered")
	}
	sim := factory(map[string]string{
		"w":      strconv.Itoa(cfg.Width),
		"h":      strconv.Itoa(cfg.Height),
		"seed":   strconv.FormatInt(cfg.Seed, 10),
		"params": cfg.Params,
	})
	world, ok := sim.(*sand.World)
	if !ok {
		logger.Fatal("registered sand factory returned unexpected type")
	}

	game := app.New(world, cfg.Scale, cfg.TPS, cfg.Seed, logger)
	size := world.Size()

	ebiten.SetWindowTitle("sandfall")
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game loop failed", zap.Error(err))
	}
}
