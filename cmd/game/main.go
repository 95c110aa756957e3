// cmd/game/main.go
package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"mongol-march/internal/app"
	"mongol-march/internal/config"
	"mongol-march/internal/state"
	"mongol-march/pkg/render"
)

const startFromGame = false // true — начинать с игры, false — с меню

type AppGame struct {
	stateMachine *state.StateMachine
}

// Update — один тик ebiten, он же один шаг симуляции (SetTPS ниже)
func (a *AppGame) Update() error {
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	rt, err := app.Bootstrap()
	if err != nil {
		// os.Exit не запускает defer
		if rt != nil {
			rt.Close()
		}
		fmt.Fprintf(os.Stderr, "mongol-march: %v\n", err)
		os.Exit(1)
	}
	defer rt.Close()
	logger := rt.Logger

	if addr := rt.Config.Pprof; addr != "" {
		go func() {
			logger.Warn().Err(http.ListenAndServe(addr, nil)).Msg("pprof stopped")
		}()
	}

	face, err := render.LoadFace(16)
	if err != nil {
		logger.Error().Err(err).Msg("font")
		rt.Close()
		os.Exit(1)
	}
	opts := rt.Options()
	deps := state.Deps{Library: opts.Library, Store: opts.Store, Seed: opts.Seed, Logger: opts.Logger, Face: face}

	sm := state.NewStateMachine() // Создаём машину состояний
	if startFromGame {
		sm.SetState(state.NewGameState(sm, deps))
	} else {
		sm.SetState(state.NewMenuState(sm, deps))
	}
	game := &AppGame{stateMachine: sm}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Mongol March")
	ebiten.SetTPS(config.TicksPerSecond)
	if err := ebiten.RunGame(game); err != nil {
		logger.Error().Err(err).Msg("game loop failed")
	}
}
