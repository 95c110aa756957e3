// cmd/march-tui/main.go
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"mongol-march/internal/app"
	"mongol-march/internal/config"
	"mongol-march/internal/tui"
)

const defaultLogFile = "mongol-march-tui.log"

func main() {
	// терминал занят экраном, поэтому лог только в файл
	rt, err := app.Bootstrap(func(cfg *config.Config) {
		if cfg.LogFile == "" {
			cfg.LogFile = defaultLogFile
		}
	})
	if err != nil {
		// os.Exit не запускает defer
		if rt != nil {
			rt.Close()
		}
		fmt.Fprintf(os.Stderr, "march-tui: %v\n", err)
		os.Exit(1)
	}
	defer rt.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		rt.Logger.Error().Err(err).Msg("no terminal")
		fmt.Fprintf(os.Stderr, "march-tui: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		rt.Logger.Error().Err(err).Msg("terminal init failed")
		fmt.Fprintf(os.Stderr, "march-tui: %v\n", err)
		return
	}

	ui := tui.New(screen, rt.Options())
	err = ui.Run()
	screen.Fini()
	if err != nil {
		rt.Logger.Error().Err(err).Msg("tui stopped")
	}
	fmt.Println(ui.Game().Summary())
}
