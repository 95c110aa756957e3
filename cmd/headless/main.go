// cmd/headless/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"mongol-march/internal/app"
	"mongol-march/internal/config"
)

func main() {
	var runs int
	var maxTicks uint64
	var seedBase int64

	flag.IntVar(&runs, "runs", 5, "number of autoplayed games")
	flag.Uint64Var(&maxTicks, "max-ticks", 600_000, "tick limit per game")
	flag.Int64Var(&seedBase, "seed", 42, "seed of the first game, the next ones add 1")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}

	rt, err := app.Bootstrap(func(cfg *config.Config) {
		cfg.LogPretty = false
	})
	if err != nil {
		// os.Exit не запускает defer
		if rt != nil {
			rt.Close()
		}
		fmt.Fprintf(os.Stderr, "headless: %v\n", err)
		os.Exit(1)
	}
	defer rt.Close()

	fmt.Printf("=== Headless Mongol March ===\n")
	fmt.Printf("runs=%d max_ticks=%d seed=%d store=%s\n\n", runs, maxTicks, seedBase, rt.Config.ScoreStore)

	totalScore, totalWaves := 0, 0
	for i := 0; i < runs; i++ {
		opts := rt.Options()
		opts.Seed = seedBase + int64(i)
		g := app.NewGame(opts)
		ticks := app.NewAutoplayer(g).Play(maxTicks)

		fmt.Printf("run %d seed=%d ticks=%d state=%s  %s\n", i+1, opts.Seed, ticks, g.State(), g.Summary())
		rt.Logger.Info().Int("run", i+1).Uint64("ticks", ticks).Int("score", g.Scoreboard.Score).Msg("run finished")
		totalScore += g.Scoreboard.Score
		totalWaves += g.Scoreboard.Wave
	}
	fmt.Printf("\navg score %.1f, avg wave %.1f\n", float64(totalScore)/float64(runs), float64(totalWaves)/float64(runs))
}
