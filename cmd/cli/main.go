package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/minaorangina/tock/config"
	"github.com/minaorangina/tock/engine"
	"github.com/minaorangina/tock/players"
	"github.com/minaorangina/tock/protocol"
	"go.uber.org/zap"
)

func main() {
	verbose := flag.Bool("v", false, "print the board after every step")
	eager := flag.Int("eager", 1, "number of seats played by the eager player, the rest play randomly")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := cfg.Logger()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ps := players.Players{}
	for i := 0; i < cfg.Players; i++ {
		if i < *eager {
			ps = append(ps, players.NewEagerPlayer(players.NewID(), fmt.Sprintf("Eager %d", i+1)))
			continue
		}
		rng := rand.New(rand.NewSource(seed + int64(i)))
		ps = append(ps, players.NewRandomPlayer(players.NewID(), fmt.Sprintf("Random %d", i+1), rng))
	}

	match, err := engine.NewMatch(engine.MatchOpts{
		Players:       ps,
		Seed:          seed,
		MaxSteps:      cfg.MaxSteps,
		MaxIdleRounds: cfg.MaxIdleRounds,
		Logger:        logger,
	})
	if err != nil {
		logger.Fatal("could not start a match", zap.Error(err))
	}
	defer match.Close()

	engine.Display(os.Stdout, match.Snapshot())

	result, err := match.Play(context.Background(), func(obs protocol.Observation) error {
		if *verbose {
			engine.Display(os.Stdout, match.Snapshot())
		}
		return nil
	})
	if !*verbose {
		engine.Display(os.Stdout, match.Snapshot())
	}
	engine.DisplayResult(os.Stdout, ps.Names(), result)

	if err != nil {
		logger.Error("match ended without a winner", zap.Error(err), zap.Int64("seed", seed))
		os.Exit(1)
	}
}
