package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/freeeve/warzone/internal/bot"
	"github.com/freeeve/warzone/internal/command"
	"github.com/freeeve/warzone/internal/config"
	"github.com/freeeve/warzone/internal/logger"
	"github.com/freeeve/warzone/internal/pubsub"
	"github.com/freeeve/warzone/internal/service"
)

type printObserver struct{}

func (printObserver) Notify(entry string) { fmt.Println(entry) }

func main() {
	var (
		cfgPath string
		file    string
		mapDir  string
		seed    int64
		echo    bool
	)
	flag.StringVar(&cfgPath, "config", os.Getenv(config.EnvPrefix+"_CONFIG"), "Config file (YAML, TOML or JSON)")
	flag.StringVar(&file, "file", "", "Read commands from a file instead of the console")
	flag.StringVar(&mapDir, "maps", "", "Map directory (overrides map_dir)")
	flag.Int64Var(&seed, "seed", 0, "Random seed (0 = config value or random)")
	flag.BoolVar(&echo, "echo", true, "Print game log entries to stdout")
	flag.Parse()

	cfg, err := config.LoadFile(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger.Init(cfg.LogLevel, cfg.LogFile)
	if mapDir != "" {
		cfg.MapDir = mapDir
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		log.Info().Msg("Shutting down...")
		cancel()
	}()

	var in bot.InputProvider
	if file != "" {
		scripted, err := command.OpenFile(file)
		if err != nil {
			log.Fatal().Err(err).Str("file", file).Msg("Command file unreadable")
		}
		in = scripted
	} else {
		in = bot.NewConsoleInput(os.Stdin, os.Stdout)
	}

	broadcast := service.NewBroadcaster()
	if cfg.GameLog != "" {
		gameLog := logger.NewGameLog(cfg.GameLog)
		defer gameLog.Close()
		broadcast.Attach(gameLog)
	}
	if echo {
		broadcast.Attach(printObserver{})
	}

	eng := service.NewEngine(service.Options{
		MapDir:        cfg.MapDir,
		Seed:          cfg.Seed,
		MaxIssueCalls: cfg.MaxIssueCalls,
		Workers:       cfg.TournamentWorkers,
	}, in, broadcast)
	broadcast.Attach(service.LogObserver{MatchID: eng.MatchID})

	var redisClient *pubsub.Client
	if cfg.RedisURL != "" {
		redisClient, err = pubsub.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Redis connection failed")
		}
		defer redisClient.Close()
		broadcast.Attach(pubsub.NewPublisher(redisClient, eng.MatchID))
		log.Info().Msg("Publishing game log to Redis")
	}

	log.Info().Str("mapDir", cfg.MapDir).Str("gameLog", cfg.GameLog).Msg("Config loaded")

	runErr := eng.Run(ctx, command.NewProcessor(in, "> "))

	if res := eng.Result(); res != nil && redisClient != nil {
		if err := redisClient.SetResult(context.Background(), res.MatchID, res); err != nil {
			log.Warn().Err(err).Str("matchId", res.MatchID).Msg("Storing result failed")
		}
	}
	if runErr != nil {
		log.Error().Err(runErr).Str("state", string(eng.State())).Msg("Game stopped")
		os.Exit(1)
	}
}
