package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/freeeve/warzone/internal/config"
	"github.com/freeeve/warzone/internal/logger"
	"github.com/freeeve/warzone/internal/service"
	"github.com/freeeve/warzone/pkg/warzone"
)

func main() {
	var (
		maps       string
		strategies string
		games      int
		maxTurns   int
		workers    int
		seed       int64
		mapDir     string
		jsonOut    bool
	)

	flag.StringVar(&maps, "M", "", "Comma separated maps (1-5)")
	flag.StringVar(&strategies, "P", "aggressive,benevolent", "Comma separated computer strategies (2-4)")
	flag.IntVar(&games, "G", 1, "Games per map (1-5)")
	flag.IntVar(&maxTurns, "D", 30, "Turns before a game is a draw (10-50)")
	flag.IntVar(&workers, "workers", 0, "Concurrency (0 = config value or one per CPU)")
	flag.Int64Var(&seed, "seed", 0, "Base seed (0 = random)")
	flag.StringVar(&mapDir, "maps", "", "Map directory (overrides map_dir)")
	flag.BoolVar(&jsonOut, "json", false, "Output results as JSON")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger.Init(cfg.LogLevel, cfg.LogFile)
	if mapDir == "" {
		mapDir = cfg.MapDir
	}
	if workers == 0 {
		workers = cfg.TournamentWorkers
	}
	if seed == 0 {
		seed = cfg.Seed
	}

	tcfg := service.TournamentConfig{
		Maps:       service.SplitList(maps),
		Strategies: service.SplitList(strategies),
		Games:      games,
		MaxTurns:   maxTurns,
	}
	if err := tcfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	var gameLog *logger.GameLog
	if cfg.GameLog != "" {
		gameLog = logger.NewGameLog(cfg.GameLog)
		defer gameLog.Close()
		tcfg.Observe = func(mapName string, game int) warzone.Observer {
			return service.Tagged{Tag: fmt.Sprintf("%s#%d", mapName, game), Sink: gameLog}
		}
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

	res, err := service.RunTournament(ctx, tcfg, service.Options{
		MapDir:        mapDir,
		Seed:          seed,
		MaxIssueCalls: cfg.MaxIssueCalls,
		Workers:       workers,
	})
	if err != nil {
		log.Error().Err(err).Msg("Tournament failed")
		os.Exit(1)
	}

	if jsonOut {
		printJSON(res)
	} else {
		printSummary(res)
	}
}

func printSummary(res *service.TournamentResult) {
	fmt.Print(res.Table())

	wins := res.Wins()
	names := append([]string(nil), res.Config.Strategies...)
	sort.SliceStable(names, func(i, j int) bool { return wins[names[i]] > wins[names[j]] })

	total := len(res.Config.Maps) * res.Config.Games
	fmt.Printf("\nResults (%d games, max %d turns):\n", total, res.Config.MaxTurns)
	for _, s := range names {
		fmt.Printf("  %-12s %d wins\n", s, wins[s])
	}
	if d := wins[service.DrawLabel]; d > 0 {
		fmt.Printf("  %-12s %d\n", "draws", d)
	}
}

func printJSON(res *service.TournamentResult) {
	out := struct {
		*service.TournamentResult
		Wins map[string]int `json:"wins"`
	}{
		TournamentResult: res,
		Wins:             res.Wins(),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(out)
}
