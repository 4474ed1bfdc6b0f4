package service

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/freeeve/warzone/internal/bot"
	"github.com/freeeve/warzone/internal/command"
	"github.com/freeeve/warzone/pkg/warzone"
)

// Tournament limits.
const (
	MinTournamentMaps       = 1
	MaxTournamentMaps       = 5
	MinTournamentStrategies = 2
	MaxTournamentStrategies = 4
	MinTournamentGames      = 1
	MaxTournamentGames      = 5
	MinTournamentTurns      = 10
	MaxTournamentTurns      = 50
)

// DrawLabel is the winner column value for games without a winner.
const DrawLabel = "Draw"

// TournamentConfig describes a tournament: every strategy plays Games games
// on every map, each game ending in a draw after MaxTurns turns.
type TournamentConfig struct {
	Maps       []string `json:"maps"`
	Strategies []string `json:"strategies"`
	Games      int      `json:"games"`
	MaxTurns   int      `json:"maxTurns"`

	// Observe, when set, returns the observer for one game.
	Observe func(mapName string, game int) warzone.Observer `json:"-"`
}

// ParseTournamentArgs reads "-M <maps...> -P <strategies...> -G <n> -D <n>".
func ParseTournamentArgs(args []string) (TournamentConfig, error) {
	var cfg TournamentConfig
	var flag string
	for _, a := range args {
		if strings.HasPrefix(a, "-") {
			flag = strings.ToUpper(strings.TrimLeft(a, "-"))
			switch flag {
			case "M", "P", "G", "D":
			default:
				return cfg, fmt.Errorf("%w: unknown flag %s", ErrInvalidSettings, a)
			}
			continue
		}
		switch flag {
		case "M":
			cfg.Maps = append(cfg.Maps, a)
		case "P":
			cfg.Strategies = append(cfg.Strategies, strings.ToLower(a))
		case "G", "D":
			n, err := strconv.Atoi(a)
			if err != nil {
				return cfg, fmt.Errorf("%w: -%s needs a number, got %q", ErrInvalidSettings, flag, a)
			}
			if flag == "G" {
				cfg.Games = n
			} else {
				cfg.MaxTurns = n
			}
		default:
			return cfg, fmt.Errorf("%w: value %q before any flag", ErrInvalidSettings, a)
		}
	}
	return cfg, cfg.Validate()
}

// Validate checks the tournament limits.
func (c TournamentConfig) Validate() error {
	if n := len(c.Maps); n < MinTournamentMaps || n > MaxTournamentMaps {
		return fmt.Errorf("%w: %d maps, want %d-%d", ErrInvalidSettings, n, MinTournamentMaps, MaxTournamentMaps)
	}
	if n := len(c.Strategies); n < MinTournamentStrategies || n > MaxTournamentStrategies {
		return fmt.Errorf("%w: %d strategies, want %d-%d", ErrInvalidSettings, n, MinTournamentStrategies, MaxTournamentStrategies)
	}
	seen := make(map[string]bool)
	for _, s := range c.Strategies {
		if !bot.IsComputer(s) {
			return fmt.Errorf("%w: %q", ErrComputerOnly, s)
		}
		if seen[s] {
			return fmt.Errorf("%w: strategy %s listed twice", ErrInvalidSettings, s)
		}
		seen[s] = true
	}
	if c.Games < MinTournamentGames || c.Games > MaxTournamentGames {
		return fmt.Errorf("%w: %d games, want %d-%d", ErrInvalidSettings, c.Games, MinTournamentGames, MaxTournamentGames)
	}
	if c.MaxTurns < MinTournamentTurns || c.MaxTurns > MaxTournamentTurns {
		return fmt.Errorf("%w: %d turns, want %d-%d", ErrInvalidSettings, c.MaxTurns, MinTournamentTurns, MaxTournamentTurns)
	}
	return nil
}

// GameResult is the outcome of one tournament game.
type GameResult struct {
	Map     string `json:"map"`
	Game    int    `json:"game"`
	MatchID string `json:"matchId"`
	Winner  string `json:"winner"`
	Rounds  int    `json:"rounds"`
}

// TournamentResult holds every game's result, indexed [map][game].
type TournamentResult struct {
	Config  TournamentConfig `json:"config"`
	Results [][]GameResult   `json:"results"`
}

// Wins counts games won per strategy.
func (r *TournamentResult) Wins() map[string]int {
	wins := make(map[string]int)
	for _, row := range r.Results {
		for _, g := range row {
			wins[g.Winner]++
		}
	}
	return wins
}

// Table renders the results grid: one row per map, one column per game.
func (r *TournamentResult) Table() string {
	var b strings.Builder
	fmt.Fprintf(&b, "M: %s\n", strings.Join(r.Config.Maps, ", "))
	fmt.Fprintf(&b, "P: %s\n", strings.Join(r.Config.Strategies, ", "))
	fmt.Fprintf(&b, "G: %d\n", r.Config.Games)
	fmt.Fprintf(&b, "D: %d\n\n", r.Config.MaxTurns)

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprint(tw, "Map")
	for g := 0; g < r.Config.Games; g++ {
		fmt.Fprintf(tw, "\tGame %d", g+1)
	}
	fmt.Fprintln(tw)
	for i, row := range r.Results {
		fmt.Fprint(tw, r.Config.Maps[i])
		for _, g := range row {
			fmt.Fprintf(tw, "\t%s", g.Winner)
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
	return b.String()
}

// RunTournament plays every game of the tournament. Maps are loaded and
// validated up front; games then run in parallel, at most opts.Workers at a
// time, each on its own engine and map copy.
func RunTournament(ctx context.Context, cfg TournamentConfig, opts Options) (*TournamentResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	paths := make([]string, len(cfg.Maps))
	for i, name := range cfg.Maps {
		paths[i] = resolveMapPath(opts.MapDir, name)
		m, err := warzone.LoadMapFile(paths[i])
		if err != nil {
			return nil, fmt.Errorf("tournament map %s: %w", name, err)
		}
		if err := m.Check(); err != nil {
			return nil, fmt.Errorf("tournament map %s: %w", name, err)
		}
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	res := &TournamentResult{Config: cfg, Results: make([][]GameResult, len(cfg.Maps))}
	for i := range res.Results {
		res.Results[i] = make([]GameResult, cfg.Games)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range cfg.Maps {
		for j := 0; j < cfg.Games; j++ {
			i, j := i, j
			g.Go(func() error {
				gr, err := playTournamentGame(ctx, cfg, opts, paths[i], i, j)
				if err != nil {
					return fmt.Errorf("map %s game %d: %w", cfg.Maps[i], j+1, err)
				}
				res.Results[i][j] = gr
				log.Info().Str("map", gr.Map).Int("game", j+1).Str("winner", gr.Winner).
					Int("rounds", gr.Rounds).Msg("Tournament game completed")
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func playTournamentGame(ctx context.Context, cfg TournamentConfig, opts Options, path string, mapIdx, game int) (GameResult, error) {
	gameOpts := opts
	gameOpts.MaxTurns = cfg.MaxTurns
	gameOpts.MapDir = ""
	if opts.Seed != 0 {
		gameOpts.Seed = opts.Seed + int64(mapIdx*MaxTournamentGames+game) + 1
	}
	obs := NewBroadcaster()
	eng := NewEngine(gameOpts, nil, obs)
	obs.Attach(LogObserver{MatchID: eng.MatchID})
	if cfg.Observe != nil {
		obs.Attach(cfg.Observe(cfg.Maps[mapIdx], game+1))
	}

	cmds := []command.Command{
		{Name: warzone.CmdLoadMap, Args: []string{path}},
		{Name: warzone.CmdValidateMap},
	}
	for _, s := range cfg.Strategies {
		cmds = append(cmds, command.Command{Name: warzone.CmdAddPlayer, Args: []string{s, s}})
	}
	cmds = append(cmds, command.Command{Name: warzone.CmdGameStart})
	for _, c := range cmds {
		if err := eng.Handle(ctx, c); err != nil {
			return GameResult{}, err
		}
	}

	r := eng.Result()
	gr := GameResult{Map: cfg.Maps[mapIdx], Game: game + 1, MatchID: r.MatchID, Winner: r.Winner, Rounds: r.Rounds}
	if r.Draw {
		gr.Winner = DrawLabel
	}
	return gr, nil
}

// SplitList splits a comma separated flag value, dropping empty items.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
