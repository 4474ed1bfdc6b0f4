package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/freeeve/warzone/internal/bot"
	"github.com/freeeve/warzone/internal/command"
	"github.com/freeeve/warzone/internal/logger"
	"github.com/freeeve/warzone/pkg/warzone"
)

var (
	ErrNoMap           = errors.New("no map loaded")
	ErrTooManyPlayers  = fmt.Errorf("at most %d players", warzone.MaxPlayers)
	ErrNotEnough       = fmt.Errorf("need at least %d players to start", warzone.MinPlayers)
	ErrInputExhausted  = errors.New("command input ended before the game finished")
	ErrComputerOnly    = errors.New("tournaments only accept computer strategies")
	ErrInvalidSettings = errors.New("invalid tournament settings")
)

// Defaults for Options fields left at zero.
const (
	DefaultStartingArmies = 50
	DefaultStartingCards  = 2
	DefaultCardsPerKind   = 10
	DefaultMaxIssueCalls  = 50
)

// Options tune a game engine.
type Options struct {
	MapDir         string
	Seed           int64 // 0 picks a random seed per match
	StartingArmies int
	StartingCards  int
	CardsPerKind   int
	MaxIssueCalls  int // IssueOrder calls per player per turn
	MaxTurns       int // 0 plays until someone wins
	Workers        int // parallel tournament games
}

func (o Options) withDefaults() Options {
	if o.StartingArmies <= 0 {
		o.StartingArmies = DefaultStartingArmies
	}
	if o.StartingCards < 0 {
		o.StartingCards = 0
	} else if o.StartingCards == 0 {
		o.StartingCards = DefaultStartingCards
	}
	if o.CardsPerKind <= 0 {
		o.CardsPerKind = DefaultCardsPerKind
	}
	if o.MaxIssueCalls <= 0 {
		o.MaxIssueCalls = DefaultMaxIssueCalls
	}
	return o
}

// Result summarises a finished game.
type Result struct {
	MatchID string `json:"matchId"`
	Map     string `json:"map"`
	Winner  string `json:"winner,omitempty"`
	Rounds  int    `json:"rounds"`
	Draw    bool   `json:"draw"`
}

// CommandSource yields commands until it returns io.EOF.
type CommandSource interface {
	Next(ctx context.Context) (command.Command, error)
}

// Engine runs one game at a time through the state machine, from loadmap
// to win. Each Engine owns its match; engines are not safe for concurrent
// use but independent engines may run in parallel.
type Engine struct {
	opts     Options
	input    bot.InputProvider
	observer warzone.Observer

	state   warzone.GameState
	mapPath string
	gameMap *warzone.Map
	match   *warzone.Match
	result  *Result

	tournament *TournamentResult
}

// NewEngine creates an engine in the start state. input serves human
// players and may be nil when only computer strategies play.
func NewEngine(opts Options, input bot.InputProvider, observer warzone.Observer) *Engine {
	if observer == nil {
		observer = warzone.NoopObserver{}
	}
	return &Engine{
		opts:     opts.withDefaults(),
		input:    input,
		observer: observer,
		state:    warzone.StateStart,
	}
}

// State returns the current game state.
func (e *Engine) State() warzone.GameState { return e.state }

// Match returns the current match, or nil before the first addplayer.
func (e *Engine) Match() *warzone.Match { return e.match }

// Map returns the loaded map, or nil.
func (e *Engine) Map() *warzone.Map { return e.gameMap }

// Result returns the outcome of the last finished game, or nil.
func (e *Engine) Result() *Result { return e.result }

// Tournament returns the outcome of the last tournament command, or nil.
func (e *Engine) Tournament() *TournamentResult { return e.tournament }

func (e *Engine) notify(entry string) {
	e.observer.Notify(entry)
}

func (e *Engine) transition(s warzone.GameState) {
	e.state = s
	e.notify(warzone.TransitionEntry(s))
	e.matchLog().Debug().Str("state", string(s)).Msg("state transition")
}

// matchLog is the global logger tagged with the current match id.
func (e *Engine) matchLog() *zerolog.Logger {
	l := logger.ForMatch(e.MatchID())
	return &l
}

// MatchID returns the current match id, or "" before the first addplayer.
func (e *Engine) MatchID() string {
	if e.match == nil {
		return ""
	}
	return e.match.ID
}

// Run reads commands until the engine reaches the end state, the source
// is exhausted or ctx is cancelled. Rejected commands are reported and
// do not stop the loop.
func (e *Engine) Run(ctx context.Context, src CommandSource) error {
	for e.state != warzone.StateEnd {
		cmd, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			if e.state == warzone.StateStart || e.state == warzone.StateWin {
				return nil
			}
			return ErrInputExhausted
		}
		if err != nil {
			return err
		}
		if err := e.Handle(ctx, cmd); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Warn().Err(err).Str("command", cmd.String()).Str("state", string(e.state)).Msg("Command failed")
			e.say(err.Error())
		}
	}
	return nil
}

func (e *Engine) say(msg string) {
	if e.input != nil {
		e.input.Say(msg)
	}
}

// Handle applies one command. A command that is not accepted in the
// current state returns an error wrapping warzone.ErrCommandRejected and
// leaves the state unchanged.
func (e *Engine) Handle(ctx context.Context, cmd command.Command) error {
	e.notify("Command: " + cmd.String())
	next, ok := warzone.NextState(e.state, cmd.Name)
	if !ok {
		return fmt.Errorf("%w: %q in state %s (valid: %s)", warzone.ErrCommandRejected,
			cmd.Name, e.state, strings.Join(warzone.ValidCommands(e.state), ", "))
	}

	switch cmd.Name {
	case warzone.CmdLoadMap:
		if cmd.Arg(0) == "" {
			return fmt.Errorf("%w: loadmap <file>", warzone.ErrMissingArgument)
		}
		if err := e.LoadMap(cmd.Arg(0)); err != nil {
			return err
		}
	case warzone.CmdValidateMap:
		if err := e.ValidateMap(); err != nil {
			return err
		}
	case warzone.CmdAddPlayer:
		if cmd.Arg(0) == "" {
			return fmt.Errorf("%w: addplayer <name> [strategy]", warzone.ErrMissingArgument)
		}
		strategy := cmd.Arg(1)
		if strategy == "" {
			strategy = bot.NameHuman
		}
		if err := e.AddPlayer(cmd.Arg(0), strategy); err != nil {
			return err
		}
	case warzone.CmdGameStart:
		_, err := e.GameStart(ctx)
		return err
	case warzone.CmdTournament:
		cfg, err := ParseTournamentArgs(cmd.Args)
		if err != nil {
			return err
		}
		res, err := RunTournament(ctx, cfg, e.opts)
		if err != nil {
			return err
		}
		e.tournament = res
		for _, line := range strings.Split(strings.TrimRight(res.Table(), "\n"), "\n") {
			e.notify("Tournament: " + line)
		}
	case warzone.CmdReplay:
		e.reset()
	case warzone.CmdQuit:
	}
	e.transition(next)
	return nil
}

func (e *Engine) reset() {
	e.mapPath = ""
	e.gameMap = nil
	e.match = nil
	e.result = nil
}

// resolveMapPath finds a map file as given, then under dir, adding a .map
// extension when the name has none.
func resolveMapPath(dir, name string) string {
	candidates := []string{name}
	if filepath.Ext(name) == "" {
		candidates = append(candidates, name+".map")
	}
	if dir != "" && !filepath.IsAbs(name) {
		for _, c := range slices.Clone(candidates) {
			candidates = append(candidates, filepath.Join(dir, c))
		}
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return name
}

// LoadMap reads a map file. On failure the engine falls back to start.
func (e *Engine) LoadMap(name string) error {
	path := resolveMapPath(e.opts.MapDir, name)
	m, err := warzone.LoadMapFile(path)
	if err != nil {
		e.reset()
		if e.state != warzone.StateStart {
			e.transition(warzone.StateStart)
		}
		return err
	}
	e.mapPath = path
	e.gameMap = m
	e.match = nil
	e.notify(fmt.Sprintf("Map: loaded %s (%d territories, %d continents)", m.Name, len(m.Territories), len(m.Continents)))
	return nil
}

// ValidateMap checks the loaded map. An invalid map is discarded and the
// engine falls back to start.
func (e *Engine) ValidateMap() error {
	if e.gameMap == nil {
		return ErrNoMap
	}
	if err := e.gameMap.Check(); err != nil {
		e.notify("Map: " + err.Error())
		e.reset()
		e.transition(warzone.StateStart)
		return err
	}
	e.notify("Map: " + e.gameMap.Name + " is valid")
	return nil
}

func (e *Engine) newMatch() *warzone.Match {
	m := warzone.NewMatch(uuid.NewString(), e.gameMap, warzone.NewDeck(e.opts.CardsPerKind), e.opts.Seed)
	m.SetObserver(e.observer)
	return m
}

// AddPlayer registers a player with the named strategy.
func (e *Engine) AddPlayer(name, strategy string) error {
	if e.gameMap == nil {
		return ErrNoMap
	}
	if e.match == nil {
		e.match = e.newMatch()
	}
	if len(e.match.Players) >= warzone.MaxPlayers {
		return ErrTooManyPlayers
	}
	s, err := bot.StrategyForName(strings.ToLower(strategy), e.input)
	if err != nil {
		return err
	}
	if err := e.match.AddPlayer(warzone.NewPlayer(name, s)); err != nil {
		return err
	}
	e.notify(fmt.Sprintf("Player: %s joined as %s", name, s.Name()))
	return nil
}

// GameStart deals territories and cards and plays the game to the end.
func (e *Engine) GameStart(ctx context.Context) (*Result, error) {
	if !warzone.Accepts(e.state, warzone.CmdGameStart) {
		return nil, fmt.Errorf("%w: gamestart in state %s", warzone.ErrCommandRejected, e.state)
	}
	if e.match == nil || len(e.match.Players) < warzone.MinPlayers {
		return nil, ErrNotEnough
	}
	e.startup()
	e.matchLog().Info().Str("map", e.gameMap.Name).
		Int("players", len(e.match.Players)).Msg("Match started")
	res, err := e.MainGameLoop(ctx)
	if err != nil {
		return nil, err
	}
	e.matchLog().Info().Str("winner", res.Winner).Bool("draw", res.Draw).
		Int("rounds", res.Rounds).Msg("Match finished")
	return res, nil
}

// startup deals territories round-robin after a shuffle and hands out the
// opening cards. The starting armies arrive with round 1's reinforcements.
func (e *Engine) startup() {
	m := e.match
	names := m.Map.TerritoryNames()
	m.Rand().Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })
	for i, name := range names {
		m.Assign(name, m.Players[i%len(m.Players)])
	}
	for _, p := range m.Players {
		p.Reinforcements = 0
		for i := 0; i < e.opts.StartingCards; i++ {
			m.DrawCard(p)
		}
		e.notify(fmt.Sprintf("Startup: %s holds %d territories, %d starting armies arrive in round 1",
			p.Name, p.TerritoryCount(), e.opts.StartingArmies))
	}
}
