package warzone

import "strings"

// GameState is a state of the engine's state machine.
type GameState string

const (
	StateStart               GameState = "start"
	StateMapLoaded           GameState = "maploaded"
	StateMapValidated        GameState = "mapvalidated"
	StatePlayersAdded        GameState = "playersadded"
	StateAssignReinforcement GameState = "assignreinforcement"
	StateIssueOrders         GameState = "issueorders"
	StateExecuteOrders       GameState = "executeorders"
	StateWin                 GameState = "win"
	StateEnd                 GameState = "end"
)

// Commands accepted from the command processor.
const (
	CmdLoadMap     = "loadmap"
	CmdValidateMap = "validatemap"
	CmdAddPlayer   = "addplayer"
	CmdGameStart   = "gamestart"
	CmdReplay      = "replay"
	CmdQuit        = "quit"
	CmdTournament  = "tournament"
)

// Player count limits enforced by gamestart.
const (
	MinPlayers = 2
	MaxPlayers = 6
)

// transitions lists, per state, the commands it accepts and the state each
// one leads to on success.
var transitions = map[GameState]map[string]GameState{
	StateStart: {
		CmdLoadMap:    StateMapLoaded,
		CmdTournament: StateWin,
	},
	StateMapLoaded: {
		CmdLoadMap:     StateMapLoaded,
		CmdValidateMap: StateMapValidated,
	},
	StateMapValidated: {
		CmdAddPlayer: StatePlayersAdded,
	},
	StatePlayersAdded: {
		CmdAddPlayer: StatePlayersAdded,
		CmdGameStart: StateAssignReinforcement,
	},
	StateWin: {
		CmdReplay: StateStart,
		CmdQuit:   StateEnd,
	},
}

// NextState returns the state reached by applying cmd in the current state,
// and false if the command is not accepted there.
func NextState(current GameState, cmd string) (GameState, bool) {
	next, ok := transitions[current][cmd]
	return next, ok
}

// Accepts reports whether cmd is valid in the given state.
func Accepts(current GameState, cmd string) bool {
	_, ok := transitions[current][cmd]
	return ok
}

// ValidCommands lists the commands accepted in a state, in a stable order.
func ValidCommands(current GameState) []string {
	var cmds []string
	for _, c := range []string{CmdLoadMap, CmdValidateMap, CmdAddPlayer, CmdGameStart, CmdTournament, CmdReplay, CmdQuit} {
		if Accepts(current, c) {
			cmds = append(cmds, c)
		}
	}
	return cmds
}

// TransitionEntry is the loggable string for a state change.
func TransitionEntry(s GameState) string {
	return "Transitioned to game state: " + string(s)
}

// ParseGameState maps a state name back to its value.
func ParseGameState(s string) (GameState, bool) {
	gs := GameState(strings.ToLower(s))
	switch gs {
	case StateStart, StateMapLoaded, StateMapValidated, StatePlayersAdded,
		StateAssignReinforcement, StateIssueOrders, StateExecuteOrders, StateWin, StateEnd:
		return gs, true
	}
	return "", false
}

// MinReinforcements is the minimum pool a player receives each round.
const MinReinforcements = 3

// ReinforcementsFor computes a player's reinforcement grant for a round:
// max(3, owned/3) plus the bonus of every continent the player owns entirely.
func ReinforcementsFor(m *Map, p *Player) int {
	pool := max(MinReinforcements, p.TerritoryCount()/3)
	for _, name := range m.ContinentNames() {
		c := m.Continents[name]
		if ownsAll(p, c.Territories) {
			pool += c.Bonus
		}
	}
	return pool
}

func ownsAll(p *Player, territories []string) bool {
	if len(territories) == 0 {
		return false
	}
	for _, t := range territories {
		if !p.Owns(t) {
			return false
		}
	}
	return true
}
