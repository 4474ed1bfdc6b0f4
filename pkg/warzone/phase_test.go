package warzone

import (
	"fmt"
	"testing"
)

func TestNextState(t *testing.T) {
	tests := []struct {
		from GameState
		cmd  string
		want GameState
		ok   bool
	}{
		{StateStart, CmdLoadMap, StateMapLoaded, true},
		{StateStart, CmdValidateMap, "", false},
		{StateStart, CmdTournament, StateWin, true},
		{StateMapLoaded, CmdLoadMap, StateMapLoaded, true},
		{StateMapLoaded, CmdValidateMap, StateMapValidated, true},
		{StateMapLoaded, CmdAddPlayer, "", false},
		{StateMapValidated, CmdAddPlayer, StatePlayersAdded, true},
		{StateMapValidated, CmdLoadMap, "", false},
		{StatePlayersAdded, CmdAddPlayer, StatePlayersAdded, true},
		{StatePlayersAdded, CmdGameStart, StateAssignReinforcement, true},
		{StateIssueOrders, CmdGameStart, "", false},
		{StateWin, CmdReplay, StateStart, true},
		{StateWin, CmdQuit, StateEnd, true},
		{StateEnd, CmdReplay, "", false},
	}
	for _, tt := range tests {
		got, ok := NextState(tt.from, tt.cmd)
		if got != tt.want || ok != tt.ok {
			t.Errorf("NextState(%s, %s) = %q, %v; want %q, %v", tt.from, tt.cmd, got, ok, tt.want, tt.ok)
		}
	}
}

func TestValidCommands(t *testing.T) {
	cmds := ValidCommands(StatePlayersAdded)
	if len(cmds) != 2 || cmds[0] != CmdAddPlayer || cmds[1] != CmdGameStart {
		t.Errorf("unexpected commands: %v", cmds)
	}
	if len(ValidCommands(StateExecuteOrders)) != 0 {
		t.Error("play states accept no commands")
	}
}

func TestTransitionEntry(t *testing.T) {
	if got := TransitionEntry(StateMapLoaded); got != "Transitioned to game state: maploaded" {
		t.Errorf("unexpected entry %q", got)
	}
}

func TestParseGameState(t *testing.T) {
	if s, ok := ParseGameState("IssueOrders"); !ok || s != StateIssueOrders {
		t.Errorf("got %q %v", s, ok)
	}
	if _, ok := ParseGameState("paused"); ok {
		t.Error("paused is not a state")
	}
}

func TestReinforcementsFor(t *testing.T) {
	m := NewMap("big")
	m.AddContinent("Small", 4)
	m.AddContinent("Large", 7)
	m.AddTerritory("s1", "Small")
	m.AddTerritory("s2", "Small")
	for i := 0; i < 12; i++ {
		m.AddTerritory(fmt.Sprintf("l%d", i), "Large")
	}
	match := NewMatch("r", m, nil, 1)
	p := NewPlayer("p", nil)
	match.AddPlayer(p)

	if got := ReinforcementsFor(m, p); got != MinReinforcements {
		t.Errorf("no territories: expected %d, got %d", MinReinforcements, got)
	}

	for i := 0; i < 9; i++ {
		match.Assign(fmt.Sprintf("l%d", i), p)
	}
	if got := ReinforcementsFor(m, p); got != 3 {
		t.Errorf("9 territories: expected 3, got %d", got)
	}

	match.Assign("s1", p)
	match.Assign("s2", p)
	match.Assign("l9", p)
	// 12 territories -> 4, plus the Small bonus.
	if got := ReinforcementsFor(m, p); got != 8 {
		t.Errorf("12 territories with Small: expected 8, got %d", got)
	}

	match.Assign("l10", p)
	match.Assign("l11", p)
	if got := ReinforcementsFor(m, p); got != 4+4+7 {
		t.Errorf("whole map: expected 15, got %d", got)
	}
}
