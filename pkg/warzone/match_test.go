package warzone

import "testing"

func TestMatch_AddPlayerRejectsDuplicates(t *testing.T) {
	m := NewMatch("m", lineMap(), nil, 1)
	if err := m.AddPlayer(NewPlayer("ann", nil)); err != nil {
		t.Fatalf("add: %v", err)
	}
	for _, name := range []string{"ann", "", NeutralPlayerName} {
		if err := m.AddPlayer(NewPlayer(name, nil)); err == nil {
			t.Errorf("name %q should be rejected", name)
		}
	}
}

func TestMatch_AssignKeepsOwnershipConsistent(t *testing.T) {
	m, p, q, _ := lineMatch(t)
	m.Assign("B", q)
	if p.Owns("B") || !q.Owns("B") || m.Map.Territory("B").Owner != "q" {
		t.Fatal("ownership out of sync after assign")
	}
	if m.Owner("B") != q {
		t.Error("Owner should resolve to q")
	}
	m.Assign("Z", p)
	if p.TerritoryCount() != 1 {
		t.Error("assigning an unknown territory must be a no-op")
	}
}

func TestMatch_RemoveEliminatedAndWinner(t *testing.T) {
	m, p, q, _ := lineMatch(t)
	if m.Winner() != nil {
		t.Fatal("no winner with two players")
	}
	m.Assign("C", p)
	out := m.RemoveEliminated()
	if len(out) != 1 || out[0] != q {
		t.Fatalf("expected q eliminated, got %v", out)
	}
	if m.Winner() != p {
		t.Error("p should be the winner")
	}
}

func TestMatch_NeutralDoesNotBlockWin(t *testing.T) {
	m, p, _, _ := lineMatch(t)
	m.Assign("A", m.NeutralPlayer())
	m.Assign("C", p)
	m.RemoveEliminated()
	if m.Winner() != p {
		t.Error("neutral territories must not prevent a win")
	}
	if m.Player(NeutralPlayerName) == nil {
		t.Error("neutral player should be reachable by name")
	}
}

func TestMatch_DrawCardLogs(t *testing.T) {
	m, p, _, rec := lineMatch(t)
	m.DrawCard(p)
	if p.Hand.Len() != 1 || len(rec.entries) != 1 {
		t.Fatalf("expected one card and one entry, got %d, %v", p.Hand.Len(), rec.entries)
	}
}

func TestMatch_PlayReinforcementCard(t *testing.T) {
	m, p, _, _ := lineMatch(t)
	if m.PlayCard(p, CardReinforcement) {
		t.Fatal("empty hand cannot play")
	}
	p.Hand.Add(Card{ID: 99, Kind: CardReinforcement})
	deckBefore := m.Deck.Len()
	if !m.PlayCard(p, CardReinforcement) {
		t.Fatal("play failed")
	}
	if p.Reinforcements != ReinforcementCardArmies || m.Deck.Len() != deckBefore+1 {
		t.Errorf("pool %d deck %d", p.Reinforcements, m.Deck.Len())
	}
}
