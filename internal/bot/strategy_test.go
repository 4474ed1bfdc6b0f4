package bot

import (
	"errors"
	"strings"
	"testing"

	"github.com/freeeve/warzone/pkg/warzone"
)

// frontMatch builds West {W1-W2-W3} and East {E1-E2} joined by W3-E1, with
// p holding the west and q the east.
func frontMatch(t *testing.T, armies map[string]int) (*warzone.Match, *warzone.Player, *warzone.Player) {
	t.Helper()
	mp := warzone.NewMap("front")
	mp.AddContinent("West", 3)
	mp.AddContinent("East", 2)
	for _, n := range []string{"W1", "W2", "W3"} {
		mp.AddTerritory(n, "West")
	}
	for _, n := range []string{"E1", "E2"} {
		mp.AddTerritory(n, "East")
	}
	mp.Connect("W1", "W2")
	mp.Connect("W2", "W3")
	mp.Connect("W3", "E1")
	mp.Connect("E1", "E2")

	m := warzone.NewMatch("test", mp, warzone.NewDeck(2), 5)
	p := warzone.NewPlayer("p", nil)
	q := warzone.NewPlayer("q", nil)
	if err := m.AddPlayer(p); err != nil {
		t.Fatal(err)
	}
	if err := m.AddPlayer(q); err != nil {
		t.Fatal(err)
	}
	for _, n := range []string{"W1", "W2", "W3"} {
		m.Assign(n, p)
	}
	for _, n := range []string{"E1", "E2"} {
		m.Assign(n, q)
	}
	for name, n := range armies {
		mp.Territory(name).Armies = n
	}
	return m, p, q
}

// issueAll calls IssueOrder until it reports done, failing after limit calls.
func issueAll(t *testing.T, s warzone.Strategy, m *warzone.Match, p *warzone.Player, limit int) int {
	t.Helper()
	for i := 1; i <= limit; i++ {
		if !s.IssueOrder(m, p) {
			return i
		}
	}
	t.Fatalf("%s still issuing after %d calls", s.Name(), limit)
	return limit
}

func kinds(p *warzone.Player) []warzone.OrderKind {
	var out []warzone.OrderKind
	for _, o := range p.Orders.All() {
		out = append(out, o.Kind)
	}
	return out
}

func TestStrategyForName(t *testing.T) {
	for _, name := range StrategyNames() {
		s, err := StrategyForName(name, NewScriptedInput())
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if s.Name() != name {
			t.Errorf("expected %s, got %s", name, s.Name())
		}
	}
	if _, err := StrategyForName("random", nil); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("expected ErrUnknownStrategy, got %v", err)
	}
	if _, err := StrategyForName(NameHuman, nil); err == nil {
		t.Error("human without input should fail")
	}
	if IsComputer(NameHuman) || !IsComputer(NameCheater) {
		t.Error("IsComputer misclassifies")
	}
}

func TestAggressive_DeployThenAttack(t *testing.T) {
	m, p, _ := frontMatch(t, map[string]int{"W1": 1, "W2": 2, "W3": 3, "E1": 2, "E2": 2})
	p.Reinforcements = 5
	s := AggressiveStrategy{}

	calls := issueAll(t, s, m, p, 10)
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
	orders := p.Orders.All()
	if len(orders) != 2 {
		t.Fatalf("expected deploy and advance, got %v", kinds(p))
	}
	if d := orders[0]; d.Kind != warzone.OrderDeploy || d.Target != "W3" || d.Armies != 5 {
		t.Errorf("unexpected deploy: %s", d.Describe())
	}
	if a := orders[1]; a.Kind != warzone.OrderAdvance || a.Source != "W3" || a.Target != "E1" || a.Armies != 8 {
		t.Errorf("unexpected advance: %s", a.Describe())
	}
}

func TestAggressive_MovesTowardFront(t *testing.T) {
	m, p, _ := frontMatch(t, map[string]int{"W1": 10, "W2": 1, "W3": 1})
	s := AggressiveStrategy{}
	issueAll(t, s, m, p, 10)

	orders := p.Orders.All()
	if len(orders) != 1 {
		t.Fatalf("expected a single advance, got %v", kinds(p))
	}
	if a := orders[0]; a.Source != "W1" || a.Target != "W2" || a.Armies != 10 {
		t.Errorf("expected W1->W2 with 10, got %s", a.Describe())
	}
}

func TestAggressive_SpendsBombOnItself(t *testing.T) {
	m, p, _ := frontMatch(t, map[string]int{"W3": 4})
	p.Hand.Add(warzone.Card{ID: 100, Kind: warzone.CardBomb})
	issueAll(t, AggressiveStrategy{}, m, p, 10)

	if p.Hand.Has(warzone.CardBomb) {
		t.Error("bomb card should have been played")
	}
	if p.Orders.CountKind(warzone.OrderBomb) != 1 {
		t.Fatalf("expected one bomb order, got %v", kinds(p))
	}
	bomb := p.Orders.At(p.Orders.Len())
	if err := bomb.Validate(m); err == nil {
		t.Error("bombing its own territory should not validate")
	}
}

func TestBenevolent_ReinforcesWeakest(t *testing.T) {
	m, p, _ := frontMatch(t, map[string]int{"W1": 1, "W2": 8, "W3": 3})
	p.Reinforcements = 4
	s := BenevolentStrategy{}
	issueAll(t, s, m, p, 10)

	orders := p.Orders.All()
	if len(orders) != 2 {
		t.Fatalf("expected deploy and one advance, got %v", kinds(p))
	}
	if d := orders[0]; d.Target != "W1" || d.Armies != 4 {
		t.Errorf("expected deploy 4 to W1, got %s", d.Describe())
	}
	if a := orders[1]; a.Kind != warzone.OrderAdvance || a.Source != "W2" || a.Target != "W3" || a.Armies != 7 {
		t.Errorf("expected W2->W3 with 7, got %s", a.Describe())
	}
	for _, o := range orders {
		if o.Kind == warzone.OrderAdvance && !p.Owns(o.Target) {
			t.Errorf("benevolent attacked %s", o.Target)
		}
	}
	if len(s.ToAttack(m, p)) != 0 {
		t.Error("benevolent has nothing to attack")
	}
}

func TestBenevolent_PlaysDefensiveCards(t *testing.T) {
	m, p, _ := frontMatch(t, map[string]int{"W1": 1, "W2": 9, "W3": 1, "E1": 6})
	p.Hand.Add(warzone.Card{ID: 101, Kind: warzone.CardReinforcement})
	p.Hand.Add(warzone.Card{ID: 102, Kind: warzone.CardDiplomacy})
	issueAll(t, BenevolentStrategy{}, m, p, 20)

	if p.Hand.Len() != 0 {
		t.Errorf("expected every card played, hand has %d", p.Hand.Len())
	}
	if p.Orders.CountKind(warzone.OrderDeploy) != 1 || p.Orders.PendingDeploys() != warzone.ReinforcementCardArmies {
		t.Errorf("reinforcement card armies should be deployed, got %v", kinds(p))
	}
	if p.Orders.CountKind(warzone.OrderNegotiate) != 1 {
		t.Fatalf("expected a negotiate order, got %v", kinds(p))
	}
	for _, o := range p.Orders.All() {
		if o.Kind == warzone.OrderNegotiate && o.Other != "q" {
			t.Errorf("expected to negotiate with q, got %s", o.Other)
		}
	}
}

func TestNeutral_IssuesNothing(t *testing.T) {
	m, p, _ := frontMatch(t, nil)
	p.Reinforcements = 10
	s := NeutralStrategy{}
	if s.IssueOrder(m, p) {
		t.Error("neutral should be done immediately")
	}
	if p.Orders.Len() != 0 || s.ToAttack(m, p) != nil {
		t.Error("neutral should neither order nor attack")
	}
	if len(s.ToDefend(m, p)) != 3 {
		t.Error("neutral defends everything it owns")
	}
}

func TestCheater_SeizesNeighbours(t *testing.T) {
	m, p, q := frontMatch(t, map[string]int{"E1": 50})
	p.Reinforcements = 2
	calls := issueAll(t, CheaterStrategy{}, m, p, 5)
	if calls != 2 {
		t.Errorf("expected deploy call then seize call, got %d", calls)
	}
	if !p.Owns("E1") || q.Owns("E1") {
		t.Error("E1 should have been seized")
	}
	if p.Owns("E2") {
		t.Error("E2 did not border p at the start of the turn")
	}
	if m.Map.Territory("E1").Armies != 50 {
		t.Error("seizing should not fight")
	}
}

func TestHuman_ScriptedOrders(t *testing.T) {
	m, p, _ := frontMatch(t, map[string]int{"W3": 4})
	p.Reinforcements = 3
	in := NewScriptedInput(
		"y", "deploy", "W1", "3",
		"maybe",
		"y", "advance", "W3", "E1", "2",
		"n",
	)
	h := &HumanStrategy{Input: in}
	issueAll(t, h, m, p, 10)

	orders := p.Orders.All()
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %v", kinds(p))
	}
	if d := orders[0]; d.Kind != warzone.OrderDeploy || d.Target != "W1" || d.Armies != 3 {
		t.Errorf("unexpected deploy %s", d.Describe())
	}
	if a := orders[1]; a.Kind != warzone.OrderAdvance || a.Source != "W3" || a.Target != "E1" || a.Armies != 2 {
		t.Errorf("unexpected advance %s", a.Describe())
	}
	if in.Remaining() != 0 {
		t.Errorf("%d scripted lines unread", in.Remaining())
	}
}

func TestHuman_NoTerritoriesNoPrompt(t *testing.T) {
	m, p, q := frontMatch(t, nil)
	// Seized earlier in the same issue phase.
	for _, n := range []string{"W1", "W2", "W3"} {
		m.Assign(n, q)
	}
	in := NewScriptedInput("y", "deploy", "W1", "1")
	if (&HumanStrategy{Input: in}).IssueOrder(m, p) {
		t.Error("a player without territories has nothing to order")
	}
	if in.Remaining() != 4 {
		t.Errorf("player should not be prompted, %d lines left", in.Remaining())
	}
}

func TestHuman_RejectsBadInput(t *testing.T) {
	m, p, _ := frontMatch(t, nil)
	p.Reinforcements = 3
	in := NewScriptedInput(
		"y", "deploy", "W1", "9",
		"y", "bomb",
		"y", "charge",
		"y", "deploy", "W1", "lots",
	)
	issueAll(t, &HumanStrategy{Input: in}, m, p, 10)

	if p.Orders.Len() != 0 {
		t.Fatalf("nothing should be queued, got %v", kinds(p))
	}
	said := strings.Join(in.Said(), "\n")
	for _, want := range []string{"only 3 armies", "no bomb card", "Unknown order", "not a positive number"} {
		if !strings.Contains(said, want) {
			t.Errorf("expected %q in messages:\n%s", want, said)
		}
	}
}

func TestHuman_CardOrderConsumesCard(t *testing.T) {
	m, p, _ := frontMatch(t, nil)
	p.Hand.Add(warzone.Card{ID: 7, Kind: warzone.CardBlockade})
	deck := m.Deck.Len()
	in := NewScriptedInput("y", "blockade", "W2", "n")
	issueAll(t, &HumanStrategy{Input: in}, m, p, 5)

	if p.Hand.Has(warzone.CardBlockade) || m.Deck.Len() != deck+1 {
		t.Error("blockade card should be back in the deck")
	}
	if p.Orders.CountKind(warzone.OrderBlockade) != 1 {
		t.Errorf("expected a blockade order, got %v", kinds(p))
	}
}

func TestHuman_EditQueue(t *testing.T) {
	m, p, _ := frontMatch(t, map[string]int{"W2": 5})
	p.Orders.Add(warzone.NewDeploy("p", "W1", 1))
	p.Orders.Add(warzone.NewAdvance("p", "W2", "W1", 1))
	p.Orders.Add(warzone.NewAdvance("p", "W2", "W3", 1))
	in := NewScriptedInput("y", "remove 1", "y", "move 3 2", "y", "remove 3", "n")
	issueAll(t, &HumanStrategy{Input: in}, m, p, 10)

	if p.Orders.Len() != 2 {
		t.Fatalf("expected 2 orders left, got %d", p.Orders.Len())
	}
	if o := p.Orders.At(2); o.Target != "W3" {
		t.Errorf("expected W2->W3 moved to position 2, got %s", o.Describe())
	}
	if !strings.Contains(strings.Join(in.Said(), "\n"), "Cannot remove") {
		t.Error("removing a deploy should be refused")
	}
}
