package warzone

import (
	"fmt"
	"math/rand"
	"slices"
)

// NeutralPlayerName is the name of the player that receives blockaded territories.
const NeutralPlayerName = "Neutral"

// Observer receives loggable entries produced by the engine.
type Observer interface {
	Notify(entry string)
}

// NoopObserver discards every entry.
type NoopObserver struct{}

func (NoopObserver) Notify(string) {}

type pact struct{ a, b string }

// Match is the mutable state of one game: its map, deck, roster and the
// round-scoped pact registry. Concurrently running games must each have
// their own Match.
type Match struct {
	ID      string
	Map     *Map
	Deck    *Deck
	Players []*Player // active roster, registration order
	Neutral *Player   // created on first blockade, never in Players
	Round   int

	pacts    map[pact]bool
	rng      *rand.Rand
	observer Observer
}

// NewMatch creates a match on the given map. A zero seed picks a random one.
func NewMatch(id string, m *Map, deck *Deck, seed int64) *Match {
	if seed == 0 {
		seed = rand.Int63()
	}
	if deck == nil {
		deck = &Deck{}
	}
	return &Match{
		ID:       id,
		Map:      m,
		Deck:     deck,
		pacts:    make(map[pact]bool),
		rng:      rand.New(rand.NewSource(seed)),
		observer: NoopObserver{},
	}
}

// SetObserver replaces the observer. A nil observer discards entries.
func (m *Match) SetObserver(o Observer) {
	if o == nil {
		o = NoopObserver{}
	}
	m.observer = o
}

// Notify forwards an entry to the observer.
func (m *Match) Notify(entry string) {
	m.observer.Notify(entry)
}

// Notifyf formats and forwards an entry to the observer.
func (m *Match) Notifyf(format string, args ...any) {
	m.observer.Notify(fmt.Sprintf(format, args...))
}

// Rand returns the match's random source.
func (m *Match) Rand() *rand.Rand {
	return m.rng
}

// AddPlayer appends a player to the roster. Names must be unique.
func (m *Match) AddPlayer(p *Player) error {
	if p.Name == "" || p.Name == NeutralPlayerName || m.Player(p.Name) != nil {
		return fmt.Errorf("player name %q unavailable", p.Name)
	}
	m.Players = append(m.Players, p)
	return nil
}

// Player returns the named player, including the neutral player, or nil.
func (m *Match) Player(name string) *Player {
	for _, p := range m.Players {
		if p.Name == name {
			return p
		}
	}
	if m.Neutral != nil && m.Neutral.Name == name {
		return m.Neutral
	}
	return nil
}

// Owner returns the player owning the territory, or nil.
func (m *Match) Owner(territory string) *Player {
	t := m.Map.Territory(territory)
	if t == nil || t.Owner == "" {
		return nil
	}
	return m.Player(t.Owner)
}

// NeutralPlayer returns the neutral player, creating it on first use.
func (m *Match) NeutralPlayer() *Player {
	if m.Neutral == nil {
		m.Neutral = NewPlayer(NeutralPlayerName, nil)
	}
	return m.Neutral
}

// Assign gives an unowned or owned territory to a player, keeping both the
// territory and the players' owned lists consistent.
func (m *Match) Assign(territory string, to *Player) {
	t := m.Map.Territory(territory)
	if t == nil {
		return
	}
	if prev := m.Player(t.Owner); prev != nil {
		prev.removeTerritory(territory)
	}
	t.Owner = to.Name
	to.addTerritory(territory)
}

// RemoveEliminated drops players without territories from the roster and
// returns them.
func (m *Match) RemoveEliminated() []*Player {
	var out []*Player
	m.Players = slices.DeleteFunc(m.Players, func(p *Player) bool {
		if p.Eliminated() {
			out = append(out, p)
			return true
		}
		return false
	})
	return out
}

// Negotiate records a symmetric pact between two players for the current round.
func (m *Match) Negotiate(a, b string) {
	m.pacts[pact{a, b}] = true
	m.pacts[pact{b, a}] = true
}

// HasPact reports whether the two players negotiated this round.
func (m *Match) HasPact(a, b string) bool {
	return m.pacts[pact{a, b}]
}

// ClearPacts forgets every pact; called at the end of each round.
func (m *Match) ClearPacts() {
	clear(m.pacts)
}

// Winner returns the last remaining player, or nil while two or more remain.
func (m *Match) Winner() *Player {
	if len(m.Players) == 1 {
		return m.Players[0]
	}
	return nil
}

// DrawCard draws a card for the player. An empty deck is reported to the
// observer and otherwise ignored.
func (m *Match) DrawCard(p *Player) {
	c, err := m.Deck.Draw(p.Hand, m.rng)
	if err != nil {
		m.Notifyf("Card: %s could not draw a card (%v)", p.Name, err)
		return
	}
	m.Notifyf("Card: %s drew a %s card", p.Name, c.Kind)
}

// PlayCard returns a card of the given kind from the player's hand to the
// deck. A reinforcement card also adds ReinforcementCardArmies to the pool.
// It reports false when the player holds no such card.
func (m *Match) PlayCard(p *Player, kind CardKind) bool {
	if !p.Hand.Play(kind, m.Deck) {
		return false
	}
	if kind == CardReinforcement {
		p.Reinforcements += ReinforcementCardArmies
	}
	m.Notifyf("Card: %s played a %s card", p.Name, kind)
	return true
}
