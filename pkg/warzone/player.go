package warzone

import "slices"

// Strategy decides what a player does during the issue-orders phase.
type Strategy interface {
	Name() string
	// ToDefend returns the player's territories in the order the strategy
	// wants to protect them.
	ToDefend(m *Match, p *Player) []*Territory
	// ToAttack returns the territories the strategy considers targets.
	ToAttack(m *Match, p *Player) []*Territory
	// IssueOrder issues at most one order (or one batch of instant actions)
	// and reports whether the player may still issue more this turn.
	IssueOrder(m *Match, p *Player) bool
}

// Player is a participant in a match.
type Player struct {
	Name           string
	Reinforcements int
	Hand           *Hand
	Orders         *OrdersList
	Strategy       Strategy

	// Attacked is set when an advance battle targets one of the player's
	// territories during the current round.
	Attacked bool

	territories []string
}

// NewPlayer creates a player with an empty hand and orders list.
func NewPlayer(name string, s Strategy) *Player {
	return &Player{
		Name:     name,
		Hand:     &Hand{},
		Orders:   &OrdersList{},
		Strategy: s,
	}
}

// Territories returns the names of the territories the player owns.
func (p *Player) Territories() []string {
	return slices.Clone(p.territories)
}

// TerritoryCount returns how many territories the player owns.
func (p *Player) TerritoryCount() int {
	return len(p.territories)
}

// Owns reports whether the territory is in the player's owned set.
func (p *Player) Owns(name string) bool {
	return slices.Contains(p.territories, name)
}

func (p *Player) addTerritory(name string) {
	if !p.Owns(name) {
		p.territories = append(p.territories, name)
	}
}

func (p *Player) removeTerritory(name string) {
	p.territories = slices.DeleteFunc(p.territories, func(n string) bool { return n == name })
}

// Eliminated reports whether the player owns no territories.
func (p *Player) Eliminated() bool {
	return len(p.territories) == 0
}

// AvailableReinforcements is the part of the pool not yet committed to
// queued deploy orders.
func (p *Player) AvailableReinforcements() int {
	return p.Reinforcements - p.Orders.PendingDeploys()
}

// StrategyName returns the strategy name, or "" if none is set.
func (p *Player) StrategyName() string {
	if p.Strategy == nil {
		return ""
	}
	return p.Strategy.Name()
}
