package bot

import "github.com/freeeve/warzone/pkg/warzone"

// BenevolentStrategy never attacks. It props up its weakest territories
// and spends cards defensively.
type BenevolentStrategy struct{}

func (BenevolentStrategy) Name() string { return NameBenevolent }

// ToDefend returns owned territories weakest first.
func (BenevolentStrategy) ToDefend(m *warzone.Match, p *warzone.Player) []*warzone.Territory {
	return byWeakness(m, p)
}

func (BenevolentStrategy) ToAttack(*warzone.Match, *warzone.Player) []*warzone.Territory {
	return nil
}

// IssueOrder works through one step per call: reinforcement card, deploy,
// one reinforcing advance per source, airlift, blockade, diplomacy.
func (s BenevolentStrategy) IssueOrder(m *warzone.Match, p *warzone.Player) bool {
	if p.TerritoryCount() == 0 {
		return false
	}
	if m.PlayCard(p, warzone.CardReinforcement) {
		return true
	}

	if avail := p.AvailableReinforcements(); avail > 0 {
		p.Orders.Add(warzone.NewDeploy(p.Name, weakest(m, p).Name, avail))
		return true
	}

	if s.reinforce(m, p) {
		return true
	}

	if p.Hand.Has(warzone.CardAirlift) && p.Orders.CountKind(warzone.OrderAirlift) == 0 {
		strong, weak := strongest(m, p), weakest(m, p)
		if n := (effectiveArmies(p, strong) - effectiveArmies(p, weak)) / 2; n > 0 && strong != weak {
			m.PlayCard(p, warzone.CardAirlift)
			p.Orders.Add(warzone.NewAirlift(p.Name, strong.Name, weak.Name, n))
			return true
		}
	}

	if p.Hand.Has(warzone.CardBlockade) && p.Orders.CountKind(warzone.OrderBlockade) == 0 && p.TerritoryCount() > 2 {
		for _, t := range byWeakness(m, p) {
			if targeted(p, t.Name) {
				continue
			}
			m.PlayCard(p, warzone.CardBlockade)
			p.Orders.Add(warzone.NewBlockade(p.Name, t.Name))
			return true
		}
	}

	if p.Hand.Has(warzone.CardDiplomacy) && p.Orders.CountKind(warzone.OrderNegotiate) == 0 {
		if other := strongestNeighbour(m, p); other != "" {
			m.PlayCard(p, warzone.CardDiplomacy)
			p.Orders.Add(warzone.NewNegotiate(p.Name, other))
			return true
		}
	}
	return false
}

// reinforce queues one advance moving all but one army from a stronger
// own neighbour into a weaker territory. Each territory is used at most
// once per turn, as source or target.
func (BenevolentStrategy) reinforce(m *warzone.Match, p *warzone.Player) bool {
	for _, weak := range byWeakness(m, p) {
		if targeted(p, weak.Name) {
			continue
		}
		need := effectiveArmies(p, weak)
		var best *warzone.Territory
		for _, adj := range m.Map.Neighbours(weak.Name) {
			if !p.Owns(adj.Name) || targeted(p, adj.Name) {
				continue
			}
			if best == nil || effectiveArmies(p, adj) > effectiveArmies(p, best) {
				best = adj
			}
		}
		if best == nil {
			continue
		}
		if n := effectiveArmies(p, best) - 1; n > need+1 {
			p.Orders.Add(warzone.NewAdvance(p.Name, best.Name, weak.Name, n))
			return true
		}
	}
	return false
}

// strongestNeighbour names the roster player holding the largest army on a
// territory bordering p, or "".
func strongestNeighbour(m *warzone.Match, p *warzone.Player) string {
	name, armies := "", -1
	for _, t := range frontier(m, p) {
		if t.Owner == "" || t.Owner == warzone.NeutralPlayerName || t.Owner == p.Name {
			continue
		}
		if t.Armies > armies {
			name, armies = t.Owner, t.Armies
		}
	}
	return name
}
