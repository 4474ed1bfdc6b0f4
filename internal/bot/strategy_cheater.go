package bot

import "github.com/freeeve/warzone/pkg/warzone"

// CheaterStrategy ignores the rules: after deploying it takes every
// neighbouring territory outright, with no orders and no battles.
type CheaterStrategy struct{}

func (CheaterStrategy) Name() string { return NameCheater }

func (CheaterStrategy) ToDefend(m *warzone.Match, p *warzone.Player) []*warzone.Territory {
	return owned(m, p)
}

// ToAttack returns every territory bordering the player.
func (CheaterStrategy) ToAttack(m *warzone.Match, p *warzone.Player) []*warzone.Territory {
	return frontier(m, p)
}

func (s CheaterStrategy) IssueOrder(m *warzone.Match, p *warzone.Player) bool {
	if p.TerritoryCount() == 0 {
		return false
	}
	if avail := p.AvailableReinforcements(); avail > 0 {
		p.Orders.Add(warzone.NewDeploy(p.Name, strongest(m, p).Name, avail))
		return true
	}
	for _, t := range s.ToAttack(m, p) {
		from := t.Owner
		m.Assign(t.Name, p)
		m.Notifyf("Cheat: %s seized %s from %s", p.Name, t.Name, from)
	}
	return false
}
