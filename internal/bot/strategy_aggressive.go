package bot

import "github.com/freeeve/warzone/pkg/warzone"

// AggressiveStrategy masses everything on its strongest territory and
// attacks from there every turn.
//
// A turn is deploy, then one advance, then the bomb card if held. The bomb
// targets the player's own strongest territory and is rejected at
// execution; holding bombs is not worth the hand space to this strategy.
type AggressiveStrategy struct{}

func (AggressiveStrategy) Name() string { return NameAggressive }

// ToDefend returns owned territories strongest first.
func (AggressiveStrategy) ToDefend(m *warzone.Match, p *warzone.Player) []*warzone.Territory {
	return byStrength(m, p)
}

// ToAttack returns the enemy neighbours of the strongest territory.
func (AggressiveStrategy) ToAttack(m *warzone.Match, p *warzone.Player) []*warzone.Territory {
	src := strongest(m, p)
	if src == nil {
		return nil
	}
	return enemyNeighbours(m, p, src.Name)
}

func (s AggressiveStrategy) IssueOrder(m *warzone.Match, p *warzone.Player) bool {
	src := strongest(m, p)
	if src == nil {
		return false
	}

	if avail := p.AvailableReinforcements(); avail > 0 {
		p.Orders.Add(warzone.NewDeploy(p.Name, src.Name, avail))
		return true
	}

	if p.Orders.CountKind(warzone.OrderAdvance) == 0 {
		if n := effectiveArmies(p, src); n > 0 {
			if targets := s.ToAttack(m, p); len(targets) > 0 {
				p.Orders.Add(warzone.NewAdvance(p.Name, src.Name, targets[0].Name, n))
				return true
			}
			if step := stepTowardEnemy(m, p, src.Name); step != "" {
				p.Orders.Add(warzone.NewAdvance(p.Name, src.Name, step, n))
				return true
			}
		}
	}

	if p.Orders.CountKind(warzone.OrderBomb) == 0 && m.PlayCard(p, warzone.CardBomb) {
		p.Orders.Add(warzone.NewBomb(p.Name, src.Name))
	}
	return false
}
