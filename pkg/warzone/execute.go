package warzone

import (
	"fmt"
	"math/rand"
)

// Kill probabilities per unit per battle round.
const (
	AttackerKillChance = 0.7
	DefenderKillChance = 0.6
)

// Execute validates the order and, if valid, applies it to the match.
// An invalid order is marked Invalid, reported to the observer and left
// without effect. Executing a finished order is reported and otherwise a
// no-op returning ErrOrderFinished.
func (o *Order) Execute(m *Match) error {
	if o.state == StateInvalid || o.state == StateExecuted {
		m.Notifyf("%s: %s, already %s, not executed again", o.Kind, o.Describe(), o.state)
		return ErrOrderFinished
	}
	if err := o.Validate(m); err != nil {
		o.state = StateInvalid
		o.effect = "rejected, " + err.Error()
		m.Notify(o.String())
		return err
	}
	o.state = StateValid

	switch o.Kind {
	case OrderDeploy:
		o.executeDeploy(m)
	case OrderAdvance:
		o.executeAdvance(m)
	case OrderBomb:
		o.executeBomb(m)
	case OrderBlockade:
		o.executeBlockade(m)
	case OrderAirlift:
		o.executeAirlift(m)
	case OrderNegotiate:
		o.executeNegotiate(m)
	}
	o.state = StateExecuted
	m.Notify(o.String())
	return nil
}

func (o *Order) executeDeploy(m *Match) {
	issuer := m.Player(o.Issuer)
	t := m.Map.Territory(o.Target)
	t.Armies += o.Armies
	issuer.Reinforcements -= o.Armies
	o.effect = fmt.Sprintf("%s deployed %d armies to %s (now %d)", o.Issuer, o.Armies, o.Target, t.Armies)
}

func (o *Order) executeAdvance(m *Match) {
	issuer := m.Player(o.Issuer)
	src := m.Map.Territory(o.Source)
	dst := m.Map.Territory(o.Target)

	if dst.Owner == o.Issuer {
		src.Armies -= o.Armies
		dst.Armies += o.Armies
		o.effect = fmt.Sprintf("%s moved %d armies from %s to %s", o.Issuer, o.Armies, o.Source, o.Target)
		return
	}

	o.Defender = dst.Owner
	defender := m.Player(dst.Owner)
	if defender != nil {
		defender.Attacked = true
	}

	src.Armies -= o.Armies
	startDefenders := dst.Armies
	attackers, defenders := ResolveBattle(o.Armies, dst.Armies, m.rng)

	if attackers == 0 {
		dst.Armies = defenders
		o.effect = fmt.Sprintf("%s lost %d armies attacking %s from %s; %s holds with %d of %d",
			o.Issuer, o.Armies, o.Target, o.Source, ownerLabel(o.Defender), defenders, startDefenders)
		return
	}

	m.Assign(o.Target, issuer)
	dst.Armies = attackers
	o.effect = fmt.Sprintf("%s conquered %s from %s with %d of %d armies surviving",
		o.Issuer, o.Target, ownerLabel(o.Defender), attackers, o.Armies)
	m.DrawCard(issuer)
}

func (o *Order) executeBomb(m *Match) {
	t := m.Map.Territory(o.Target)
	before := t.Armies
	t.Armies /= 2
	o.effect = fmt.Sprintf("%s bombed %s, armies %d -> %d", o.Issuer, o.Target, before, t.Armies)
}

func (o *Order) executeBlockade(m *Match) {
	t := m.Map.Territory(o.Target)
	t.Armies *= 3
	m.Assign(o.Target, m.NeutralPlayer())
	o.effect = fmt.Sprintf("%s blockaded %s, now held by %s with %d armies", o.Issuer, o.Target, NeutralPlayerName, t.Armies)
}

func (o *Order) executeAirlift(m *Match) {
	src := m.Map.Territory(o.Source)
	dst := m.Map.Territory(o.Target)
	src.Armies -= o.Armies
	dst.Armies += o.Armies
	o.effect = fmt.Sprintf("%s airlifted %d armies from %s to %s", o.Issuer, o.Armies, o.Source, o.Target)
}

func (o *Order) executeNegotiate(m *Match) {
	m.Negotiate(o.Issuer, o.Other)
	o.effect = fmt.Sprintf("%s and %s agreed to a truce for this round", o.Issuer, o.Other)
}

// ResolveBattle fights until one side has no units left. Each round every
// attacker kills a defender with probability AttackerKillChance and every
// defender kills an attacker with probability DefenderKillChance; both
// sides fire before losses are applied. Callers treat attackers == 0 as a
// failed attack even when defenders also reached zero.
func ResolveBattle(attackers, defenders int, rng *rand.Rand) (int, int) {
	for attackers > 0 && defenders > 0 {
		defenderLosses := 0
		for i := 0; i < attackers; i++ {
			if rng.Float64() < AttackerKillChance {
				defenderLosses++
			}
		}
		attackerLosses := 0
		for i := 0; i < defenders; i++ {
			if rng.Float64() < DefenderKillChance {
				attackerLosses++
			}
		}
		defenders = max(0, defenders-defenderLosses)
		attackers = max(0, attackers-attackerLosses)
	}
	return attackers, defenders
}

func ownerLabel(name string) string {
	if name == "" {
		return "nobody"
	}
	return name
}
