package warzone

import "fmt"

// Validate checks the order against the current match state. It does not
// change the order's state; Execute records the outcome.
func (o *Order) Validate(m *Match) error {
	issuer := m.Player(o.Issuer)
	if issuer == nil {
		return &ValidationError{o, "issuer is not in the match"}
	}

	switch o.Kind {
	case OrderDeploy:
		return validateDeploy(o, m, issuer)
	case OrderAdvance:
		return validateAdvance(o, m, issuer)
	case OrderBomb:
		return validateBomb(o, m, issuer)
	case OrderBlockade:
		return validateBlockade(o, m, issuer)
	case OrderAirlift:
		return validateAirlift(o, m, issuer)
	case OrderNegotiate:
		return validateNegotiate(o, m)
	default:
		return &ValidationError{o, "unknown order kind"}
	}
}

func validateDeploy(o *Order, m *Match, issuer *Player) error {
	if m.Map.Territory(o.Target) == nil {
		return &ValidationError{o, "unknown territory " + o.Target}
	}
	if !issuer.Owns(o.Target) {
		return &ValidationError{o, fmt.Sprintf("%s does not own %s", o.Issuer, o.Target)}
	}
	if o.Armies <= 0 {
		return &ValidationError{o, "army count must be positive"}
	}
	if issuer.Reinforcements < o.Armies {
		return &ValidationError{o, fmt.Sprintf("pool has %d armies, %d requested", issuer.Reinforcements, o.Armies)}
	}
	return nil
}

func validateAdvance(o *Order, m *Match, issuer *Player) error {
	src := m.Map.Territory(o.Source)
	if src == nil {
		return &ValidationError{o, "unknown territory " + o.Source}
	}
	dst := m.Map.Territory(o.Target)
	if dst == nil {
		return &ValidationError{o, "unknown territory " + o.Target}
	}
	if !issuer.Owns(o.Source) {
		return &ValidationError{o, fmt.Sprintf("%s does not own %s", o.Issuer, o.Source)}
	}
	if o.Source == o.Target {
		return &ValidationError{o, "source and target are the same territory"}
	}
	if !m.Map.Adjacent(o.Source, o.Target) {
		return &ValidationError{o, fmt.Sprintf("%s is not adjacent to %s", o.Target, o.Source)}
	}
	if o.Armies <= 0 {
		return &ValidationError{o, "army count must be positive"}
	}
	if src.Armies < o.Armies {
		return &ValidationError{o, fmt.Sprintf("%s holds %d armies, %d requested", o.Source, src.Armies, o.Armies)}
	}
	if dst.Owner != "" && dst.Owner != o.Issuer && m.HasPact(o.Issuer, dst.Owner) {
		return &ValidationError{o, fmt.Sprintf("%s and %s negotiated a truce this round", o.Issuer, dst.Owner)}
	}
	return nil
}

func validateBomb(o *Order, m *Match, issuer *Player) error {
	dst := m.Map.Territory(o.Target)
	if dst == nil {
		return &ValidationError{o, "unknown territory " + o.Target}
	}
	if issuer.Owns(o.Target) {
		return &ValidationError{o, fmt.Sprintf("%s cannot bomb its own territory %s", o.Issuer, o.Target)}
	}
	bordering := false
	for _, adj := range m.Map.Neighbours(o.Target) {
		if issuer.Owns(adj.Name) {
			bordering = true
			break
		}
	}
	if !bordering {
		return &ValidationError{o, fmt.Sprintf("%s is not adjacent to any territory of %s", o.Target, o.Issuer)}
	}
	if dst.Owner != "" && m.HasPact(o.Issuer, dst.Owner) {
		return &ValidationError{o, fmt.Sprintf("%s and %s negotiated a truce this round", o.Issuer, dst.Owner)}
	}
	return nil
}

func validateBlockade(o *Order, m *Match, issuer *Player) error {
	if m.Map.Territory(o.Target) == nil {
		return &ValidationError{o, "unknown territory " + o.Target}
	}
	if !issuer.Owns(o.Target) {
		return &ValidationError{o, fmt.Sprintf("%s does not own %s", o.Issuer, o.Target)}
	}
	return nil
}

func validateAirlift(o *Order, m *Match, issuer *Player) error {
	src := m.Map.Territory(o.Source)
	if src == nil {
		return &ValidationError{o, "unknown territory " + o.Source}
	}
	if m.Map.Territory(o.Target) == nil {
		return &ValidationError{o, "unknown territory " + o.Target}
	}
	if !issuer.Owns(o.Source) || !issuer.Owns(o.Target) {
		return &ValidationError{o, fmt.Sprintf("%s must own both %s and %s", o.Issuer, o.Source, o.Target)}
	}
	if o.Source == o.Target {
		return &ValidationError{o, "source and target are the same territory"}
	}
	if o.Armies <= 0 {
		return &ValidationError{o, "army count must be positive"}
	}
	if src.Armies < o.Armies {
		return &ValidationError{o, fmt.Sprintf("%s holds %d armies, %d requested", o.Source, src.Armies, o.Armies)}
	}
	return nil
}

func validateNegotiate(o *Order, m *Match) error {
	if o.Other == o.Issuer {
		return &ValidationError{o, "cannot negotiate with oneself"}
	}
	if m.Player(o.Other) == nil {
		return &ValidationError{o, "unknown player " + o.Other}
	}
	return nil
}
