package bot

import (
	"errors"
	"fmt"

	"github.com/freeeve/warzone/pkg/warzone"
)

// Strategy names accepted by addplayer and the tournament.
const (
	NameHuman      = "human"
	NameAggressive = "aggressive"
	NameBenevolent = "benevolent"
	NameNeutral    = "neutral"
	NameCheater    = "cheater"
)

// ErrUnknownStrategy is returned for names StrategyForName does not know.
var ErrUnknownStrategy = errors.New("unknown strategy")

// StrategyNames lists every strategy name, human first.
func StrategyNames() []string {
	return []string{NameHuman, NameAggressive, NameBenevolent, NameNeutral, NameCheater}
}

// IsComputer reports whether the named strategy plays without input.
func IsComputer(name string) bool {
	switch name {
	case NameAggressive, NameBenevolent, NameNeutral, NameCheater:
		return true
	}
	return false
}

// StrategyForName returns the strategy for a name. The human strategy needs
// an input provider; the others ignore it.
func StrategyForName(name string, input InputProvider) (warzone.Strategy, error) {
	switch name {
	case NameHuman:
		if input == nil {
			return nil, fmt.Errorf("human strategy: no input provider")
		}
		return &HumanStrategy{Input: input}, nil
	case NameAggressive:
		return &AggressiveStrategy{}, nil
	case NameBenevolent:
		return &BenevolentStrategy{}, nil
	case NameNeutral:
		return &NeutralStrategy{}, nil
	case NameCheater:
		return &CheaterStrategy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// --- NeutralStrategy ---

// NeutralStrategy never issues orders. The engine turns a neutral player
// aggressive once it has been attacked.
type NeutralStrategy struct{}

func (NeutralStrategy) Name() string { return NameNeutral }

func (NeutralStrategy) ToDefend(m *warzone.Match, p *warzone.Player) []*warzone.Territory {
	return owned(m, p)
}

func (NeutralStrategy) ToAttack(*warzone.Match, *warzone.Player) []*warzone.Territory {
	return nil
}

func (NeutralStrategy) IssueOrder(*warzone.Match, *warzone.Player) bool {
	return false
}
