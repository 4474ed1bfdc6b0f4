package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/freeeve/warzone/internal/bot"
	"github.com/freeeve/warzone/pkg/warzone"
)

// StallRounds is how many consecutive rounds without a single change of
// territory ownership end a game in a draw.
const StallRounds = 100

// MainGameLoop cycles reinforcement, issue and execute phases until one
// player is left or the turn limit is hit, then enters the win state.
func (e *Engine) MainGameLoop(ctx context.Context) (*Result, error) {
	m := e.match
	res := &Result{MatchID: m.ID, Map: m.Map.Name}
	idle := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m.Round++

		e.transition(warzone.StateAssignReinforcement)
		e.ReinforcementPhase()
		if e.finished(res) {
			break
		}

		before := e.ownership()
		e.transition(warzone.StateIssueOrders)
		if err := e.IssueOrdersPhase(ctx); err != nil {
			return nil, err
		}

		e.transition(warzone.StateExecuteOrders)
		e.ExecuteOrdersPhase()
		e.endOfRound()
		if e.finished(res) {
			break
		}

		if e.ownership() == before {
			idle++
		} else {
			idle = 0
		}
		if idle >= StallRounds {
			res.Draw = true
			e.notify(fmt.Sprintf("Draw: no territory changed hands for %d turns", idle))
			break
		}

		if e.opts.MaxTurns > 0 && m.Round >= e.opts.MaxTurns {
			res.Draw = true
			e.notify(fmt.Sprintf("Draw: no winner after %d turns", m.Round))
			break
		}
	}
	res.Rounds = m.Round
	e.result = res
	e.transition(warzone.StateWin)
	return res, nil
}

// finished removes eliminated players and reports whether the game is over.
func (e *Engine) finished(res *Result) bool {
	for _, p := range e.match.RemoveEliminated() {
		e.notify("Eliminated: " + p.Name + " holds no territories")
	}
	switch len(e.match.Players) {
	case 0:
		res.Draw = true
		e.notify("Draw: every player has been eliminated")
		return true
	case 1:
		res.Winner = e.match.Winner().Name
		e.notify("Win: " + res.Winner + " conquered the map")
		return true
	}
	return false
}

// ReinforcementPhase recomputes each player's pool from the reinforcement
// formula. Armies left undeployed last round are lost. The first round also
// brings the starting armies.
func (e *Engine) ReinforcementPhase() {
	for _, p := range e.match.Players {
		grant := warzone.ReinforcementsFor(e.match.Map, p)
		if e.match.Round == 1 {
			grant += e.opts.StartingArmies
		}
		p.Reinforcements = grant
		e.notify(fmt.Sprintf("Reinforcement: %s receives %d armies", p.Name, grant))
	}
}

// IssueOrdersPhase asks players for orders round-robin, one IssueOrder
// call per player per pass, until every player is done or has used
// MaxIssueCalls calls.
func (e *Engine) IssueOrdersPhase(ctx context.Context) error {
	players := e.match.Players
	done := make([]bool, len(players))
	calls := make([]int, len(players))
	remaining := len(players)
	for remaining > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		for i, p := range players {
			if done[i] {
				continue
			}
			calls[i]++
			if p.Strategy == nil || !p.Strategy.IssueOrder(e.match, p) || calls[i] >= e.opts.MaxIssueCalls {
				done[i] = true
				remaining--
			}
		}
	}
	for _, p := range players {
		e.notify(fmt.Sprintf("Issue: %s queued %d orders", p.Name, p.Orders.Len()))
	}
	return nil
}

// ExecuteOrdersPhase drains leading deploys round-robin, then every other
// order one per player per pass, in roster order. It returns how many
// orders executed successfully.
func (e *Engine) ExecuteOrdersPhase() int {
	players := e.match.Players
	executed := 0
	for progressed := true; progressed; {
		progressed = false
		for _, p := range players {
			if o := p.Orders.Front(); o != nil && o.Kind == warzone.OrderDeploy {
				if e.execute(p.Orders.Pop()) {
					executed++
				}
				progressed = true
			}
		}
	}
	for progressed := true; progressed; {
		progressed = false
		for _, p := range players {
			if o := p.Orders.Pop(); o != nil {
				if e.execute(o) {
					executed++
				}
				progressed = true
			}
		}
	}
	return executed
}

func (e *Engine) execute(o *warzone.Order) bool {
	if err := o.Execute(e.match); err != nil {
		e.matchLog().Debug().Err(err).Str("player", o.Issuer).Msg("Order rejected")
		return false
	}
	return true
}

// ownership fingerprints who owns what.
func (e *Engine) ownership() string {
	var b strings.Builder
	for _, name := range e.match.Map.TerritoryNames() {
		b.WriteString(e.match.Map.Territory(name).Owner)
		b.WriteByte(',')
	}
	return b.String()
}

// endOfRound expires pacts and turns attacked neutral players aggressive.
func (e *Engine) endOfRound() {
	e.match.ClearPacts()
	for _, p := range e.match.Players {
		if p.Attacked && p.StrategyName() == bot.NameNeutral {
			p.Strategy = &bot.AggressiveStrategy{}
			e.notify("Strategy: " + p.Name + " was attacked and turns aggressive")
		}
		p.Attacked = false
	}
}
