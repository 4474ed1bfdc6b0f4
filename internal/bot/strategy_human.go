package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/freeeve/warzone/pkg/warzone"
)

// HumanStrategy asks a person for orders, one per IssueOrder call.
//
// Besides the six order kinds the order prompt accepts "reinforcement" to
// play a reinforcement card, "list" to show queued orders, and
// "move <from> <to>" / "remove <pos>" to edit the queue.
type HumanStrategy struct {
	Input InputProvider
}

func (HumanStrategy) Name() string { return NameHuman }

func (HumanStrategy) ToDefend(m *warzone.Match, p *warzone.Player) []*warzone.Territory {
	return owned(m, p)
}

func (HumanStrategy) ToAttack(m *warzone.Match, p *warzone.Player) []*warzone.Territory {
	return frontier(m, p)
}

// IssueOrder returns false when the player answers "n", input ends or the
// player holds no territory. Bad answers are reported and leave the player
// free to try again.
func (h *HumanStrategy) IssueOrder(m *warzone.Match, p *warzone.Player) bool {
	if p.TerritoryCount() == 0 {
		return false
	}
	answer, err := h.Input.ReadLine(fmt.Sprintf("%s, %d armies left to deploy. Issue an order? (y/n): ",
		p.Name, p.AvailableReinforcements()))
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "n", "no":
		return false
	case "y", "yes":
	default:
		h.Input.Say("Please answer y or n.")
		return true
	}

	line, err := h.Input.ReadLine("Order (deploy, advance, bomb, blockade, airlift, negotiate, reinforcement, list, move, remove): ")
	if err != nil {
		return false
	}
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		h.Input.Say("No order given.")
		return true
	}

	switch fields[0] {
	case "reinforcement":
		if !m.PlayCard(p, warzone.CardReinforcement) {
			h.Input.Say("You hold no reinforcement card.")
		}
		return true
	case "list":
		h.list(p)
		return true
	case "move", "remove":
		h.edit(p, fields)
		return true
	}

	kind, ok := warzone.ParseOrderKind(fields[0])
	if !ok {
		h.Input.Say(fmt.Sprintf("Unknown order %q.", fields[0]))
		return true
	}
	card, needsCard := kind.Card()
	if needsCard && !p.Hand.Has(card) {
		h.Input.Say(fmt.Sprintf("You hold no %s card.", card))
		return true
	}

	o, err := h.readOrder(p, kind)
	if err != nil {
		h.Input.Say(err.Error())
		return !errors.Is(err, errInputClosed)
	}
	if needsCard {
		m.PlayCard(p, card)
	}
	p.Orders.Add(o)
	h.Input.Say("Queued: " + o.Describe())
	return true
}

var errInputClosed = errors.New("input closed")

func (h *HumanStrategy) readOrder(p *warzone.Player, kind warzone.OrderKind) (*warzone.Order, error) {
	switch kind {
	case warzone.OrderDeploy:
		target, err := h.ask("Deploy to territory: ")
		if err != nil {
			return nil, err
		}
		n, err := h.askInt("Armies: ")
		if err != nil {
			return nil, err
		}
		if avail := p.AvailableReinforcements(); n > avail {
			return nil, fmt.Errorf("only %d armies left to deploy", avail)
		}
		return warzone.NewDeploy(p.Name, target, n), nil
	case warzone.OrderAdvance, warzone.OrderAirlift:
		src, err := h.ask("From territory: ")
		if err != nil {
			return nil, err
		}
		dst, err := h.ask("To territory: ")
		if err != nil {
			return nil, err
		}
		n, err := h.askInt("Armies: ")
		if err != nil {
			return nil, err
		}
		if kind == warzone.OrderAirlift {
			return warzone.NewAirlift(p.Name, src, dst, n), nil
		}
		return warzone.NewAdvance(p.Name, src, dst, n), nil
	case warzone.OrderBomb, warzone.OrderBlockade:
		target, err := h.ask("Target territory: ")
		if err != nil {
			return nil, err
		}
		if kind == warzone.OrderBomb {
			return warzone.NewBomb(p.Name, target), nil
		}
		return warzone.NewBlockade(p.Name, target), nil
	case warzone.OrderNegotiate:
		other, err := h.ask("Negotiate with player: ")
		if err != nil {
			return nil, err
		}
		return warzone.NewNegotiate(p.Name, other), nil
	}
	return nil, fmt.Errorf("unsupported order %s", kind)
}

func (h *HumanStrategy) ask(prompt string) (string, error) {
	s, err := h.Input.ReadLine(prompt)
	if err != nil {
		return "", errInputClosed
	}
	return strings.TrimSpace(s), nil
}

func (h *HumanStrategy) askInt(prompt string) (int, error) {
	s, err := h.ask(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%q is not a positive number", s)
	}
	return n, nil
}

func (h *HumanStrategy) list(p *warzone.Player) {
	if p.Orders.Len() == 0 {
		h.Input.Say("No orders queued.")
		return
	}
	for i, o := range p.Orders.All() {
		h.Input.Say(fmt.Sprintf("%d. %s", i+1, o.Describe()))
	}
}

func (h *HumanStrategy) edit(p *warzone.Player, fields []string) {
	nums := make([]int, 0, 2)
	for _, f := range fields[1:] {
		n, err := strconv.Atoi(f)
		if err != nil {
			h.Input.Say(fmt.Sprintf("%q is not a position.", f))
			return
		}
		nums = append(nums, n)
	}
	var err error
	switch {
	case fields[0] == "move" && len(nums) == 2:
		err = p.Orders.Move(nums[0], nums[1])
	case fields[0] == "remove" && len(nums) == 1:
		err = p.Orders.Remove(nums[0])
	default:
		h.Input.Say("Usage: move <from> <to> | remove <pos>")
		return
	}
	if err != nil {
		h.Input.Say("Cannot " + fields[0] + ": " + err.Error())
		return
	}
	h.list(p)
}
