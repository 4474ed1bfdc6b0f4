package warzone

import "fmt"

// OrderKind discriminates the order variants.
type OrderKind int

const (
	OrderDeploy OrderKind = iota
	OrderAdvance
	OrderBomb
	OrderBlockade
	OrderAirlift
	OrderNegotiate
)

func (k OrderKind) String() string {
	switch k {
	case OrderDeploy:
		return "Deploy"
	case OrderAdvance:
		return "Advance"
	case OrderBomb:
		return "Bomb"
	case OrderBlockade:
		return "Blockade"
	case OrderAirlift:
		return "Airlift"
	case OrderNegotiate:
		return "Negotiate"
	default:
		return "Unknown"
	}
}

// ParseOrderKind maps a case-sensitive lower-case order name to its kind.
func ParseOrderKind(s string) (OrderKind, bool) {
	switch s {
	case "deploy":
		return OrderDeploy, true
	case "advance":
		return OrderAdvance, true
	case "bomb":
		return OrderBomb, true
	case "blockade":
		return OrderBlockade, true
	case "airlift":
		return OrderAirlift, true
	case "negotiate":
		return OrderNegotiate, true
	default:
		return 0, false
	}
}

// Card returns the card an order kind consumes, if any.
func (k OrderKind) Card() (CardKind, bool) {
	switch k {
	case OrderBomb:
		return CardBomb, true
	case OrderBlockade:
		return CardBlockade, true
	case OrderAirlift:
		return CardAirlift, true
	case OrderNegotiate:
		return CardDiplomacy, true
	default:
		return 0, false
	}
}

// OrderState tracks an order through validate-then-execute.
type OrderState int

const (
	StateUnvalidated OrderState = iota
	StateValid
	StateInvalid  // terminal
	StateExecuted // terminal
)

func (s OrderState) String() string {
	switch s {
	case StateUnvalidated:
		return "unvalidated"
	case StateValid:
		return "valid"
	case StateInvalid:
		return "invalid"
	case StateExecuted:
		return "executed"
	default:
		return "unknown"
	}
}

// Order is a pending action. Which fields are meaningful depends on Kind:
//
//	Deploy:    Target, Armies
//	Advance:   Source, Target, Armies (Defender set on execution)
//	Bomb:      Target
//	Blockade:  Target
//	Airlift:   Source, Target, Armies
//	Negotiate: Other
type Order struct {
	Kind   OrderKind
	Issuer string

	Source string
	Target string
	Armies int
	Other  string

	// Defender is the owner of the advance target at execution time.
	Defender string

	state  OrderState
	effect string
}

func NewDeploy(issuer, target string, armies int) *Order {
	return &Order{Kind: OrderDeploy, Issuer: issuer, Target: target, Armies: armies}
}

func NewAdvance(issuer, source, target string, armies int) *Order {
	return &Order{Kind: OrderAdvance, Issuer: issuer, Source: source, Target: target, Armies: armies}
}

func NewBomb(issuer, target string) *Order {
	return &Order{Kind: OrderBomb, Issuer: issuer, Target: target}
}

func NewBlockade(issuer, target string) *Order {
	return &Order{Kind: OrderBlockade, Issuer: issuer, Target: target}
}

func NewAirlift(issuer, source, target string, armies int) *Order {
	return &Order{Kind: OrderAirlift, Issuer: issuer, Source: source, Target: target, Armies: armies}
}

func NewNegotiate(issuer, other string) *Order {
	return &Order{Kind: OrderNegotiate, Issuer: issuer, Other: other}
}

// State returns the order's lifecycle state.
func (o *Order) State() OrderState {
	return o.state
}

// Effect returns what executing the order did, or why it did nothing.
// Empty until the order has been executed or rejected.
func (o *Order) Effect() string {
	return o.effect
}

// Describe returns a short human-readable description of the request.
func (o *Order) Describe() string {
	switch o.Kind {
	case OrderDeploy:
		return fmt.Sprintf("%s deploys %d to %s", o.Issuer, o.Armies, o.Target)
	case OrderAdvance:
		return fmt.Sprintf("%s advances %d from %s to %s", o.Issuer, o.Armies, o.Source, o.Target)
	case OrderBomb:
		return fmt.Sprintf("%s bombs %s", o.Issuer, o.Target)
	case OrderBlockade:
		return fmt.Sprintf("%s blockades %s", o.Issuer, o.Target)
	case OrderAirlift:
		return fmt.Sprintf("%s airlifts %d from %s to %s", o.Issuer, o.Armies, o.Source, o.Target)
	case OrderNegotiate:
		return fmt.Sprintf("%s negotiates with %s", o.Issuer, o.Other)
	default:
		return o.Issuer + " ???"
	}
}

// String is the loggable projection: "<kind>: <effect>". Before execution
// the effect is the order description.
func (o *Order) String() string {
	effect := o.effect
	if effect == "" {
		effect = o.Describe()
	}
	return o.Kind.String() + ": " + effect
}
