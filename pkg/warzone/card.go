package warzone

import (
	"math/rand"
	"slices"
)

// CardKind is the type of a card.
type CardKind int

const (
	CardBomb CardKind = iota
	CardReinforcement
	CardBlockade
	CardAirlift
	CardDiplomacy
)

// ReinforcementCardArmies is the number of armies a reinforcement card adds
// to its player's pool.
const ReinforcementCardArmies = 5

// AllCardKinds returns every card kind in declaration order.
func AllCardKinds() []CardKind {
	return []CardKind{CardBomb, CardReinforcement, CardBlockade, CardAirlift, CardDiplomacy}
}

func (k CardKind) String() string {
	switch k {
	case CardBomb:
		return "bomb"
	case CardReinforcement:
		return "reinforcement"
	case CardBlockade:
		return "blockade"
	case CardAirlift:
		return "airlift"
	case CardDiplomacy:
		return "diplomacy"
	default:
		return "unknown"
	}
}

// ParseCardKind maps a card name to its kind.
func ParseCardKind(s string) (CardKind, bool) {
	for _, k := range AllCardKinds() {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// Card is a single card instance. ID is unique within a deck.
type Card struct {
	ID   int
	Kind CardKind
}

// Deck owns every card that is not currently in a hand.
type Deck struct {
	cards []Card
}

// NewDeck creates a deck holding perKind cards of every kind.
func NewDeck(perKind int) *Deck {
	d := &Deck{}
	id := 1
	for _, k := range AllCardKinds() {
		for i := 0; i < perKind; i++ {
			d.cards = append(d.cards, Card{ID: id, Kind: k})
			id++
		}
	}
	return d
}

// Len returns the number of cards in the deck.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the deck contents.
func (d *Deck) Cards() []Card {
	return slices.Clone(d.cards)
}

// Draw moves a uniformly random card from the deck into the hand.
// Returns ErrEmptyDeck, leaving the hand unchanged, when there is nothing to draw.
func (d *Deck) Draw(h *Hand, rng *rand.Rand) (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	i := rng.Intn(len(d.cards))
	c := d.cards[i]
	d.cards = slices.Delete(d.cards, i, i+1)
	h.cards = append(h.cards, c)
	return c, nil
}

// Return puts a card back into the deck.
func (d *Deck) Return(c Card) {
	d.cards = append(d.cards, c)
}

// Hand is the set of cards a player holds, on loan from the deck.
type Hand struct {
	cards []Card
}

// Len returns the number of cards in the hand.
func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the hand contents.
func (h *Hand) Cards() []Card {
	return slices.Clone(h.cards)
}

// Count returns how many cards of the given kind the hand holds.
func (h *Hand) Count(kind CardKind) int {
	n := 0
	for _, c := range h.cards {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Has reports whether the hand holds at least one card of the kind.
func (h *Hand) Has(kind CardKind) bool {
	return h.Count(kind) > 0
}

// Add puts a card into the hand.
func (h *Hand) Add(c Card) {
	h.cards = append(h.cards, c)
}

// Take removes the first card of the given kind from the hand.
func (h *Hand) Take(kind CardKind) (Card, bool) {
	for i, c := range h.cards {
		if c.Kind == kind {
			h.cards = slices.Delete(h.cards, i, i+1)
			return c, true
		}
	}
	return Card{}, false
}

// Play takes a card of the given kind from the hand and returns it to the
// deck. Reports false if the hand has no such card.
func (h *Hand) Play(kind CardKind, d *Deck) bool {
	c, ok := h.Take(kind)
	if !ok {
		return false
	}
	d.Return(c)
	return true
}
