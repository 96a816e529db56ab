package poker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidCard is returned when a rank, suit or modifier falls outside its enumeration.
var ErrInvalidCard = errors.New("invalid card")

// Rank is a card rank. Two is 2 and Ace is 14; the zero value is not a valid rank.
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Valid reports whether r is one of the thirteen ranks.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Chips returns the base chip value of the rank: face value for numerals,
// 10 for court cards and 11 for an ace.
func (r Rank) Chips() int {
	switch {
	case r == Ace:
		return 11
	case r >= Jack && r <= King:
		return 10
	case r.Valid():
		return int(r)
	default:
		return 0
	}
}

// String returns the rank as printed on the card ("10" rather than "T").
func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if r.Valid() {
		return fmt.Sprintf("%d", int(r))
	}
	return "?"
}

// Suit is a card suit; the zero value is not a valid suit.
type Suit uint8

const (
	Spades Suit = iota + 1
	Hearts
	Diamonds
	Clubs
)

// Suits lists the four suits in display order.
var Suits = [...]Suit{Spades, Hearts, Diamonds, Clubs}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s >= Spades && s <= Clubs
}

// Symbol returns the unicode suit symbol.
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Letter returns the single-letter suit code used in card notation.
func (s Suit) Letter() string {
	switch s {
	case Spades:
		return "s"
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	default:
		return "?"
	}
}

// IsRed reports whether the suit is printed in red.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Enhancement is the optional enhancement slot of a card.
// Wild, Gold and Lucky are modelled but do not affect scoring yet.
type Enhancement uint8

const (
	NoEnhancement Enhancement = iota
	Bonus
	MultCard
	Wild
	Glass
	Steel
	Stone
	GoldCard
	Lucky
)

var enhancementNames = [...]string{"", "Bonus", "Mult", "Wild", "Glass", "Steel", "Stone", "Gold", "Lucky"}

func (e Enhancement) String() string {
	if int(e) < len(enhancementNames) {
		return enhancementNames[e]
	}
	return "?"
}

// Seal is the optional seal slot of a card. Seals have no scoring effect yet.
type Seal uint8

const (
	NoSeal Seal = iota
	RedSeal
	GoldSeal
	BlueSeal
	PurpleSeal
)

var sealNames = [...]string{"", "Red", "Gold", "Blue", "Purple"}

func (s Seal) String() string {
	if int(s) < len(sealNames) {
		return sealNames[s]
	}
	return "?"
}

// Edition is the optional edition slot of a card.
type Edition uint8

const (
	NoEdition Edition = iota
	Foil
	Holographic
	Polychrome
)

var editionNames = [...]string{"", "Foil", "Holographic", "Polychrome"}

func (e Edition) String() string {
	if int(e) < len(editionNames) {
		return editionNames[e]
	}
	return "?"
}

// Card is an immutable playing card. Every card constructed through NewCard
// carries its own identity, so two cards with the same rank, suit and
// modifiers are still distinguishable.
type Card struct {
	id          uuid.UUID
	rank        Rank
	suit        Suit
	enhancement Enhancement
	seal        Seal
	edition     Edition
}

// Option sets one of the optional modifier slots of a card.
type Option func(*Card)

// WithEnhancement sets the enhancement of a card.
func WithEnhancement(e Enhancement) Option {
	return func(c *Card) { c.enhancement = e }
}

// WithSeal sets the seal of a card.
func WithSeal(s Seal) Option {
	return func(c *Card) { c.seal = s }
}

// WithEdition sets the edition of a card.
func WithEdition(e Edition) Option {
	return func(c *Card) { c.edition = e }
}

// NewCard creates a card with a fresh identity.
func NewCard(rank Rank, suit Suit, opts ...Option) (Card, error) {
	c := Card{id: uuid.New(), rank: rank, suit: suit}
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.Validate(); err != nil {
		return Card{}, err
	}
	return c, nil
}

// MustCard creates a card and panics on error (for tests and fixed tables)
func MustCard(rank Rank, suit Suit, opts ...Option) Card {
	c, err := NewCard(rank, suit, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks every field against its enumeration. The zero Card is invalid.
func (c Card) Validate() error {
	switch {
	case !c.rank.Valid():
		return fmt.Errorf("%w: rank %d", ErrInvalidCard, c.rank)
	case !c.suit.Valid():
		return fmt.Errorf("%w: suit %d", ErrInvalidCard, c.suit)
	case int(c.enhancement) >= len(enhancementNames):
		return fmt.Errorf("%w: enhancement %d", ErrInvalidCard, c.enhancement)
	case int(c.seal) >= len(sealNames):
		return fmt.Errorf("%w: seal %d", ErrInvalidCard, c.seal)
	case int(c.edition) >= len(editionNames):
		return fmt.Errorf("%w: edition %d", ErrInvalidCard, c.edition)
	}
	return nil
}

func (c Card) ID() uuid.UUID            { return c.id }
func (c Card) Rank() Rank               { return c.rank }
func (c Card) Suit() Suit               { return c.suit }
func (c Card) Enhancement() Enhancement { return c.enhancement }
func (c Card) Seal() Seal               { return c.seal }
func (c Card) Edition() Edition         { return c.edition }

// Same reports whether c and other are the same card instance.
func (c Card) Same(other Card) bool {
	return c.id == other.id
}

// Chips returns the additive chips this card contributes when scored.
func (c Card) Chips() int {
	chips := c.rank.Chips()
	switch c.enhancement {
	case Bonus:
		chips += 30
	case Stone:
		chips += 50
	}
	if c.edition == Foil {
		chips += 50
	}
	return chips
}

// Mult returns the additive mult this card contributes when scored.
func (c Card) Mult() int {
	mult := 0
	if c.enhancement == MultCard {
		mult += 4
	}
	if c.edition == Holographic {
		mult += 10
	}
	return mult
}

// XMult returns the multiplicative factor this card contributes (1.0 when unmodified).
func (c Card) XMult() float64 {
	x := 1.0
	switch c.enhancement {
	case Glass:
		x *= 2.0
	case Steel:
		x *= 1.5
	}
	if c.edition == Polychrome {
		x *= 1.5
	}
	return x
}

// String renders the card for display, e.g. "A♠ [Glass] <Foil>".
func (c Card) String() string {
	var b strings.Builder
	b.WriteString(c.rank.String())
	b.WriteString(c.suit.Symbol())
	if c.enhancement != NoEnhancement {
		fmt.Fprintf(&b, " [%s]", c.enhancement)
	}
	if c.edition != NoEdition {
		fmt.Fprintf(&b, " <%s>", c.edition)
	}
	if c.seal != NoSeal {
		fmt.Fprintf(&b, " {%s}", c.seal)
	}
	return b.String()
}

// Notation renders the card in the form accepted by ParseCard, e.g. "As:glass,foil".
func (c Card) Notation() string {
	rank := c.rank.String()
	if c.rank == Ten {
		rank = "T"
	}
	var mods []string
	if c.enhancement != NoEnhancement {
		mods = append(mods, strings.ToLower(c.enhancement.String()))
	}
	if c.edition != NoEdition {
		mods = append(mods, strings.ToLower(c.edition.String()))
	}
	if c.seal != NoSeal {
		mods = append(mods, strings.ToLower(c.seal.String())+"-seal")
	}
	s := rank + c.suit.Letter()
	if len(mods) > 0 {
		s += ":" + strings.Join(mods, ",")
	}
	return s
}

// MarshalText encodes the card using its notation.
func (c Card) MarshalText() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return []byte(c.Notation()), nil
}

// UnmarshalText decodes a card notation, assigning a fresh identity.
func (c *Card) UnmarshalText(text []byte) error {
	parsed, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// FormatCards joins the display form of cards with ", ".
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}
