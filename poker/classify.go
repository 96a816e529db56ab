package poker

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownHandType is returned when a hand type name or value is not recognised.
var ErrUnknownHandType = errors.New("unknown hand type")

// HandType enumerates the scoring hand categories ordered from weakest to strongest.
type HandType uint8

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	FiveOfAKind
	FlushHouse
	FlushFive
)

// NumHandTypes is the number of hand categories.
const NumHandTypes = int(FlushFive) + 1

var handTypeNames = [NumHandTypes]string{
	"High Card",
	"Pair",
	"Two Pair",
	"Three of a Kind",
	"Straight",
	"Flush",
	"Full House",
	"Four of a Kind",
	"Straight Flush",
	"Five of a Kind",
	"Flush House",
	"Flush Five",
}

// String returns the readable name of the hand type
func (h HandType) String() string {
	if h.Valid() {
		return handTypeNames[h]
	}
	return "Unknown"
}

// Valid reports whether h is one of the twelve hand types.
func (h HandType) Valid() bool {
	return int(h) < NumHandTypes
}

// MarshalText encodes the hand type by name.
func (h HandType) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText decodes a hand type name as accepted by ParseHandType.
func (h *HandType) UnmarshalText(text []byte) error {
	ht, ok := ParseHandType(string(text))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownHandType, text)
	}
	*h = ht
	return nil
}

// AllHandTypes returns every hand type from weakest to strongest.
func AllHandTypes() []HandType {
	types := make([]HandType, NumHandTypes)
	for i := range types {
		types[i] = HandType(i)
	}
	return types
}

// ParseHandType resolves a hand type name. Case, spaces, dashes and
// underscores are ignored, so "Two Pair", "two-pair" and "TWO_PAIR" all match.
func ParseHandType(name string) (HandType, bool) {
	key := normalizeHandTypeName(name)
	for i, n := range handTypeNames {
		if normalizeHandTypeName(n) == key {
			return HandType(i), true
		}
	}
	return 0, false
}

func normalizeHandTypeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}

// MaxHandSize is the number of cards a played hand may contain.
const MaxHandSize = 5

// Classify returns the hand type of a played hand. Only the first five cards
// are considered; pick the best five with a search first when holding more.
// An empty hand is High Card.
func Classify(cards []Card) HandType {
	if len(cards) == 0 {
		return HighCard
	}
	if len(cards) > MaxHandSize {
		cards = cards[:MaxHandSize]
	}

	rankCounts := make(map[Rank]int, len(cards))
	suitCounts := make(map[Suit]int, len(Suits))
	ranks := make([]Rank, 0, len(cards))
	for _, c := range cards {
		if rankCounts[c.rank] == 0 {
			ranks = append(ranks, c.rank)
		}
		rankCounts[c.rank]++
		suitCounts[c.suit]++
	}

	counts := make([]int, 0, len(rankCounts))
	for _, n := range rankCounts {
		counts = append(counts, n)
	}
	slices.SortFunc(counts, func(a, b int) int { return b - a })
	counts = append(counts, 0) // counts[1] is always addressable

	flush := false
	for _, n := range suitCounts {
		if n >= MaxHandSize {
			flush = true
		}
	}
	straight := isStraight(ranks)
	fullHouse := counts[0] == 3 && counts[1] == 2

	switch {
	case counts[0] == 5 && flush:
		return FlushFive
	case counts[0] == 5:
		return FiveOfAKind
	case fullHouse && flush:
		return FlushHouse
	case straight && flush:
		return StraightFlush
	case counts[0] == 4:
		return FourOfAKind
	case fullHouse:
		return FullHouse
	case flush:
		return Flush
	case straight:
		return Straight
	case counts[0] == 3:
		return ThreeOfAKind
	case counts[0] == 2 && counts[1] == 2:
		return TwoPair
	case counts[0] == 2:
		return Pair
	default:
		return HighCard
	}
}

// straightPosition places ranks in the order A,2,3,...,K. The ace only
// occupies the lowest slot, so A-2-3-4-5 is a straight and 10-J-Q-K-A is not.
func straightPosition(r Rank) int {
	if r == Ace {
		return 0
	}
	return int(r) - 1
}

// isStraight reports whether the distinct ranks form five consecutive positions.
func isStraight(distinct []Rank) bool {
	if len(distinct) < MaxHandSize {
		return false
	}
	positions := make([]int, len(distinct))
	for i, r := range distinct {
		positions[i] = straightPosition(r)
	}
	slices.Sort(positions)

	for start := 0; start+MaxHandSize <= len(positions); start++ {
		run := true
		for j := start; j < start+MaxHandSize-1; j++ {
			if positions[j+1]-positions[j] != 1 {
				run = false
				break
			}
		}
		if run {
			return true
		}
	}
	return false
}
