package poker

import (
	"fmt"
	"strings"
	"unicode"
)

// ParseCard parses a single card in notation form: rank, suit and an optional
// colon-separated list of modifiers.
//
//	As          ace of spades
//	10h, Th     ten of hearts
//	K♦:poly     king of diamonds, polychrome
//	Qc:bonus,foil,red
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	body, mods, _ := strings.Cut(s, ":")

	runes := []rune(body)
	rank, n, err := parseRank(runes)
	if err != nil {
		return Card{}, err
	}
	if len(runes) != n+1 {
		return Card{}, fmt.Errorf("%w: %q is not <rank><suit>", ErrInvalidCard, body)
	}
	suit, err := parseSuit(runes[n])
	if err != nil {
		return Card{}, err
	}

	opts, err := parseModifiers(mods)
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", s, err)
	}
	return NewCard(rank, suit, opts...)
}

// ParseCards parses a whitespace or comma separated list of cards. Cards
// without modifiers may also be written back to back ("AsKsQs").
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})

	cards := []Card{}
	for i := 0; i < len(fields); i++ {
		field := fields[i]
		if strings.HasSuffix(field, ":") {
			return nil, fmt.Errorf("%w: %q has an empty modifier list", ErrInvalidCard, field)
		}
		if strings.Contains(field, ":") {
			// Modifier lists are comma separated, so stitch the pieces back together.
			for i+1 < len(fields) && isModifierName(fields[i+1]) {
				field += "," + fields[i+1]
				i++
			}
			c, err := ParseCard(field)
			if err != nil {
				return nil, err
			}
			cards = append(cards, c)
			continue
		}

		run, err := parseRun(field)
		if err != nil {
			return nil, err
		}
		cards = append(cards, run...)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

// parseRun parses back-to-back unmodified cards such as "AsKs10h".
func parseRun(s string) ([]Card, error) {
	runes := []rune(s)
	var cards []Card
	for i := 0; i < len(runes); {
		rank, n, err := parseRank(runes[i:])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		if i+n >= len(runes) {
			return nil, fmt.Errorf("%w: incomplete card at position %d in %q", ErrInvalidCard, i, s)
		}
		suit, err := parseSuit(runes[i+n])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i+n, err)
		}
		c, err := NewCard(rank, suit)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
		i += n + 1
	}
	return cards, nil
}

// parseRank reads a rank from the front of runes and reports how many runes it used.
func parseRank(runes []rune) (Rank, int, error) {
	if len(runes) == 0 {
		return 0, 0, fmt.Errorf("%w: missing rank", ErrInvalidCard)
	}
	if len(runes) >= 2 && runes[0] == '1' && runes[1] == '0' {
		return Ten, 2, nil
	}
	switch unicode.ToUpper(runes[0]) {
	case 'A':
		return Ace, 1, nil
	case 'K':
		return King, 1, nil
	case 'Q':
		return Queen, 1, nil
	case 'J':
		return Jack, 1, nil
	case 'T':
		return Ten, 1, nil
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Rank(runes[0] - '0'), 1, nil
	default:
		return 0, 0, fmt.Errorf("%w: unknown rank '%c'", ErrInvalidCard, runes[0])
	}
}

func parseSuit(r rune) (Suit, error) {
	switch unicode.ToLower(r) {
	case 's', '♠':
		return Spades, nil
	case 'h', '♥':
		return Hearts, nil
	case 'd', '♦':
		return Diamonds, nil
	case 'c', '♣':
		return Clubs, nil
	default:
		return 0, fmt.Errorf("%w: unknown suit '%c'", ErrInvalidCard, r)
	}
}

var (
	enhancementsByName = map[string]Enhancement{
		"bonus": Bonus,
		"mult":  MultCard,
		"wild":  Wild,
		"glass": Glass,
		"steel": Steel,
		"stone": Stone,
		"gold":  GoldCard,
		"lucky": Lucky,
	}
	editionsByName = map[string]Edition{
		"foil":        Foil,
		"holo":        Holographic,
		"holographic": Holographic,
		"poly":        Polychrome,
		"polychrome":  Polychrome,
	}
	sealsByName = map[string]Seal{
		"red":         RedSeal,
		"red-seal":    RedSeal,
		"gold-seal":   GoldSeal,
		"blue":        BlueSeal,
		"blue-seal":   BlueSeal,
		"purple":      PurpleSeal,
		"purple-seal": PurpleSeal,
	}
)

func isModifierName(s string) bool {
	s = strings.ToLower(s)
	_, e := enhancementsByName[s]
	_, ed := editionsByName[s]
	_, sl := sealsByName[s]
	return e || ed || sl
}

func parseModifiers(s string) ([]Option, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var opts []Option
	var hasEnhancement, hasEdition, hasSeal bool
	for _, name := range strings.Split(s, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if e, ok := enhancementsByName[name]; ok {
			if hasEnhancement {
				return nil, fmt.Errorf("%w: more than one enhancement", ErrInvalidCard)
			}
			hasEnhancement = true
			opts = append(opts, WithEnhancement(e))
			continue
		}
		if e, ok := editionsByName[name]; ok {
			if hasEdition {
				return nil, fmt.Errorf("%w: more than one edition", ErrInvalidCard)
			}
			hasEdition = true
			opts = append(opts, WithEdition(e))
			continue
		}
		if sl, ok := sealsByName[name]; ok {
			if hasSeal {
				return nil, fmt.Errorf("%w: more than one seal", ErrInvalidCard)
			}
			hasSeal = true
			opts = append(opts, WithSeal(sl))
			continue
		}
		return nil, fmt.Errorf("%w: unknown modifier %q", ErrInvalidCard, name)
	}
	return opts, nil
}
