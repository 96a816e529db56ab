package scoring

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/lox/balatro-advisor/poker"
)

// ErrInvalidLevel is returned when a hand level below 1 is requested.
var ErrInvalidLevel = errors.New("invalid hand level")

// LevelTable maps every hand type to its current level. The zero value has
// every hand type at level 1. Tables are values: With returns an updated copy.
type LevelTable struct {
	// upgrades stores level-1 so the zero value is the default table.
	upgrades [poker.NumHandTypes]int
}

// DefaultLevels returns a table with every hand type at level 1.
func DefaultLevels() LevelTable {
	return LevelTable{}
}

// Level returns the level of a hand type. Unknown types report level 1.
func (t LevelTable) Level(ht poker.HandType) int {
	if !ht.Valid() {
		return 1
	}
	return t.upgrades[ht] + 1
}

// With returns a copy of the table with ht set to level.
func (t LevelTable) With(ht poker.HandType, level int) (LevelTable, error) {
	if !ht.Valid() {
		return t, fmt.Errorf("%w: %d", poker.ErrUnknownHandType, ht)
	}
	if level < 1 {
		return t, fmt.Errorf("%w: %s level %d (must be at least 1)", ErrInvalidLevel, ht, level)
	}
	t.upgrades[ht] = level - 1
	return t, nil
}

// Map returns the level of every hand type keyed by name.
func (t LevelTable) Map() map[string]int {
	m := make(map[string]int, poker.NumHandTypes)
	for _, ht := range poker.AllHandTypes() {
		m[ht.String()] = t.Level(ht)
	}
	return m
}

// Upgraded returns the hand types above level 1, weakest first.
func (t LevelTable) Upgraded() []poker.HandType {
	var types []poker.HandType
	for _, ht := range poker.AllHandTypes() {
		if t.Level(ht) > 1 {
			types = append(types, ht)
		}
	}
	return types
}

// ParseLevels builds a table from hand type names, as found in config and
// scenario files. Names are matched with poker.ParseHandType.
func ParseLevels(levels map[string]int) (LevelTable, error) {
	names := make([]string, 0, len(levels))
	for name := range levels {
		names = append(names, name)
	}
	sort.Strings(names) // deterministic error reporting

	t := DefaultLevels()
	for _, name := range names {
		ht, ok := poker.ParseHandType(name)
		if !ok {
			return LevelTable{}, fmt.Errorf("%w: %q", poker.ErrUnknownHandType, name)
		}
		var err error
		if t, err = t.With(ht, levels[name]); err != nil {
			return LevelTable{}, err
		}
	}
	return t, nil
}

// MarshalJSON encodes the table as a name to level object.
func (t LevelTable) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Map())
}
