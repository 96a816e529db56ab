package scoring

import "github.com/lox/balatro-advisor/poker"

// HandValues holds the base chips and mult of a hand type at level 1 and
// how much each extra level adds.
type HandValues struct {
	Chips         int
	Mult          int
	ChipsPerLevel int
	MultPerLevel  int
}

// AtLevel returns the base chips and mult for the given level.
func (v HandValues) AtLevel(level int) (chips, mult int) {
	if level < 1 {
		level = 1
	}
	return v.Chips + v.ChipsPerLevel*(level-1), v.Mult + v.MultPerLevel*(level-1)
}

var baseHands = [poker.NumHandTypes]HandValues{
	poker.HighCard:      {Chips: 5, Mult: 1, ChipsPerLevel: 10, MultPerLevel: 1},
	poker.Pair:          {Chips: 10, Mult: 2, ChipsPerLevel: 15, MultPerLevel: 1},
	poker.TwoPair:       {Chips: 20, Mult: 2, ChipsPerLevel: 20, MultPerLevel: 1},
	poker.ThreeOfAKind:  {Chips: 30, Mult: 3, ChipsPerLevel: 20, MultPerLevel: 2},
	poker.Straight:      {Chips: 30, Mult: 4, ChipsPerLevel: 30, MultPerLevel: 3},
	poker.Flush:         {Chips: 35, Mult: 4, ChipsPerLevel: 15, MultPerLevel: 2},
	poker.FullHouse:     {Chips: 40, Mult: 4, ChipsPerLevel: 25, MultPerLevel: 2},
	poker.FourOfAKind:   {Chips: 60, Mult: 7, ChipsPerLevel: 30, MultPerLevel: 3},
	poker.StraightFlush: {Chips: 100, Mult: 8, ChipsPerLevel: 40, MultPerLevel: 3},
	poker.FiveOfAKind:   {Chips: 120, Mult: 12, ChipsPerLevel: 35, MultPerLevel: 3},
	poker.FlushHouse:    {Chips: 140, Mult: 14, ChipsPerLevel: 40, MultPerLevel: 3},
	poker.FlushFive:     {Chips: 160, Mult: 16, ChipsPerLevel: 40, MultPerLevel: 3},
}

// BaseValues returns the base table entry for a hand type.
func BaseValues(ht poker.HandType) HandValues {
	if !ht.Valid() {
		return HandValues{}
	}
	return baseHands[ht]
}
