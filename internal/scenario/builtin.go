package scenario

import "github.com/lox/balatro-advisor/poker"

// Builtins returns the demo scenarios.
func Builtins() []Scenario {
	return []Scenario{
		{
			Name:              "easy-win",
			Description:       "You have a strong Spade flush available. Play it immediately.",
			Hand:              poker.MustParseCards("Ks Qs Js Ts 9s 7d 3c 2h"),
			TargetScore:       250,
			HandsRemaining:    3,
			DiscardsRemaining: 3,
			Ante:              1,
			Money:             DefaultMoney,
		},
		{
			Name:              "tough-decision",
			Description:       "You have both a Pair of Aces and a potential Flush. Which should you play?",
			Hand:              poker.MustParseCards("As Ah Ks Qs Js Ts 9d 8c"),
			TargetScore:       400,
			HandsRemaining:    2,
			DiscardsRemaining: 2,
			Ante:              2,
			Money:             DefaultMoney,
		},
		{
			Name:              "critical",
			Description:       "Last hand with no discards. You need 500 points but only have weak pairs.",
			Hand:              poker.MustParseCards("Ks Kh 7d 5c 3s 2h 2d 2c"),
			TargetScore:       500,
			HandsRemaining:    1,
			DiscardsRemaining: 0,
			Ante:              3,
			Money:             DefaultMoney,
		},
		{
			Name:              "enhanced",
			Description:       "Your hand has Glass, Mult and Polychrome cards. Watch multiplicative effects stack.",
			Hand:              poker.MustParseCards("As:glass Ah:mult Kd:poly Qc:bonus Js:steel Th 5d 3c"),
			TargetScore:       800,
			HandsRemaining:    2,
			DiscardsRemaining: 3,
			Ante:              4,
			Money:             DefaultMoney,
		},
	}
}

// Builtin returns the demo scenario with the given name.
func Builtin(name string) (Scenario, bool) {
	for _, s := range Builtins() {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}
