package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		rank        Rank
		suit        Suit
		enhancement Enhancement
		edition     Edition
		seal        Seal
		wantErr     bool
	}{
		{name: "ace of spades", input: "As", rank: Ace, suit: Spades},
		{name: "ten as digits", input: "10h", rank: Ten, suit: Hearts},
		{name: "ten as letter", input: "Th", rank: Ten, suit: Hearts},
		{name: "lower case", input: "kd", rank: King, suit: Diamonds},
		{name: "suit symbol", input: "Q♣", rank: Queen, suit: Clubs},
		{name: "surrounding space", input: "  2c ", rank: Two, suit: Clubs},
		{name: "enhancement", input: "Jd:glass", rank: Jack, suit: Diamonds, enhancement: Glass},
		{name: "all slots", input: "Qc:bonus,foil,red", rank: Queen, suit: Clubs, enhancement: Bonus, edition: Foil, seal: RedSeal},
		{name: "modifier case", input: "9s:STEEL,Poly", rank: Nine, suit: Spades, enhancement: Steel, edition: Polychrome},
		{name: "gold enhancement vs seal", input: "3h:gold,gold-seal", rank: Three, suit: Hearts, enhancement: GoldCard, seal: GoldSeal},
		{name: "unknown rank", input: "Xs", wantErr: true},
		{name: "unknown suit", input: "Ax", wantErr: true},
		{name: "missing suit", input: "A", wantErr: true},
		{name: "trailing junk", input: "Ass", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "one is not a rank", input: "1s", wantErr: true},
		{name: "unknown modifier", input: "As:sparkly", wantErr: true},
		{name: "two enhancements", input: "As:glass,steel", wantErr: true},
		{name: "two editions", input: "As:foil,poly", wantErr: true},
		{name: "two seals", input: "As:red,blue", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseCard(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCard)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.rank, c.Rank())
			assert.Equal(t, tt.suit, c.Suit())
			assert.Equal(t, tt.enhancement, c.Enhancement())
			assert.Equal(t, tt.edition, c.Edition())
			assert.Equal(t, tt.seal, c.Seal())
		})
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()

	t.Run("mixed separators and runs", func(t *testing.T) {
		cards, err := ParseCards("AsKs 10h, Qc:bonus,foil 2d")
		require.NoError(t, err)
		require.Len(t, cards, 5)
		assert.Equal(t, "A♠, K♠, 10♥, Q♣ [Bonus] <Foil>, 2♦", FormatCards(cards))
	})

	t.Run("modifiers separated by spaces after commas", func(t *testing.T) {
		cards, err := ParseCards("As:glass, poly Kh")
		require.NoError(t, err)
		require.Len(t, cards, 2)
		assert.Equal(t, Glass, cards[0].Enhancement())
		assert.Equal(t, Polychrome, cards[0].Edition())
		assert.Equal(t, King, cards[1].Rank())
	})

	t.Run("empty string", func(t *testing.T) {
		cards, err := ParseCards("")
		require.NoError(t, err)
		assert.Empty(t, cards)
	})

	t.Run("duplicate values stay distinct", func(t *testing.T) {
		cards := MustParseCards("As As")
		require.Len(t, cards, 2)
		assert.False(t, cards[0].Same(cards[1]))
	})

	t.Run("invalid run", func(t *testing.T) {
		_, err := ParseCards("AsK")
		assert.ErrorIs(t, err, ErrInvalidCard)
	})

	t.Run("empty modifier list", func(t *testing.T) {
		_, err := ParseCards("As:")
		assert.ErrorIs(t, err, ErrInvalidCard)
	})
}

func TestMustParseCardsPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { MustParseCards("invalid") })
	assert.NotPanics(t, func() { MustParseCards("AsKs") })
}
