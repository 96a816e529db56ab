package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/balatro-advisor/internal/advisor"
	"github.com/lox/balatro-advisor/internal/randutil"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	m.Run()
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	return NewModel(advisor.New(logger), randutil.New(42), logger)
}

// enter types line into the focused input and submits it
func enter(m *Model, line string) tea.Cmd {
	if line != "" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func TestMenuScenarios(t *testing.T) {
	tests := []struct {
		option   string
		contains []string
	}{
		{"2", []string{"easy-win", "Straight Flush", "PLAY"}},
		{"3", []string{"tough-decision", "Flush", "DISCARD"}},
		{"4", []string{"critical", "Full House"}},
		{"5", []string{"enhanced", "Pair"}},
	}

	for _, tt := range tests {
		t.Run(tt.option, func(t *testing.T) {
			m := newTestModel(t)
			enter(m, tt.option)

			require.Equal(t, ModeResult, m.Mode())
			for _, s := range tt.contains {
				assert.Contains(t, m.Content(), s)
			}
			assert.Contains(t, m.Content(), "TOP 5 ALTERNATIVE PLAYS")

			enter(m, "")
			assert.Equal(t, ModeMenu, m.Mode())
		})
	}
}

func TestMenuRandomHand(t *testing.T) {
	m := newTestModel(t)
	enter(m, "1")

	require.Equal(t, ModeResult, m.Mode())
	assert.Contains(t, m.Content(), "Random hand")
	assert.Contains(t, m.Content(), "RECOMMENDATION")
}

func TestMenuCustomHand(t *testing.T) {
	m := newTestModel(t)
	enter(m, "6")
	require.Equal(t, ModeCustomHand, m.Mode())

	enter(m, "Zz Kh")
	assert.Equal(t, ModeCustomHand, m.Mode())
	assert.Contains(t, m.Status(), "invalid card")

	enter(m, "Ks Kh 7d 3c 2s")
	require.Equal(t, ModeResult, m.Mode())
	assert.Contains(t, m.Content(), "Pair")
}

func TestMenuScoringReference(t *testing.T) {
	m := newTestModel(t)
	enter(m, "7")

	require.Equal(t, ModeResult, m.Mode())
	assert.Contains(t, m.Content(), "Flush Five")
	assert.Contains(t, m.Content(), "Glass")
}

func TestMenuInvalidOption(t *testing.T) {
	m := newTestModel(t)
	enter(m, "9")

	assert.Equal(t, ModeMenu, m.Mode())
	assert.Contains(t, m.Status(), "Invalid option")
	assert.Contains(t, m.View(), "MAIN MENU")
}

func TestQuit(t *testing.T) {
	t.Run("exit option", func(t *testing.T) {
		m := newTestModel(t)
		cmd := enter(m, "8")
		require.NotNil(t, cmd)
		assert.True(t, m.Quitting())
		assert.Contains(t, m.View(), "Thanks")
	})

	t.Run("escape returns to menu before quitting", func(t *testing.T) {
		m := newTestModel(t)
		enter(m, "7")
		m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		assert.Equal(t, ModeMenu, m.Mode())
		assert.False(t, m.Quitting())

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		assert.NotNil(t, cmd)
		assert.True(t, m.Quitting())
	})
}

func TestWindowResize(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 98, m.viewport.Width)
	assert.Equal(t, 34, m.viewport.Height)
}
