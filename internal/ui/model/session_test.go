package model

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickdiaz444/pickleball-open-play4/internal/rotation"
)

func newTestModel(t *testing.T) *SessionModel {
	t.Helper()

	s, err := rotation.NewSession(rotation.Settings{
		MaxPlayers:       20,
		Courts:           1,
		GamesPerRotation: 2,
	})
	require.NoError(t, err)

	return NewSessionModel(s, 50*time.Millisecond, true)
}

func TestNewSessionModel(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	assert.NotNil(t, m)
	assert.NotNil(t, m.Session())
	assert.Equal(t, TabCourts, m.Tab())
	assert.Equal(t, ModeNone, m.Mode())
	assert.False(t, m.ConfirmingWipe())
	assert.NotNil(t, m.Input())
	assert.False(t, m.Input().Focused())
	assert.Nil(t, m.GetCurrentNotification())
	assert.Equal(t, 0, m.Width())
	assert.Equal(t, 0, m.Height())
}

func TestSessionModel_TabCycling(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		start    Tab
		forward  bool
		expected Tab
	}{
		{"next from courts", TabCourts, true, TabQueue},
		{"next from queue", TabQueue, true, TabHistory},
		{"next from history", TabHistory, true, TabHelp},
		{"next wraps to courts", TabHelp, true, TabCourts},
		{"prev from queue", TabQueue, false, TabCourts},
		{"prev wraps to help", TabCourts, false, TabHelp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := newTestModel(t)
			m.SetTab(tt.start)

			if tt.forward {
				m.NextTab()
			} else {
				m.PrevTab()
			}

			assert.Equal(t, tt.expected, m.Tab())
		})
	}
}

func TestSessionModel_ModeAndWipeFlags(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	m.SetMode(ModeAddPlayers)
	assert.Equal(t, ModeAddPlayers, m.Mode())

	m.SetMode(ModeNone)
	assert.Equal(t, ModeNone, m.Mode())

	m.SetConfirmingWipe(true)
	assert.True(t, m.ConfirmingWipe())

	m.SetConfirmingWipe(false)
	assert.False(t, m.ConfirmingWipe())
}

func TestSessionModel_NotificationPriority(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	m.SetNotification(NotifyInfo, "seated", true)
	m.SetNotification(NotifyError, "boom", true)

	current := m.GetCurrentNotification()
	require.NotNil(t, current)
	assert.Equal(t, NotifyError, current.Type)
	assert.Equal(t, "boom", current.Message)

	m.ClearNotification(NotifyError)
	current = m.GetCurrentNotification()
	require.NotNil(t, current)
	assert.Equal(t, NotifyInfo, current.Type)

	m.ClearNotification(NotifyInfo)
	assert.Nil(t, m.GetCurrentNotification())
}

func TestSessionModel_Update_WindowSize(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 42})

	assert.Equal(t, 120, m.Width())
	assert.Equal(t, 42, m.Height())
}

func TestSessionModel_Update_AutoFillTick(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		autoFill bool
		expected int
	}{
		{"fills when enabled", true, 4},
		{"leaves queue when disabled", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := newTestModel(t)
			require.NoError(t, m.Session().AddPlayers([]string{"Alice", "Bob", "Carol", "Dave"}))
			m.Session().SetAutoFill(tt.autoFill)

			_, cmd := m.Update(AutoFillTickMsg{})

			assert.Equal(t, tt.expected, m.Session().Snapshot().Courts[0].Count())
			// The tick always reschedules itself
			assert.NotNil(t, cmd)
		})
	}
}

func TestSessionModel_Update_ClearNotification(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.SetNotification(NotifyError, "boom", true)
	m.SetNotification(NotifyInfo, "seated", true)

	m.Update(ClearNotificationMsg{})

	assert.Nil(t, m.GetCurrentNotification())
}

func TestSessionModel_Update_RoutesKeysToHandler(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	var got string
	m.SetKeyHandler(func(_ Model, msg tea.KeyMsg) (bool, tea.Cmd) {
		got = msg.String()
		return true, nil
	})

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})

	assert.Equal(t, "a", got)
}

func TestSessionModel_Update_UnhandledKeyReachesInput(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.SetKeyHandler(func(Model, tea.KeyMsg) (bool, tea.Cmd) {
		return false, nil
	})
	m.Input().Focus()

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})

	assert.Equal(t, "x", m.Input().Value())
}

func TestSessionModel_View(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	assert.Equal(t, "加载中...", m.View())

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, "", m.View())

	m.SetViewRenderer(func(Model) string { return "测试内容" })
	assert.Contains(t, m.View(), "测试内容")
}
