// Package model contains the UI model implementations.
package model

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nickdiaz444/pickleball-open-play4/internal/rotation"
	"github.com/nickdiaz444/pickleball-open-play4/internal/sound"
	"github.com/nickdiaz444/pickleball-open-play4/internal/ui/common"
)

// SessionModel is the main model for a running open-play session.
type SessionModel struct {
	session *rotation.Session

	// UI state
	tab            Tab
	mode           InputMode
	confirmingWipe bool

	// System notifications
	notifications map[NotificationType]*SystemNotification

	// Audio
	soundManager *sound.SoundManager
	muted        bool

	autoFillInterval time.Duration

	// UI components
	input  *textinput.Model
	width  int
	height int

	// View renderer (injected to break circular import)
	viewRenderer func(Model) string

	// Key handler (injected to break circular import)
	keyHandler func(Model, tea.KeyMsg) (bool, tea.Cmd)
}

// NewSessionModel creates a new SessionModel.
func NewSessionModel(session *rotation.Session, autoFillInterval time.Duration, muted bool) *SessionModel {
	ti := textinput.New()
	ti.CharLimit = 120
	ti.Width = 48

	return &SessionModel{
		session:          session,
		tab:              TabCourts,
		notifications:    make(map[NotificationType]*SystemNotification),
		soundManager:     sound.NewSoundManager(),
		muted:            muted,
		autoFillInterval: autoFillInterval,
		input:            &ti,
	}
}

func (m *SessionModel) Init() tea.Cmd {
	go func() {
		_ = m.soundManager.Init()
		m.soundManager.SetMuted(m.muted)
	}()

	return tea.Batch(
		textinput.Blink,
		m.autoFillTick(),
	)
}

func (m *SessionModel) autoFillTick() tea.Cmd {
	return tea.Tick(m.autoFillInterval, func(time.Time) tea.Msg {
		return AutoFillTickMsg{}
	})
}

// --- Model interface implementation ---

func (m *SessionModel) Session() *rotation.Session { return m.session }
func (m *SessionModel) Tab() Tab                   { return m.tab }
func (m *SessionModel) SetTab(tab Tab)             { m.tab = tab }
func (m *SessionModel) NextTab()                   { m.tab = (m.tab + 1) % tabCount }
func (m *SessionModel) PrevTab()                   { m.tab = (m.tab + tabCount - 1) % tabCount }
func (m *SessionModel) Mode() InputMode            { return m.mode }
func (m *SessionModel) SetMode(mode InputMode)     { m.mode = mode }
func (m *SessionModel) ConfirmingWipe() bool       { return m.confirmingWipe }
func (m *SessionModel) SetConfirmingWipe(c bool)   { m.confirmingWipe = c }
func (m *SessionModel) Input() *textinput.Model    { return m.input }
func (m *SessionModel) PlaySound(name string)      { m.soundManager.Play(name) }
func (m *SessionModel) Width() int                 { return m.width }
func (m *SessionModel) Height() int                { return m.height }

func (m *SessionModel) SetNotification(notifyType NotificationType, message string, temporary bool) {
	m.notifications[notifyType] = &SystemNotification{
		Message:   message,
		Type:      notifyType,
		Temporary: temporary,
	}
}

func (m *SessionModel) ClearNotification(notifyType NotificationType) {
	delete(m.notifications, notifyType)
}

func (m *SessionModel) GetCurrentNotification() *SystemNotification {
	priorityOrder := []NotificationType{
		NotifyError,
		NotifyInfo,
	}

	for _, notifyType := range priorityOrder {
		if notification, exists := m.notifications[notifyType]; exists {
			return notification
		}
	}
	return nil
}

// Update handles tea messages.
func (m *SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case AutoFillTickMsg:
		if m.session.AutoFill() {
			if seated := m.session.FillCourts(); seated > 0 {
				m.PlaySound(sound.CueFill)
			}
		}
		cmds = append(cmds, m.autoFillTick())

	case ClearNotificationMsg:
		// Clear temporary notifications
		m.ClearNotification(NotifyError)
		m.ClearNotification(NotifyInfo)

	case tea.KeyMsg:
		// Handle keyboard input via injected handler
		if m.keyHandler != nil {
			handled, keyCmd := m.keyHandler(m, msg)
			if keyCmd != nil {
				cmds = append(cmds, keyCmd)
			}
			if handled {
				return m, tea.Batch(cmds...)
			}
		}
	}

	newInput, cmd := m.input.Update(msg)
	*m.input = newInput
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the model.
func (m *SessionModel) View() string {
	if m.width == 0 {
		return "加载中..."
	}

	if m.viewRenderer == nil {
		return ""
	}

	return common.DocStyle.Render(m.viewRenderer(m))
}

// SetViewRenderer sets the view rendering function.
func (m *SessionModel) SetViewRenderer(fn func(Model) string) {
	m.viewRenderer = fn
}

// SetKeyHandler sets the keyboard event handler function.
func (m *SessionModel) SetKeyHandler(fn func(Model, tea.KeyMsg) (bool, tea.Cmd)) {
	m.keyHandler = fn
}
