// Package input handles keyboard input processing.
package input

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nickdiaz444/pickleball-open-play4/internal/apperrors"
	"github.com/nickdiaz444/pickleball-open-play4/internal/rotation"
	"github.com/nickdiaz444/pickleball-open-play4/internal/sound"
	"github.com/nickdiaz444/pickleball-open-play4/internal/ui/model"
)

// notifyError shows a temporary error and schedules its removal.
func notifyError(m model.Model, err error) tea.Cmd {
	m.SetNotification(model.NotifyError, "⚠️ "+err.Error(), true)
	return clearAfter()
}

// notifyInfo shows temporary operation feedback.
func notifyInfo(m model.Model, message string) tea.Cmd {
	m.SetNotification(model.NotifyInfo, message, true)
	return clearAfter()
}

func clearAfter() tea.Cmd {
	return tea.Tick(3*time.Second, func(t time.Time) tea.Msg {
		return model.ClearNotificationMsg{}
	})
}

// HandleKeyPress handles keyboard input and returns whether it was handled.
func HandleKeyPress(m model.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	if m.ConfirmingWipe() {
		return handleWipeConfirm(m, msg)
	}

	if m.Mode() != model.ModeNone {
		return handleModeInput(m, msg)
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		return true, tea.Quit
	case tea.KeyEsc:
		m.SetTab(model.TabCourts)
		return true, nil
	case tea.KeyTab, tea.KeyRight:
		m.NextTab()
		return true, nil
	case tea.KeyShiftTab, tea.KeyLeft:
		m.PrevTab()
		return true, nil
	case tea.KeyRunes:
		return handleRuneKey(m, msg)
	}

	return true, nil
}

func handleRuneKey(m model.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "q":
		return true, tea.Quit

	case "a":
		enterMode(m, model.ModeAddPlayers, "玩家名，逗号或空格分隔")
		return true, nil

	case "r":
		enterMode(m, model.ModeRecordResult, "场地号 胜方，如：1 A")
		return true, nil

	case "x":
		enterMode(m, model.ModeRemovePlayer, "要移除的玩家名")
		return true, nil

	case "c":
		enterMode(m, model.ModeResetCourt, "要清空的场地号")
		return true, nil

	case "f":
		seated := m.Session().FillCourts()
		if seated == 0 {
			return true, notifyInfo(m, "没有可补位的玩家")
		}
		m.PlaySound(sound.CueFill)
		return true, notifyInfo(m, fmt.Sprintf("📥 %d 名玩家上场", seated))

	case "R":
		m.Session().ResetAll()
		m.PlaySound(sound.CueRotate)
		return true, notifyInfo(m, "🧽 所有场地已清空，玩家回到队首")

	case "D":
		m.SetConfirmingWipe(true)
		return true, nil

	case "t":
		enabled := !m.Session().AutoFill()
		m.Session().SetAutoFill(enabled)
		if enabled {
			return true, notifyInfo(m, "🔄 自动补位已开启")
		}
		return true, notifyInfo(m, "⏸️ 自动补位已关闭")

	case "?":
		m.SetTab(model.TabHelp)
		return true, nil
	}

	return true, nil
}

func handleWipeConfirm(m model.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.Session().ResetSession()
		m.SetConfirmingWipe(false)
		return true, notifyInfo(m, "🗑️ 场次已重置，名单与记录已清空")
	case "ctrl+c":
		return true, tea.Quit
	case "esc", "n", "N":
		m.SetConfirmingWipe(false)
		return true, nil
	}

	return true, nil
}

func handleModeInput(m model.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return true, tea.Quit
	case tea.KeyEsc:
		exitMode(m)
		return true, nil
	case tea.KeyEnter:
		return true, submitMode(m)
	default:
		input := m.Input()
		var cmd tea.Cmd
		*input, cmd = input.Update(msg)
		return true, cmd
	}
}

func enterMode(m model.Model, mode model.InputMode, placeholder string) {
	m.SetMode(mode)
	input := m.Input()
	input.Reset()
	input.Placeholder = placeholder
	input.Focus()
}

func exitMode(m model.Model) {
	m.SetMode(model.ModeNone)
	input := m.Input()
	input.Reset()
	input.Blur()
}

// submitMode parses the pending input and applies the operation. The
// mode stays active on errors so the input can be corrected in place.
func submitMode(m model.Model) tea.Cmd {
	value := strings.TrimSpace(m.Input().Value())
	if value == "" {
		exitMode(m)
		return nil
	}

	switch m.Mode() {
	case model.ModeAddPlayers:
		return submitAddPlayers(m, value)
	case model.ModeRecordResult:
		return submitRecordResult(m, value)
	case model.ModeRemovePlayer:
		return submitRemovePlayer(m, value)
	case model.ModeResetCourt:
		return submitResetCourt(m, value)
	}

	exitMode(m)
	return nil
}

func submitAddPlayers(m model.Model, value string) tea.Cmd {
	names := splitNames(value)
	if err := m.Session().AddPlayers(names); err != nil {
		return notifyError(m, err)
	}

	exitMode(m)
	autoFillAfterMutation(m)
	return notifyInfo(m, fmt.Sprintf("👤 已报名 %d 人", len(names)))
}

func submitRecordResult(m model.Model, value string) tea.Cmd {
	fields := strings.Fields(value)
	if len(fields) != 2 {
		return notifyError(m, apperrors.ErrInvalidTeam)
	}

	court, err := strconv.Atoi(fields[0])
	if err != nil {
		return notifyError(m, apperrors.ErrInvalidCourt)
	}

	winner, err := rotation.ParseTeam(fields[1])
	if err != nil {
		return notifyError(m, err)
	}

	if err := m.Session().RecordResult(court, winner); err != nil {
		return notifyError(m, err)
	}

	exitMode(m)

	rotated := m.Session().Snapshot().Courts[court-1].Count() == 0
	if rotated {
		m.PlaySound(sound.CueRotate)
	} else {
		m.PlaySound(sound.CueRecord)
	}
	autoFillAfterMutation(m)

	if rotated {
		return notifyInfo(m, fmt.Sprintf("🔁 已记录，场地 %d 全员下场轮换", court))
	}
	return notifyInfo(m, fmt.Sprintf("🏆 已记录，场地 %d 胜方 %s队", court, winner))
}

func submitRemovePlayer(m model.Model, value string) tea.Cmd {
	if err := m.Session().RemovePlayer(value); err != nil {
		return notifyError(m, err)
	}

	exitMode(m)
	autoFillAfterMutation(m)
	return notifyInfo(m, fmt.Sprintf("👋 已移除 %s", value))
}

func submitResetCourt(m model.Model, value string) tea.Cmd {
	court, err := strconv.Atoi(value)
	if err != nil {
		return notifyError(m, apperrors.ErrInvalidCourt)
	}

	if err := m.Session().ResetCourt(court); err != nil {
		return notifyError(m, err)
	}

	exitMode(m)
	m.PlaySound(sound.CueRotate)
	autoFillAfterMutation(m)
	return notifyInfo(m, fmt.Sprintf("🧽 场地 %d 已清空，玩家回到队首", court))
}

// autoFillAfterMutation refills immediately after a roster change, so
// auto-fill mode never waits for the next tick.
func autoFillAfterMutation(m model.Model) {
	if !m.Session().AutoFill() {
		return
	}
	if seated := m.Session().FillCourts(); seated > 0 {
		m.PlaySound(sound.CueFill)
	}
}

// splitNames splits a name batch on commas and whitespace, tolerating
// the Chinese comma variants.
func splitNames(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == '，' || r == '、' || unicode.IsSpace(r)
	})
}
