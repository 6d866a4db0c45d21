// Package view provides UI rendering functions.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nickdiaz444/pickleball-open-play4/internal/ui/common"
	"github.com/nickdiaz444/pickleball-open-play4/internal/ui/model"
)

// CreateViewRenderer creates a view renderer function that can be injected into SessionModel.
func CreateViewRenderer() func(model.Model) string {
	return func(m model.Model) string {
		var sb strings.Builder

		sb.WriteString(lipgloss.PlaceHorizontal(m.Width(), lipgloss.Center, renderTabBar(m.Tab())))
		sb.WriteString("\n\n")

		switch m.Tab() {
		case model.TabCourts:
			sb.WriteString(CourtsView(m))
		case model.TabQueue:
			sb.WriteString(QueueView(m))
		case model.TabHistory:
			sb.WriteString(HistoryView(m))
		case model.TabHelp:
			sb.WriteString(HelpView(m))
		}
		sb.WriteString("\n\n")

		sb.WriteString(statusSection(m))

		return sb.String()
	}
}

// renderTabBar renders the tab titles with the active one highlighted.
func renderTabBar(active model.Tab) string {
	titles := []struct {
		tab   model.Tab
		title string
	}{
		{model.TabCourts, "🏓 场地"},
		{model.TabQueue, "📋 队列"},
		{model.TabHistory, "📜 战绩"},
		{model.TabHelp, "❓ 帮助"},
	}

	parts := make([]string, len(titles))
	for i, t := range titles {
		if t.tab == active {
			parts[i] = common.ActiveTab.Render(t.title)
		} else {
			parts[i] = common.InactiveTab.Render(t.title)
		}
	}

	return strings.Join(parts, "  │  ")
}

// statusSection renders the interaction line plus the session status line.
func statusSection(m model.Model) string {
	snap := m.Session().Snapshot()

	var primary string
	switch {
	case m.ConfirmingWipe():
		primary = common.WarnStyle.Render("⚠️ 确认重置整场？名单与记录将全部清空 (y 确认 / Esc 取消)")
	case m.Mode() != model.ModeNone:
		primary = fmt.Sprintf("%s %s", modePrompt(m.Mode()), m.Input().View())
	default:
		if n := m.GetCurrentNotification(); n != nil {
			style := common.InfoStyle
			if n.Type == model.NotifyError {
				style = common.WarnStyle
			}
			primary = style.Render(n.Message)
		} else {
			primary = common.HintStyle.Render("a 报名 · r 记录 · f 补位 · x 移除 · c 清空场地 · ? 帮助 · q 退出")
		}
	}

	autoFill := "关"
	if snap.AutoFill {
		autoFill = "开"
	}
	status := common.HintStyle.Render(fmt.Sprintf("人数 %d/%d　候补 %d　自动补位 %s",
		snap.PlayerCount(), snap.MaxPlayers, len(snap.Queue), autoFill))

	return lipgloss.PlaceHorizontal(m.Width(), lipgloss.Center, primary) + "\n" +
		lipgloss.PlaceHorizontal(m.Width(), lipgloss.Center, status)
}

func modePrompt(mode model.InputMode) string {
	switch mode {
	case model.ModeAddPlayers:
		return "报名玩家:"
	case model.ModeRecordResult:
		return "记录胜负:"
	case model.ModeRemovePlayer:
		return "移除玩家:"
	case model.ModeResetCourt:
		return "清空场地:"
	default:
		return ""
	}
}
