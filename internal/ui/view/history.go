package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nickdiaz444/pickleball-open-play4/internal/rotation"
	"github.com/nickdiaz444/pickleball-open-play4/internal/ui/common"
	"github.com/nickdiaz444/pickleball-open-play4/internal/ui/model"
)

// historyLimit caps how many recent games the tab shows.
const historyLimit = 10

// HistoryView renders the recent games tab.
func HistoryView(m model.Model) string {
	snap := m.Session().Snapshot()

	var sb strings.Builder
	title := common.TitleStyle("📜 对局记录")
	sb.WriteString(lipgloss.PlaceHorizontal(m.Width(), lipgloss.Center, title))
	sb.WriteString("\n\n")

	box := common.BoxStyle.Padding(0, 2).Render(renderHistoryList(snap.Records))
	sb.WriteString(lipgloss.PlaceHorizontal(m.Width(), lipgloss.Center, box))

	return sb.String()
}

// renderHistoryList renders the most recent games, latest first.
func renderHistoryList(records []rotation.GameRecord) string {
	if len(records) == 0 {
		return "暂无对局，按 r 记录胜负"
	}

	var sb strings.Builder
	shown := 0
	for i := len(records) - 1; i >= 0 && shown < historyLimit; i-- {
		r := records[i]
		fmt.Fprintf(&sb, "%s  场地%d  %s队胜  %s 对 %s\n",
			r.PlayedAt.Format("15:04"), r.Court, r.Winner,
			common.JoinNames(r.WinnerNames(), 8),
			common.JoinNames(r.LoserNames(), 8))
		shown++
	}
	fmt.Fprintf(&sb, "\n共 %d 局", len(records))

	return sb.String()
}
