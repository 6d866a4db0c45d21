package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nickdiaz444/pickleball-open-play4/internal/rotation"
	"github.com/nickdiaz444/pickleball-open-play4/internal/ui/common"
	"github.com/nickdiaz444/pickleball-open-play4/internal/ui/model"
)

// CourtsView renders the courts tab.
func CourtsView(m model.Model) string {
	snap := m.Session().Snapshot()

	parts := make([]string, 0, len(snap.Courts)*2)
	for i, c := range snap.Courts {
		if i > 0 {
			parts = append(parts, "  ")
		}
		parts = append(parts, renderCourtBox(c, snap.GamesPerRotation))
	}
	courts := lipgloss.JoinHorizontal(lipgloss.Top, parts...)

	var sb strings.Builder
	sb.WriteString(lipgloss.PlaceHorizontal(m.Width(), lipgloss.Center, courts))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.PlaceHorizontal(m.Width(), lipgloss.Center, renderNextUp(snap.Queue)))

	return sb.String()
}

// renderCourtBox renders one court with its games counter and both teams.
func renderCourtBox(c rotation.CourtView, gamesCap int) string {
	var sb strings.Builder

	if c.Count() == 0 {
		fmt.Fprintf(&sb, "%s 场地 %d\n", common.CourtIcon, c.Index)
		sb.WriteString(common.HintStyle.Render("等待补位..."))
	} else {
		fmt.Fprintf(&sb, "%s 场地 %d　局数 %d/%d\n", common.CourtIcon, c.Index, c.GamesPlayed, gamesCap)
		sb.WriteString(renderTeamLine("A队", c.TeamA))
		sb.WriteString("\n")
		sb.WriteString(renderTeamLine("B队", c.TeamB))
	}

	return common.BoxStyle.Padding(0, 1).Render(sb.String())
}

// renderTeamLine renders one team row, padding open slots with a placeholder.
func renderTeamLine(label string, names []string) string {
	slots := make([]string, rotation.TeamSize)
	for i := range slots {
		if i < len(names) {
			slots[i] = common.TruncateName(names[i], 10)
		} else {
			slots[i] = common.HintStyle.Render("（空位）")
		}
	}
	return fmt.Sprintf("%s  %s", label, strings.Join(slots, "  "))
}

// renderNextUp shows the front of the queue, the players a fill seats first.
func renderNextUp(queue []string) string {
	if len(queue) == 0 {
		return common.HintStyle.Render("候补队列为空")
	}

	n := min(len(queue), rotation.CourtSize)
	return common.HintStyle.Render(fmt.Sprintf("下一批上场：%s　（候补 %d 人）",
		common.JoinNames(queue[:n], 10), len(queue)))
}
