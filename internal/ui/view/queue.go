package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nickdiaz444/pickleball-open-play4/internal/ui/common"
	"github.com/nickdiaz444/pickleball-open-play4/internal/ui/model"
)

// QueueView renders the waiting queue tab.
func QueueView(m model.Model) string {
	snap := m.Session().Snapshot()

	var sb strings.Builder
	title := common.TitleStyle(fmt.Sprintf("%s 候补队列", common.QueueIcon))
	sb.WriteString(lipgloss.PlaceHorizontal(m.Width(), lipgloss.Center, title))
	sb.WriteString("\n\n")

	box := common.BoxStyle.Padding(0, 2).Render(renderQueueList(snap.Queue))
	sb.WriteString(lipgloss.PlaceHorizontal(m.Width(), lipgloss.Center, box))

	return sb.String()
}

// renderQueueList renders the queue front to back.
func renderQueueList(queue []string) string {
	if len(queue) == 0 {
		return "队列为空，按 a 报名玩家"
	}

	var sb strings.Builder
	for i, name := range queue {
		fmt.Fprintf(&sb, "%2d. %s\n", i+1, common.TruncateName(name, 16))
	}
	fmt.Fprintf(&sb, "\n共 %d 人等待", len(queue))

	return sb.String()
}
