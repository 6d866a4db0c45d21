package view

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/lipgloss"

	"github.com/nickdiaz444/pickleball-open-play4/internal/ui/common"
	"github.com/nickdiaz444/pickleball-open-play4/internal/ui/model"
)

// rulesText is the rotation walkthrough and key map shown on the help tab.
var rulesText = heredoc.Doc(`
	轮转规则
	────────────────────────────
	· 每局四人上场，A/B 两队各两人
	· 败方两人立刻下场，排到队尾
	· 胜方留场拆队，各带一名队首新搭档
	· 连打满上限局数后，胜方同样下场轮换
	· 清空场地时，场上玩家回到队首优先上场

	按键
	────────────────────────────
	a       报名玩家（逗号或空格分隔）
	r       记录胜负（场地号 胜方，如 1 A）
	f       立即补位
	t       自动补位开关
	x       移除玩家
	c       清空单块场地
	R       清空全部场地
	D       重置整场（需确认）
	Tab/←→  切换标签页
	q       退出
`)

// HelpView renders the help tab.
func HelpView(m model.Model) string {
	box := common.BoxStyle.Padding(0, 2).Render(rulesText)
	return lipgloss.PlaceHorizontal(m.Width(), lipgloss.Center, box)
}
