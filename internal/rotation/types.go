package rotation

import (
	"fmt"
	"strings"

	"github.com/thoas/go-funk"

	"github.com/nickdiaz444/pickleball-open-play4/internal/apperrors"
)

const (
	// CourtSize 每块场地满员人数（双打固定两队各两人）
	CourtSize = 4
	// TeamSize 每队人数
	TeamSize = 2
)

// Team 场上的一方
type Team int

const (
	TeamA Team = iota
	TeamB
)

func (t Team) String() string {
	switch t {
	case TeamA:
		return "A"
	case TeamB:
		return "B"
	default:
		return "?"
	}
}

// Valid 判断队伍标识是否合法
func (t Team) Valid() bool {
	return t == TeamA || t == TeamB
}

// ParseTeam 解析用户输入的队伍标识（A/B，兼容 1/2）
func ParseTeam(s string) (Team, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A", "1":
		return TeamA, nil
	case "B", "2":
		return TeamB, nil
	default:
		return TeamA, fmt.Errorf("%q: %w", s, apperrors.ErrInvalidTeam)
	}
}

// Court 一块场地：A/B 两队各至多两人，外加局数计数器。
// 编号从 1 开始；人数只会是 0 或 4，补位过程中短暂出现 1-3 人。
type Court struct {
	Index       int
	TeamA       []string
	TeamB       []string
	GamesPlayed int
}

// Count 当前在场人数
func (c *Court) Count() int {
	return len(c.TeamA) + len(c.TeamB)
}

// IsFull 是否满员
func (c *Court) IsFull() bool {
	return c.Count() == CourtSize
}

// IsEmpty 是否空场
func (c *Court) IsEmpty() bool {
	return c.Count() == 0
}

func (c *Court) has(name string) bool {
	return funk.ContainsString(c.TeamA, name) || funk.ContainsString(c.TeamB, name)
}

// occupants 按 A 队、B 队的上场顺序列出球员
func (c *Court) occupants() []string {
	out := make([]string, 0, c.Count())
	out = append(out, c.TeamA...)
	out = append(out, c.TeamB...)
	return out
}

// fill 从队首依次拉人补位，返回剩余队列和上场人数。
// 补位顺序按补位前的人数决定：人少的一队先补满，人数相同先补 A 队，
// 所以空场会排成「前两人 A 队、后两人 B 队」。
func (c *Court) fill(queue []string) (remaining []string, seated int) {
	first, second := &c.TeamA, &c.TeamB
	if len(c.TeamB) < len(c.TeamA) {
		first, second = &c.TeamB, &c.TeamA
	}
	for _, side := range []*[]string{first, second} {
		for len(*side) < TeamSize && len(queue) > 0 {
			*side = append(*side, queue[0])
			queue = queue[1:]
			seated++
		}
	}
	return queue, seated
}

// remove 把玩家移出场地，空出的位置等待下一次补位
func (c *Court) remove(name string) bool {
	if idx := funk.IndexOfString(c.TeamA, name); idx >= 0 {
		c.TeamA = append(c.TeamA[:idx], c.TeamA[idx+1:]...)
		return true
	}
	if idx := funk.IndexOfString(c.TeamB, name); idx >= 0 {
		c.TeamB = append(c.TeamB[:idx], c.TeamB[idx+1:]...)
		return true
	}
	return false
}

// clear 清空场地并把局数归零
func (c *Court) clear() {
	c.TeamA = nil
	c.TeamB = nil
	c.GamesPlayed = 0
}

// sides 按胜方返回（胜者，败者）两组球员的副本
func (c *Court) sides(winner Team) (winners, losers []string) {
	a := append([]string(nil), c.TeamA...)
	b := append([]string(nil), c.TeamB...)
	if winner == TeamA {
		return a, b
	}
	return b, a
}
