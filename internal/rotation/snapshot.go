package rotation

import (
	"fmt"
	"strings"
	"time"
)

// GameRecord 一局比赛的流水记录（按记录时的阵容，轮换前）
type GameRecord struct {
	ID       string
	Court    int
	Winner   Team
	TeamA    []string
	TeamB    []string
	PlayedAt time.Time
}

// WinnerNames 胜方两人
func (r GameRecord) WinnerNames() []string {
	if r.Winner == TeamA {
		return r.TeamA
	}
	return r.TeamB
}

// LoserNames 败方两人
func (r GameRecord) LoserNames() []string {
	if r.Winner == TeamA {
		return r.TeamB
	}
	return r.TeamA
}

// CourtView 场地的只读视图
type CourtView struct {
	Index       int
	TeamA       []string
	TeamB       []string
	GamesPlayed int
}

// Count 在场人数
func (v CourtView) Count() int {
	return len(v.TeamA) + len(v.TeamB)
}

// Snapshot 会话状态的只读快照，供展示层渲染；
// 所有切片均为深拷贝，后续引擎操作不会改动快照内容。
type Snapshot struct {
	SessionID        string
	Queue            []string
	Courts           []CourtView
	Records          []GameRecord
	MaxPlayers       int
	GamesPerRotation int
	AutoFill         bool
}

// PlayerCount 快照内队列与场地上的总人数
func (s Snapshot) PlayerCount() int {
	count := len(s.Queue)
	for _, c := range s.Courts {
		count += c.Count()
	}
	return count
}

// Snapshot 生成当前状态的只读快照
func (s *Session) Snapshot() Snapshot {
	courts := make([]CourtView, len(s.courts))
	for i, c := range s.courts {
		courts[i] = CourtView{
			Index:       c.Index,
			TeamA:       append([]string(nil), c.TeamA...),
			TeamB:       append([]string(nil), c.TeamB...),
			GamesPlayed: c.GamesPlayed,
		}
	}

	records := make([]GameRecord, len(s.records))
	for i, r := range s.records {
		records[i] = GameRecord{
			ID:       r.ID,
			Court:    r.Court,
			Winner:   r.Winner,
			TeamA:    append([]string(nil), r.TeamA...),
			TeamB:    append([]string(nil), r.TeamB...),
			PlayedAt: r.PlayedAt,
		}
	}

	return Snapshot{
		SessionID:        s.id,
		Queue:            append([]string(nil), s.queue...),
		Courts:           courts,
		Records:          records,
		MaxPlayers:       s.settings.MaxPlayers,
		GamesPerRotation: s.settings.GamesPerRotation,
		AutoFill:         s.autoFill,
	}
}

// Dump 输出确定性的纯文本状态快照（不含 ID 与时间），
// 用于调试日志和黄金文件比对。
func (s Snapshot) Dump() string {
	var b strings.Builder

	fmt.Fprintf(&b, "session: courts=%d max=%d cap=%d auto-fill=%v\n",
		len(s.Courts), s.MaxPlayers, s.GamesPerRotation, s.AutoFill)

	for _, c := range s.Courts {
		if c.Count() == 0 {
			fmt.Fprintf(&b, "court %d: empty\n", c.Index)
			continue
		}
		fmt.Fprintf(&b, "court %d [games %d/%d]: A=%v B=%v\n",
			c.Index, c.GamesPlayed, s.GamesPerRotation, c.TeamA, c.TeamB)
	}

	fmt.Fprintf(&b, "queue: %v\n", s.Queue)
	fmt.Fprintf(&b, "records: %d\n", len(s.Records))

	return b.String()
}
