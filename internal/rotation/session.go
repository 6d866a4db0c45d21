package rotation

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/thoas/go-funk"

	"github.com/nickdiaz444/pickleball-open-play4/internal/apperrors"
)

// Session 单次 open play 会话的全部状态：等待队列、场地与对局流水。
// 所有操作要么完整生效要么完整拒绝；单线程调用，不做内部加锁，
// 如需跨协程共享必须由调用方在整个会话对象外层互斥。
type Session struct {
	id       string
	settings Settings
	queue    []string
	courts   []*Court
	records  []GameRecord
	autoFill bool
}

// NewSession 按配置创建会话，越界配置返回容量错误
func NewSession(settings Settings) (*Session, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	courts := make([]*Court, settings.Courts)
	for i := range courts {
		courts[i] = &Court{Index: i + 1}
	}

	s := &Session{
		id:       uuid.NewString(),
		settings: settings,
		courts:   courts,
		autoFill: settings.AutoFill,
	}

	logrus.Infof("🏓 会话 %s 已创建：%d 块场地，人数上限 %d，连胜上限 %d 局",
		s.id, settings.Courts, settings.MaxPlayers, settings.GamesPerRotation)

	return s, nil
}

// ID 会话标识
func (s *Session) ID() string {
	return s.id
}

// Settings 会话配置
func (s *Session) Settings() Settings {
	return s.settings
}

// PlayerCount 等待队列与所有场地上的总人数
func (s *Session) PlayerCount() int {
	count := len(s.queue)
	for _, c := range s.courts {
		count += c.Count()
	}
	return count
}

// AddPlayers 把一批新玩家追加到等待队列队尾。
// 名字去除首尾空白，空行忽略；与在场名单或本批次内重名、
// 超出人数上限时整批拒绝，不产生任何副作用。
func (s *Session) AddPlayers(names []string) error {
	cleaned := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		cleaned = append(cleaned, name)
	}
	if len(cleaned) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(cleaned))
	for _, name := range cleaned {
		if _, dup := seen[name]; dup {
			return fmt.Errorf("玩家 %s: %w", name, apperrors.ErrDuplicateName)
		}
		seen[name] = struct{}{}
		if s.hasPlayer(name) {
			return fmt.Errorf("玩家 %s: %w", name, apperrors.ErrDuplicateName)
		}
	}

	if s.PlayerCount()+len(cleaned) > s.settings.MaxPlayers {
		return fmt.Errorf("%w：在场 %d 人，新增 %d 人会超过 %d 人",
			apperrors.ErrCapacity, s.PlayerCount(), len(cleaned), s.settings.MaxPlayers)
	}

	s.queue = append(s.queue, cleaned...)
	logrus.Infof("👤 新增 %d 名玩家进入队列：%s", len(cleaned), strings.Join(cleaned, "、"))
	return nil
}

// RemovePlayer 把玩家从队列或场地上移除；
// 移出场地会空出一个位置，等待下一次补位。
func (s *Session) RemovePlayer(name string) error {
	name = strings.TrimSpace(name)

	if idx := funk.IndexOfString(s.queue, name); idx >= 0 {
		s.queue = append(s.queue[:idx], s.queue[idx+1:]...)
		logrus.Infof("👋 玩家 %s 已离开队列", name)
		return nil
	}

	for _, c := range s.courts {
		if c.remove(name) {
			logrus.Infof("👋 玩家 %s 已离开场地 %d", name, c.Index)
			return nil
		}
	}

	return fmt.Errorf("玩家 %s: %w", name, apperrors.ErrPlayerNotFound)
}

// AutoFill 自动补位开关当前状态
func (s *Session) AutoFill() bool {
	return s.autoFill
}

// SetAutoFill 切换自动补位开关（补位节奏由展示层驱动）
func (s *Session) SetAutoFill(enabled bool) {
	if s.autoFill == enabled {
		return
	}
	s.autoFill = enabled
	if enabled {
		logrus.Info("🔄 自动补位已开启")
	} else {
		logrus.Info("⏸️ 自动补位已关闭")
	}
}

// ResetSession 清空整场数据（队列、场地、对局流水），配置保留。
// 被丢弃的状态先整体写入日志，便于误操作后追查。
func (s *Session) ResetSession() {
	logrus.Infof("🗑️ 重置前状态：\n%s", s.Snapshot().Dump())

	s.queue = nil
	for _, c := range s.courts {
		c.clear()
	}
	s.records = nil
	s.autoFill = s.settings.AutoFill
	logrus.Infof("🧹 会话 %s 已清空", s.id)
}

func (s *Session) hasPlayer(name string) bool {
	if funk.ContainsString(s.queue, name) {
		return true
	}
	for _, c := range s.courts {
		if c.has(name) {
			return true
		}
	}
	return false
}

// court 按 1 起始编号取场地
func (s *Session) court(index int) (*Court, error) {
	if index < 1 || index > len(s.courts) {
		return nil, fmt.Errorf("场地 %d: %w", index, apperrors.ErrInvalidCourt)
	}
	return s.courts[index-1], nil
}
