package rotation

import (
	"fmt"

	"github.com/nickdiaz444/pickleball-open-play4/internal/apperrors"
)

// 会话配置的合法范围
const (
	MinPlayers = 1
	MaxPlayers = 20
	MinCourts  = 1
	MaxCourts  = 3
)

// Settings 会话配置，创建会话后不可变更。
// 越界的取值在创建时直接拒绝，不做静默收缩。
type Settings struct {
	MaxPlayers       int
	Courts           int
	GamesPerRotation int
	AutoFill         bool
}

// Validate 校验配置取值范围
func (s Settings) Validate() error {
	if s.MaxPlayers < MinPlayers || s.MaxPlayers > MaxPlayers {
		return fmt.Errorf("%w：人数上限需在 %d-%d 之间，收到 %d", apperrors.ErrCapacity, MinPlayers, MaxPlayers, s.MaxPlayers)
	}
	if s.Courts < MinCourts || s.Courts > MaxCourts {
		return fmt.Errorf("%w：场地数需在 %d-%d 之间，收到 %d", apperrors.ErrCapacity, MinCourts, MaxCourts, s.Courts)
	}
	if s.GamesPerRotation < 1 {
		return fmt.Errorf("%w：连胜局数上限至少为 1，收到 %d", apperrors.ErrCapacity, s.GamesPerRotation)
	}
	return nil
}
