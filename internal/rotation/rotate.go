package rotation

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/nickdiaz444/pickleball-open-play4/internal/apperrors"
)

// RecordResult 记录一块场地打完的一局，并按赢留场规则轮换：
// 输方两人立即排到队尾；局数到达连胜上限时赢方也排到队尾（跟在输方后面），
// 场地清空、局数归零；未到上限时赢方留场，两人拆开各守一队，
// 等待补位的新搭档。本操作不补位，补位由 FillCourts 负责。
func (s *Session) RecordResult(courtIndex int, winner Team) error {
	court, err := s.court(courtIndex)
	if err != nil {
		return err
	}
	if !winner.Valid() {
		return fmt.Errorf("场地 %d: %w", courtIndex, apperrors.ErrInvalidTeam)
	}
	if !court.IsFull() {
		return fmt.Errorf("场地 %d 只有 %d 人: %w", courtIndex, court.Count(), apperrors.ErrCourtNotFull)
	}

	court.GamesPlayed++
	games := court.GamesPlayed
	winners, losers := court.sides(winner)

	s.records = append(s.records, GameRecord{
		ID:       uuid.NewString(),
		Court:    courtIndex,
		Winner:   winner,
		TeamA:    append([]string(nil), court.TeamA...),
		TeamB:    append([]string(nil), court.TeamB...),
		PlayedAt: time.Now(),
	})

	// 输方每局都下场
	s.queue = append(s.queue, losers...)

	if games >= s.settings.GamesPerRotation {
		// 连胜到顶，赢方也下场，排在输方之后
		s.queue = append(s.queue, winners...)
		court.clear()
		logrus.Infof("🔁 场地 %d 第 %d 局由 %s 队拿下，达到连胜上限，全场下场轮换",
			courtIndex, games, winner)
	} else {
		// 赢方留场，两人拆开各守一队
		court.TeamA = []string{winners[0]}
		court.TeamB = []string{winners[1]}
		logrus.Infof("🏆 场地 %d 由 %s 队（%s）拿下，输方 %s 下场排队",
			courtIndex, winner, strings.Join(winners, "、"), strings.Join(losers, "、"))
	}

	return nil
}

// FillCourts 按场地编号顺序，用队首的等待玩家补满空位；
// 每块场地内人少的一队先补满，人数相同先补 A 队。
// 队列空了或场地全满时是幂等的空操作。
func (s *Session) FillCourts() int {
	seated := 0
	for _, court := range s.courts {
		var n int
		s.queue, n = court.fill(s.queue)
		seated += n
	}
	if seated > 0 {
		logrus.Infof("📥 补位完成，%d 名玩家上场", seated)
	}
	return seated
}

// ResetCourt 手动清空一块场地：在场球员按 A 队、B 队顺序整组插回队首，
// 优先续打；局数归零。
func (s *Session) ResetCourt(courtIndex int) error {
	court, err := s.court(courtIndex)
	if err != nil {
		return err
	}

	returning := court.occupants()
	court.clear()
	if len(returning) > 0 {
		s.queue = append(returning, s.queue...)
	}

	logrus.Infof("🧽 场地 %d 已重置，%d 名玩家插回队首", courtIndex, len(returning))
	return nil
}

// ResetAll 清空所有场地：按场地编号顺序收拢在场球员，
// 整块插回队首（1 号场的球员排最前），各场局数归零。
func (s *Session) ResetAll() {
	var returning []string
	for _, court := range s.courts {
		returning = append(returning, court.occupants()...)
		court.clear()
	}
	if len(returning) > 0 {
		s.queue = append(returning, s.queue...)
	}

	logrus.Infof("🧽 全部场地已重置，%d 名玩家插回队首", len(returning))
}
