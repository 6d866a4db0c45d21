package view

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nickdiaz444/pickleball-open-play4/internal/rotation"
)

func TestRenderHistoryList_Empty(t *testing.T) {
	t.Parallel()

	result := renderHistoryList(nil)

	assert.Contains(t, result, "暂无对局")
	assert.Contains(t, result, "记录胜负")
}

func TestRenderHistoryList_SingleGame(t *testing.T) {
	t.Parallel()

	records := []rotation.GameRecord{
		{
			ID:       "g1",
			Court:    1,
			Winner:   rotation.TeamA,
			TeamA:    []string{"Alice", "Bob"},
			TeamB:    []string{"Carol", "Dave"},
			PlayedAt: time.Date(2026, 3, 14, 14, 30, 0, 0, time.Local),
		},
	}

	result := renderHistoryList(records)

	assert.Contains(t, result, "14:30")
	assert.Contains(t, result, "场地1")
	assert.Contains(t, result, "A队胜")
	assert.Contains(t, result, "Alice、Bob")
	assert.Contains(t, result, "Carol、Dave")
	assert.Contains(t, result, "共 1 局")
}

func TestRenderHistoryList_LatestFirst(t *testing.T) {
	t.Parallel()

	records := []rotation.GameRecord{
		{Court: 1, Winner: rotation.TeamA, TeamA: []string{"Older"}, TeamB: []string{"x"}},
		{Court: 2, Winner: rotation.TeamB, TeamA: []string{"y"}, TeamB: []string{"Newer"}},
	}

	result := renderHistoryList(records)

	newer := strings.Index(result, "Newer")
	older := strings.Index(result, "Older")
	assert.GreaterOrEqual(t, newer, 0)
	assert.Less(t, newer, older)
}

func TestRenderHistoryList_LimitsToRecentGames(t *testing.T) {
	t.Parallel()

	records := make([]rotation.GameRecord, 12)
	for i := range records {
		records[i] = rotation.GameRecord{
			Court:  1,
			Winner: rotation.TeamA,
			TeamA:  []string{fmt.Sprintf("P%02d", i)},
			TeamB:  []string{"x"},
		}
	}

	result := renderHistoryList(records)

	assert.NotContains(t, result, "P00")
	assert.NotContains(t, result, "P01")
	assert.Contains(t, result, "P02")
	assert.Contains(t, result, "P11")
	assert.Contains(t, result, "共 12 局")
}

func TestRenderHistoryList_TruncatesLongNames(t *testing.T) {
	t.Parallel()

	records := []rotation.GameRecord{
		{
			Court:  1,
			Winner: rotation.TeamA,
			TeamA:  []string{"AbsurdlyLongWinnerName", "Bob"},
			TeamB:  []string{"Carol", "Dave"},
		},
	}

	result := renderHistoryList(records)

	assert.Contains(t, result, "…")
	assert.NotContains(t, result, "AbsurdlyLongWinnerName")
}
