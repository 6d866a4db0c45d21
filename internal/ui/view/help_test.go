package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRulesText_ExplainsRotation(t *testing.T) {
	t.Parallel()

	assert.Contains(t, rulesText, "轮转规则")
	assert.Contains(t, rulesText, "败方两人立刻下场")
	assert.Contains(t, rulesText, "胜方留场拆队")
	assert.Contains(t, rulesText, "回到队首")
}

func TestRulesText_ListsAllKeyBindings(t *testing.T) {
	t.Parallel()

	bindings := []string{
		"报名玩家",
		"记录胜负",
		"立即补位",
		"自动补位开关",
		"移除玩家",
		"清空单块场地",
		"清空全部场地",
		"重置整场",
		"切换标签页",
		"退出",
	}

	for _, b := range bindings {
		assert.Contains(t, rulesText, b, "Should document: %s", b)
	}
}
