// Package model defines the core types and interfaces for the UI.
package model

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/nickdiaz444/pickleball-open-play4/internal/rotation"
)

// Tab represents the active screen tab.
type Tab int

const (
	TabCourts Tab = iota
	TabQueue
	TabHistory
	TabHelp

	tabCount = 4
)

// InputMode represents what the shared text input is collecting.
type InputMode int

const (
	ModeNone         InputMode = iota
	ModeAddPlayers             // 报名玩家
	ModeRecordResult           // 记录胜负
	ModeRemovePlayer           // 移除玩家
	ModeResetCourt             // 清空单块场地
)

// NotificationType represents types of system notifications.
type NotificationType int

const (
	NotifyError NotificationType = iota // 错误信息（临时）
	NotifyInfo                          // 操作反馈（临时）
)

// SystemNotification represents a system notification.
type SystemNotification struct {
	Message   string
	Type      NotificationType
	Temporary bool // 是否为临时通知（3秒后自动消失）
}

// --- Tea Messages ---

// AutoFillTickMsg fires the periodic auto-fill check.
type AutoFillTickMsg struct{}

// ClearNotificationMsg clears temporary notifications.
type ClearNotificationMsg struct{}

// --- Model Interface ---

// Model is the main interface for SessionModel, used by the view and
// input packages.
type Model interface {
	// Engine access
	Session() *rotation.Session

	// Tab management
	Tab() Tab
	SetTab(Tab)
	NextTab()
	PrevTab()

	// Input mode management
	Mode() InputMode
	SetMode(InputMode)
	ConfirmingWipe() bool
	SetConfirmingWipe(bool)

	// UI components
	Input() *textinput.Model

	// Notification management
	SetNotification(notifyType NotificationType, message string, temporary bool)
	ClearNotification(notifyType NotificationType)
	GetCurrentNotification() *SystemNotification

	// Sound
	PlaySound(name string)

	// Dimensions
	Width() int
	Height() int
}
