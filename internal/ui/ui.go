// Package ui provides the main entry point for the UI.
package ui

import (
	"time"

	"github.com/nickdiaz444/pickleball-open-play4/internal/rotation"
	"github.com/nickdiaz444/pickleball-open-play4/internal/ui/input"
	"github.com/nickdiaz444/pickleball-open-play4/internal/ui/model"
	"github.com/nickdiaz444/pickleball-open-play4/internal/ui/view"
)

// NewSessionModel creates the session model with its view renderer and
// keyboard handler wired in.
func NewSessionModel(session *rotation.Session, autoFillInterval time.Duration, muted bool) *model.SessionModel {
	m := model.NewSessionModel(session, autoFillInterval, muted)
	m.SetViewRenderer(view.CreateViewRenderer())
	m.SetKeyHandler(input.HandleKeyPress)
	return m
}
