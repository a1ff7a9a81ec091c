// Package ui launches the interactive journal.
package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"tableflip.dev/mindtrackr/pkg/journal"
	"tableflip.dev/mindtrackr/pkg/store"
	"tableflip.dev/mindtrackr/pkg/tui/app"
)

type UI struct {
	Journal *journal.Store
	Logger  *zap.Logger
	Profile termenv.Profile
	// Options are passed to tea.NewProgram after the defaults.
	Options []tea.ProgramOption
}

func (u *UI) Do(ctx context.Context) error {
	if u.Journal == nil {
		return errors.New("can not start ui, no journal")
	}
	log := u.Logger
	if log == nil {
		log = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events, err := store.Watch(ctx, u.Journal.Slot(), store.WithWatchLogger(log))
	if err != nil {
		if !errors.Is(err, store.ErrWatchUnsupported) {
			log.Warn("not watching slot for external changes", zap.Error(err))
		}
		events = nil
	}

	m := app.New(ctx, app.Options{
		Journal: u.Journal,
		Logger:  log,
		Events:  events,
		Profile: u.Profile,
	})
	defer func() { _ = m.Close() }()

	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, u.Options...)
	_, err = tea.NewProgram(m, opts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
