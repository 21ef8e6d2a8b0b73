// Package history provides the window listing finished countdown
// sessions together with daily totals.
package history

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/manfredi31/timerapplication/internal/core/model"
	"github.com/manfredi31/timerapplication/internal/logger"
)

const recentLimit = 50

// Store is the slice of session storage the window reads.
type Store interface {
	Recent(limit int) ([]model.SessionRecord, error)
	TotalsSince(since time.Time) (int, time.Duration, error)
	Clear() error
}

// Window lists finished countdown sessions.
type Window struct {
	window  fyne.Window
	store   Store
	list    *widget.List
	summary *widget.Label
	records []model.SessionRecord
}

// New creates the history window. It stays hidden until Show is called.
func New(app fyne.App, store Store) *Window {
	window := app.NewWindow("Timer History")

	view := &Window{
		window:  window,
		store:   store,
		summary: widget.NewLabel(""),
	}

	view.list = widget.NewList(
		func() int { return len(view.records) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, object fyne.CanvasObject) {
			if id < 0 || id >= len(view.records) {
				return
			}
			object.(*widget.Label).SetText(formatRecord(view.records[id]))
		},
	)

	clearButton := widget.NewButton("Clear history", view.handleClear)
	footer := container.NewVBox(
		view.summary,
		container.NewHBox(layout.NewSpacer(), clearButton),
	)

	content := container.NewBorder(nil, footer, nil, nil, view.list)
	window.SetContent(content)
	window.Resize(fyne.NewSize(440, 380))

	window.SetCloseIntercept(func() { window.Hide() })

	return view
}

// Show reloads the records and displays the window.
func (view *Window) Show() {
	view.Refresh()
	view.window.Show()
	view.window.RequestFocus()
}

// Refresh reloads the listed records and the daily summary.
func (view *Window) Refresh() {
	records, err := view.store.Recent(recentLimit)
	if err != nil {
		logger.Logger().Errorf("load history: %v", err)
		view.records = nil
		view.list.Refresh()
		view.summary.SetText("History unavailable")
		return
	}

	view.records = records
	view.list.Refresh()

	count, total, err := view.store.TotalsSince(startOfDay(time.Now()))
	if err != nil {
		logger.Logger().Errorf("history totals: %v", err)
		view.summary.SetText("History unavailable")
		return
	}
	view.summary.SetText(formatTotals(count, total))
}

func (view *Window) handleClear() {
	if err := view.store.Clear(); err != nil {
		logger.Logger().Errorf("clear history: %v", err)
	}
	view.Refresh()
}

func formatRecord(record model.SessionRecord) string {
	label := record.Label
	if label == "" {
		label = "Untitled"
	}
	return fmt.Sprintf("%s · %s · %s of %s · %s",
		record.StartedAt.Local().Format("Jan 2 15:04"),
		label,
		formatDuration(record.Elapsed),
		formatDuration(record.Total),
		record.Outcome)
}

func formatTotals(count int, total time.Duration) string {
	if count == 0 {
		return "No sessions today"
	}
	unit := "sessions"
	if count == 1 {
		unit = "session"
	}
	return fmt.Sprintf("Today: %d %s · %s focused", count, unit, formatDuration(total))
}

func formatDuration(duration time.Duration) string {
	total := int(duration.Seconds())
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

func startOfDay(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
