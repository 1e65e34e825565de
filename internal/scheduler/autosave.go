package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Saver persists the current state to a destination path.
type Saver interface {
	Save(path string) error
}

// Autosaver saves on a cron schedule. It runs no goroutine of its own: the
// caller drives it through Checkpoint between operations.
type Autosaver struct {
	schedule cron.Schedule
	saver    Saver
	path     string
	next     time.Time
	logger   *zap.Logger
}

// NewAutosaver parses a standard five-field cron expression. An empty
// expression yields a nil Autosaver, which never saves.
func NewAutosaver(spec string, saver Saver, path string, now time.Time, logger *zap.Logger) (*Autosaver, error) {
	if spec == "" {
		return nil, nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("parse autosave schedule %q: %w", spec, err)
	}

	return &Autosaver{
		schedule: schedule,
		saver:    saver,
		path:     path,
		next:     schedule.Next(now),
		logger:   logger,
	}, nil
}

// Next returns when the next save is due.
func (a *Autosaver) Next() time.Time {
	if a == nil {
		return time.Time{}
	}
	return a.next
}

// Checkpoint saves when the schedule is due at now and reports whether a save
// ran. Missed slots collapse into a single save.
func (a *Autosaver) Checkpoint(now time.Time) (bool, error) {
	if a == nil || now.Before(a.next) {
		return false, nil
	}

	a.next = a.schedule.Next(now)

	if err := a.saver.Save(a.path); err != nil {
		a.logger.Error("autosave failed", zap.String("path", a.path), zap.Error(err))
		return false, err
	}

	a.logger.Info("autosave completed", zap.String("path", a.path), zap.Time("next", a.next))
	return true, nil
}
