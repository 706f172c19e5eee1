package tui

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pacdfa/internal/game"
	"github.com/vovakirdan/pacdfa/internal/storage"
)

// RunStore is the part of storage.Store the recorder needs.
type RunStore interface {
	RecordRun(r storage.Run) (int64, error)
}

// Recorder is a driver observer that writes a storage.Run each time a level
// attempt ends in a clear or a death.
type Recorder struct {
	pack    string
	store   RunStore
	logger  *log.Logger
	now     func() time.Time
	started time.Time
	last    game.Mode
}

// NewRecorder creates a recorder for runs of the named pack.
// A nil store makes it a no-op; a nil logger discards write failures.
func NewRecorder(pack string, store RunStore, logger *log.Logger) *Recorder {
	r := &Recorder{
		pack:   pack,
		store:  store,
		logger: logger,
		now:    time.Now,
		last:   game.ModePlaying,
	}
	r.started = r.now()
	return r
}

// Observe implements game.Observer.
func (r *Recorder) Observe(obs game.Observation) {
	defer func() { r.last = obs.Mode }()

	if obs.Mode == game.ModePlaying {
		// A fresh attempt restarts the clock.
		if r.last != game.ModePlaying || obs.Moves == 0 {
			r.started = r.now()
		}
		return
	}
	if r.last != game.ModePlaying || r.store == nil {
		return
	}

	outcome := storage.OutcomeCleared
	if obs.Mode == game.ModeDead {
		outcome = storage.OutcomeCaught
	}
	run := storage.Run{
		Pack:      r.pack,
		Level:     obs.Level,
		LevelName: obs.LevelName,
		Outcome:   outcome,
		Moves:     obs.Moves,
		Duration:  r.now().Sub(r.started),
	}
	if _, err := r.store.RecordRun(run); err != nil && r.logger != nil {
		r.logger.Warn("could not record run", "pack", r.pack, "level", obs.LevelName, "error", err)
	}
}
