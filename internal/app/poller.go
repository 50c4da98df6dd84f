package app

import (
	"fmt"
	"log/slog"

	"meadowland/internal/core"
	"meadowland/internal/mapgen"
	"meadowland/internal/tiles"
)

// Taker yields a finished generation result at most once.
type Taker interface {
	TryTake() (*mapgen.Result, bool)
}

// Sink receives the tilemap of a finished generation.
type Sink func(tm *tiles.Tilemap, res *mapgen.Result)

// Poller checks an outstanding generation once per tick and installs its
// tilemap when the result arrives.
type Poller struct {
	task   Taker
	mat    *tiles.Materializer
	phases *core.PhaseMachine
	sink   Sink
	log    *slog.Logger
}

// NewPoller watches task. A nil logger discards.
func NewPoller(task Taker, mat *tiles.Materializer, phases *core.PhaseMachine, sink Sink, log *slog.Logger) *Poller {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Poller{task: task, mat: mat, phases: phases, sink: sink, log: log}
}

// Pending reports whether the poller still waits for a result.
func (p *Poller) Pending() bool { return p.task != nil }

// Poll never blocks. It returns true on the tick the tilemap was installed and
// the phase moved to main. Materialization errors are returned as is; the
// task is released either way.
func (p *Poller) Poll() (bool, error) {
	if p.task == nil {
		return false, nil
	}
	res, ok := p.task.TryTake()
	if !ok {
		return false, nil
	}
	p.task = nil

	tm, err := p.mat.Materialize(res)
	if err != nil {
		return false, fmt.Errorf("materialize task %s: %w", res.ID, err)
	}
	if p.sink != nil {
		p.sink(tm, res)
	}
	p.phases.Set(core.PhaseMain)
	p.log.Info("tilemap installed", "task", res.ID, "tiles", len(tm.Tiles), "size", res.Size.String())
	return true, nil
}
