package mapgen

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"meadowland/internal/biome"
	"meadowland/internal/core"
	"meadowland/internal/noise"
	rng "meadowland/pkg/core"
)

var (
	// ErrBusy is returned by Submit while an earlier task has not been taken.
	ErrBusy = errors.New("a map generation task is already outstanding")
	// ErrInvalidSize is returned for non-positive world dimensions.
	ErrInvalidSize = errors.New("world dimensions must be positive")
)

// Request describes one generation run. Submit snapshots it, so later changes
// to the caller's values do not reach the running task.
type Request struct {
	Size    core.Size
	Catalog *biome.Catalog
	Waves   map[noise.Axis][]noise.Wave
	// RNG supplies the noise seeds. Nil draws a fresh entropy-seeded RNG.
	RNG     *rng.RNG
	Workers int
}

// Result is the output of a finished task.
type Result struct {
	ID      uuid.UUID
	Size    core.Size
	Grid    *core.Grid[Cell]
	Catalog *biome.Catalog
	Seeds   map[noise.Axis][]int64
	Elapsed time.Duration
}

type job struct {
	size    core.Size
	catalog *biome.Catalog
	layers  *noise.Layers
	workers int
}

func prepare(req Request) (*job, error) {
	if !req.Size.Valid() {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidSize, req.Size)
	}
	if err := req.Catalog.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateWaves(req.Waves); err != nil {
		return nil, err
	}
	r := req.RNG
	if r == nil {
		r = rng.NewEntropyRNG()
	}
	layers, err := noise.NewLayers(req.Waves, r)
	if err != nil {
		return nil, fmt.Errorf("build noise layers: %w", err)
	}
	return &job{
		size:    req.Size,
		catalog: req.Catalog.Clone(),
		layers:  layers,
		workers: req.Workers,
	}, nil
}

func (j *job) run(id uuid.UUID) *Result {
	start := time.Now()
	grid := Generate(j.size, j.catalog, j.layers, j.workers)
	return &Result{
		ID:      id,
		Size:    j.size,
		Grid:    grid,
		Catalog: j.catalog,
		Seeds:   j.layers.Seeds(),
		Elapsed: time.Since(start),
	}
}

// Run generates synchronously on the calling goroutine.
func Run(req Request) (*Result, error) {
	j, err := prepare(req)
	if err != nil {
		return nil, err
	}
	return j.run(uuid.New()), nil
}

// State is the lifecycle position of a submitted task.
type State int32

const (
	StateRunning State = iota
	StateCompleted
	StateConsumed
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateConsumed:
		return "consumed"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Handle refers to a submitted task. TryTake is the only way to obtain its
// result.
type Handle struct {
	id      uuid.UUID
	done    chan struct{}
	result  *Result
	taken   atomic.Bool
	release func(*Handle)
}

// ID identifies the task in logs.
func (h *Handle) ID() uuid.UUID { return h.id }

// State reports the task lifecycle without consuming anything.
func (h *Handle) State() State {
	if h.taken.Load() {
		return StateConsumed
	}
	select {
	case <-h.done:
		return StateCompleted
	default:
		return StateRunning
	}
}

// TryTake returns the result if the task has finished and nobody took it yet.
// It never blocks; calls before completion or after the result was handed out
// return false and change nothing.
func (h *Handle) TryTake() (*Result, bool) {
	select {
	case <-h.done:
	default:
		return nil, false
	}
	if !h.taken.CompareAndSwap(false, true) {
		return nil, false
	}
	res := h.result
	h.result = nil
	if h.release != nil {
		h.release(h)
	}
	return res, true
}

// Scheduler runs at most one generation task at a time on a background
// goroutine. A task stays outstanding until its result is taken.
type Scheduler struct {
	log *slog.Logger

	mu     sync.Mutex
	active *Handle
}

// NewScheduler returns a Scheduler logging to log. A nil logger discards.
func NewScheduler(log *slog.Logger) *Scheduler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Scheduler{log: log}
}

// Busy reports whether a task is outstanding.
func (s *Scheduler) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active != nil
}

// Submit validates req, snapshots it and starts the task. It fails with
// biome.ErrEmptyCatalog, ErrInvalidSize, ErrInvalidConfig or ErrBusy. A
// started task always runs to completion.
func (s *Scheduler) Submit(req Request) (*Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active != nil {
		return nil, fmt.Errorf("%w: task %s", ErrBusy, s.active.id)
	}
	j, err := prepare(req)
	if err != nil {
		return nil, err
	}

	h := &Handle{
		id:      uuid.New(),
		done:    make(chan struct{}),
		release: s.release,
	}
	s.active = h
	s.log.Info("map generation started",
		"task", h.id, "size", j.size.String(), "biomes", j.catalog.Len(), "workers", j.workers)

	go func() {
		res := j.run(h.id)
		h.result = res
		close(h.done)
		s.log.Info("map generation finished", "task", h.id, "elapsed", res.Elapsed)
	}()
	return h, nil
}

func (s *Scheduler) release(h *Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == h {
		s.active = nil
	}
	s.log.Debug("map generation result taken", "task", h.id)
}
