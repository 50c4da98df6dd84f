package app

import (
	"fmt"
	"log/slog"
	"time"

	"meadowland/internal/biome"
	"meadowland/internal/core"
	"meadowland/internal/mapgen"
	"meadowland/internal/tiles"
	rng "meadowland/pkg/core"
)

// Loader provides the biome catalog and texture atlas during the loading phase.
type Loader func() (*biome.Catalog, *tiles.Atlas, error)

// Session walks the program through loading, map generation and the main
// phase. Tick is driven by the ebiten game loop or by the headless runner.
type Session struct {
	cfg    mapgen.Config
	load   Loader
	log    *slog.Logger
	sched  *mapgen.Scheduler
	phases *core.PhaseMachine
	world  *rng.RNG

	catalog *biome.Catalog
	mat     *tiles.Materializer
	poller  *Poller

	submitted time.Time
	elapsed   time.Duration
	tilemap   *tiles.Tilemap
	grid      *core.Grid[mapgen.Cell]
	coverage  *biome.Coverage

	now func() time.Time
}

// NewSession prepares a session in the loading phase. A non-zero cfg.Seed
// makes the whole run reproducible.
func NewSession(cfg mapgen.Config, load Loader, log *slog.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	world := rng.NewEntropyRNG()
	if cfg.Seed != 0 {
		world = rng.NewRNG(cfg.Seed)
	}
	return &Session{
		cfg:    cfg.Clone(),
		load:   load,
		log:    log,
		sched:  mapgen.NewScheduler(log),
		phases: core.NewPhaseMachine(core.PhaseLoading),
		world:  world,
		now:    time.Now,
	}, nil
}

// Phase returns the active phase.
func (s *Session) Phase() core.Phase { return s.phases.Current() }

// Config returns the generation settings of the session.
func (s *Session) Config() mapgen.Config { return s.cfg }

// Parameters reports the values shaping the run.
func (s *Session) Parameters() core.ParameterSnapshot { return s.cfg.Parameters() }

// Tilemap returns the installed tilemap, or nil before the main phase.
func (s *Session) Tilemap() *tiles.Tilemap { return s.tilemap }

// Grid returns the classified cells behind the tilemap, or nil before the
// main phase.
func (s *Session) Grid() *core.Grid[mapgen.Cell] { return s.grid }

// Catalog returns the loaded catalog, or nil while loading.
func (s *Session) Catalog() *biome.Catalog { return s.catalog }

// Coverage returns per-biome cell counts of the generated grid.
func (s *Session) Coverage() *biome.Coverage { return s.coverage }

// Elapsed reports how long generation has been running, or how long it took
// once the tilemap is installed.
func (s *Session) Elapsed() time.Duration {
	switch {
	case s.tilemap != nil:
		return s.elapsed
	case s.submitted.IsZero():
		return 0
	default:
		return s.now().Sub(s.submitted)
	}
}

// Tick advances the session by one frame without blocking. Returned errors
// are fatal for the session.
func (s *Session) Tick() error {
	switch s.phases.Current() {
	case core.PhaseLoading:
		if s.phases.Entered(core.PhaseLoading) {
			return s.loadAssets()
		}
	case core.PhaseMapGeneration:
		if s.phases.Entered(core.PhaseMapGeneration) {
			return s.submit()
		}
		_, err := s.poller.Poll()
		return err
	case core.PhaseMain:
		if s.phases.Entered(core.PhaseMain) {
			s.log.Info("world ready", "size", s.cfg.Size().String(), "elapsed", s.elapsed)
		}
	}
	return nil
}

func (s *Session) loadAssets() error {
	catalog, atlas, err := s.load()
	if err != nil {
		return fmt.Errorf("load assets: %w", err)
	}
	fallback, err := tiles.FallbackIndex(catalog, s.cfg.FallbackBiome)
	if err != nil {
		return fmt.Errorf("load assets: %w", err)
	}
	if missing := atlas.Missing(catalog); len(missing) > 0 {
		s.log.Warn("biomes without textures", "biomes", missing)
	}
	s.catalog = catalog
	s.mat = &tiles.Materializer{
		Lookup:   atlas,
		RNG:      s.world,
		CellSize: s.cfg.CellSize,
		Fallback: fallback,
	}
	s.log.Info("assets loaded", "biomes", catalog.Len(), "textures", len(atlas.All()))
	s.phases.Set(core.PhaseMapGeneration)
	return nil
}

func (s *Session) submit() error {
	handle, err := s.sched.Submit(mapgen.Request{
		Size:    s.cfg.Size(),
		Catalog: s.catalog,
		Waves:   s.cfg.Waves,
		RNG:     rng.NewRNG(s.world.Int64()),
		Workers: s.cfg.Workers,
	})
	if err != nil {
		return fmt.Errorf("submit map generation: %w", err)
	}
	s.submitted = s.now()
	s.poller = NewPoller(handle, s.mat, s.phases, s.install, s.log)
	return nil
}

func (s *Session) install(tm *tiles.Tilemap, res *mapgen.Result) {
	s.tilemap = tm
	s.grid = res.Grid
	s.elapsed = s.now().Sub(s.submitted)
	s.coverage = mapgen.Coverage(res.Grid, res.Catalog)
}
