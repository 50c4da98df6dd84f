package mapgen

import (
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"meadowland/internal/biome"
	"meadowland/internal/core"
	"meadowland/internal/noise"
	rng "meadowland/pkg/core"
)

func testCatalog(t *testing.T) *biome.Catalog {
	t.Helper()
	c, err := biome.NewCatalog([]biome.Biome{
		{Name: "Mountain", MovementModifier: 0.5, MinHeight: 0.7, MinMoisture: 0, MinHeat: 0},
		{Name: "Forest", MovementModifier: 0.8, MinHeight: 0.4, MinMoisture: 0.5, MinHeat: 0.3},
		{Name: "Grass", MovementModifier: 1, MinHeight: 0.4, MinMoisture: 0, MinHeat: 0},
		{Name: "Deep Water", MovementModifier: 0.1, MinHeight: 0, MinMoisture: 0, MinHeat: 0},
	})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func waitTake(t *testing.T, h *Handle) *Result {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		if res, ok := h.TryTake(); ok {
			return res
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("task %s did not complete in time", h.ID())
	return nil
}

func request(t *testing.T, w, h int, seed int64) Request {
	return Request{
		Size:    core.Size{W: w, H: h},
		Catalog: testCatalog(t),
		Waves:   DefaultWaves(),
		RNG:     rng.NewRNG(seed),
	}
}

func TestSubmitProducesFullGrid(t *testing.T) {
	s := NewScheduler(nil)
	h, err := s.Submit(request(t, 24, 16, 7))
	if err != nil {
		t.Fatal(err)
	}
	res := waitTake(t, h)
	if res.Grid.W != 24 || res.Grid.H != 16 || res.Grid.Len() != 24*16 {
		t.Fatalf("grid %dx%d (%d cells), want 24x16", res.Grid.W, res.Grid.H, res.Grid.Len())
	}
	if res.ID != h.ID() {
		t.Fatal("result carries a different task id than its handle")
	}
	for i, c := range res.Grid.Cells() {
		if _, ok := res.Catalog.At(c.Biome); !ok {
			t.Fatalf("cell %d unmatched with a catch-all biome in the catalog", i)
		}
	}
	if h.State() != StateConsumed {
		t.Fatalf("state after take = %s, want consumed", h.State())
	}
}

func TestSubmitRejectsSecondTask(t *testing.T) {
	s := NewScheduler(nil)
	h, err := s.Submit(request(t, 64, 64, 1))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Submit(request(t, 8, 8, 2)); !errors.Is(err, ErrBusy) {
		t.Fatalf("second submit err = %v, want ErrBusy", err)
	}
	if !s.Busy() {
		t.Fatal("scheduler should stay busy until the result is taken")
	}
	waitTake(t, h)
	if s.Busy() {
		t.Fatal("taking the result should free the scheduler")
	}
	h2, err := s.Submit(request(t, 8, 8, 2))
	if err != nil {
		t.Fatalf("submit after take: %v", err)
	}
	waitTake(t, h2)
}

func TestSubmitPreconditions(t *testing.T) {
	s := NewScheduler(nil)

	req := request(t, 4, 4, 1)
	req.Catalog = nil
	if _, err := s.Submit(req); !errors.Is(err, biome.ErrEmptyCatalog) {
		t.Fatalf("nil catalog err = %v, want ErrEmptyCatalog", err)
	}

	req = request(t, 0, 4, 1)
	if _, err := s.Submit(req); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("zero width err = %v, want ErrInvalidSize", err)
	}

	req = request(t, 4, 4, 1)
	req.Waves = map[noise.Axis][]noise.Wave{noise.AxisHeight: {{Frequency: 1, Amplitude: 1}}}
	if _, err := s.Submit(req); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("missing axes err = %v, want ErrInvalidConfig", err)
	}

	if s.Busy() {
		t.Fatal("failed submits must not occupy the scheduler")
	}
}

func TestTryTakeExactlyOnce(t *testing.T) {
	s := NewScheduler(nil)
	h, err := s.Submit(request(t, 32, 32, 3))
	if err != nil {
		t.Fatal(err)
	}

	var wins atomic.Int32
	var wg sync.WaitGroup
	stop := time.Now().Add(10 * time.Second)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(stop) {
				if _, ok := h.TryTake(); ok {
					wins.Add(1)
				}
				if h.State() == StateConsumed {
					return
				}
			}
		}()
	}
	wg.Wait()
	if wins.Load() != 1 {
		t.Fatalf("result handed out %d times, want exactly once", wins.Load())
	}
	if _, ok := h.TryTake(); ok {
		t.Fatal("TryTake after consumption must report nothing")
	}
}

func TestSubmitSnapshotsRequest(t *testing.T) {
	s := NewScheduler(nil)
	req := request(t, 6, 5, 11)
	original := req.Catalog
	h, err := s.Submit(req)
	if err != nil {
		t.Fatal(err)
	}
	req.Size.W = 100
	req.Waves[noise.AxisHeight][0].Amplitude = 1000

	res := waitTake(t, h)
	if res.Size != (core.Size{W: 6, H: 5}) {
		t.Fatalf("result size %s, want 6x5", res.Size)
	}
	if res.Catalog == original {
		t.Fatal("task must work on its own copy of the catalog")
	}
	if !slices.Equal(res.Catalog.Biomes(), original.Biomes()) {
		t.Fatal("catalog copy differs from the submitted catalog")
	}
}

func TestSameSeedSameGrid(t *testing.T) {
	a, err := Run(request(t, 20, 20, 42))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Run(request(t, 20, 20, 42))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a.Grid.Cells(), b.Grid.Cells()) {
		t.Fatal("identical seeds should produce identical grids")
	}
}

func TestWorkerCountDoesNotChangeGrid(t *testing.T) {
	serial := request(t, 40, 30, 9)
	parallel := request(t, 40, 30, 9)
	parallel.Workers = 4

	a, err := Run(serial)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Run(parallel)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a.Grid.Cells(), b.Grid.Cells()) {
		t.Fatal("parallel generation differs from serial generation")
	}
}

func TestGenerateMarksUnmatched(t *testing.T) {
	c, err := biome.NewCatalog([]biome.Biome{{Name: "Unreachable", MinHeight: 2, MinMoisture: 2, MinHeat: 2}})
	if err != nil {
		t.Fatal(err)
	}
	res, err := Run(Request{Size: core.Size{W: 3, H: 3}, Catalog: c, Waves: DefaultWaves(), RNG: rng.NewRNG(1)})
	if err != nil {
		t.Fatal(err)
	}
	for i, cell := range res.Grid.Cells() {
		if cell.Matched() || cell.Biome != biome.Unmatched {
			t.Fatalf("cell %d = %+v, want unmatched", i, cell)
		}
	}
	cv := Coverage(res.Grid, res.Catalog)
	if cv.Unmatched != 9 || cv.Total != 9 {
		t.Fatalf("coverage %+v, want 9 unmatched", cv)
	}
}

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"w":                  "12",
		"h":                  "-3",
		"seed":               "77",
		"workers":            "4",
		"fallback":           "",
		"heat.1.frequency":   "0.5",
		"moisture.1.kind":    "perlin",
		"height.0.amplitude": "0",
		"lava.0.frequency":   "1",
	})
	if c.Width != 12 || c.Height != 300 {
		t.Fatalf("size %dx%d, want 12x300", c.Width, c.Height)
	}
	if c.Seed != 77 || c.Workers != 4 || c.FallbackBiome != "" {
		t.Fatalf("unexpected config %+v", c)
	}
	if got := c.Waves[noise.AxisHeat][1].Frequency; got != 0.5 {
		t.Fatalf("heat wave 1 frequency = %v, want 0.5", got)
	}
	if m := c.Waves[noise.AxisMoisture]; len(m) != 2 || m[1].Kind != noise.KindPerlin {
		t.Fatalf("moisture waves = %+v, want an appended perlin wave", m)
	}
	if got := c.Waves[noise.AxisHeight][0].Amplitude; got != 1 {
		t.Fatalf("non-positive amplitude override applied: %v", got)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if _, ok := c.Parameters().Lookup("moisture.1.frequency"); !ok {
		t.Fatal("parameters should list the appended wave")
	}
}

func TestConfigCloneIsolatesWaves(t *testing.T) {
	c := DefaultConfig()
	clone := c.Clone()
	clone.Waves[noise.AxisHeight][0].Frequency = 9
	if c.Waves[noise.AxisHeight][0].Frequency == 9 {
		t.Fatal("Clone shares wave slices with the original")
	}
}
