package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"meadowland/assets"
	"meadowland/internal/app"
	"meadowland/internal/biome"
	"meadowland/internal/mapgen"
	rng "meadowland/pkg/core"
)

type seedResult struct {
	seed     int64
	coverage *biome.Coverage
	elapsed  time.Duration
	err      error
}

func main() {
	seeds := flag.Int("seeds", 16, "number of consecutive seeds to generate")
	first := flag.Int64("first", 1, "first seed of the sweep")
	workers := flag.Int("jobs", runtime.NumCPU(), "number of seeds generated in parallel")
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	catalog, err := assets.LoadCatalog(cfg.Catalog)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	gen := cfg.Map()
	if err := gen.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Sweeping %d seeds on a %s world (%d workers, %d biomes)\n", *seeds, gen.Size(), *workers, catalog.Len())

	jobs := make(chan int64)
	results := make(chan seedResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- runSeed(gen, catalog, seed)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *seeds; i++ {
			jobs <- *first + int64(i)
		}
		close(jobs)
	}()

	start := time.Now()
	var all []seedResult
	total := biome.NewCoverage(catalog.Len())
	for res := range results {
		if res.err != nil {
			fmt.Fprintf(os.Stderr, "seed %d: %v\n", res.seed, res.err)
			continue
		}
		all = append(all, res)
		total.Merge(res.coverage)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].seed < all[j].seed })
	elapsed := time.Since(start)

	fmt.Printf("\nPer seed (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for _, res := range all {
		top, share := dominant(res.coverage)
		name := "-"
		if b, ok := catalog.At(top); ok {
			name = b.Name
		}
		fmt.Printf("seed=%d gen=%s dominant=%s (%.1f%%) unmatched=%d\n",
			res.seed, res.elapsed.Round(time.Millisecond), name, 100*share, res.coverage.Unmatched)
	}

	fmt.Printf("\nOverall coverage across %d cells:\n", total.Total)
	for i, b := range catalog.Biomes() {
		fmt.Printf("%-14s %6.2f%%\n", b.Name, 100*total.Share(i))
	}
	if total.Unmatched > 0 {
		fmt.Printf("%-14s %6.2f%%\n", "(unmatched)", 100*float64(total.Unmatched)/float64(total.Total))
	}
}

func runSeed(gen mapgen.Config, catalog *biome.Catalog, seed int64) seedResult {
	res, err := mapgen.Run(mapgen.Request{
		Size:    gen.Size(),
		Catalog: catalog,
		Waves:   gen.Waves,
		RNG:     rng.NewRNG(seed),
		Workers: gen.Workers,
	})
	if err != nil {
		return seedResult{seed: seed, err: err}
	}
	return seedResult{
		seed:     seed,
		coverage: mapgen.Coverage(res.Grid, res.Catalog),
		elapsed:  res.Elapsed,
	}
}

func dominant(cov *biome.Coverage) (int, float64) {
	best := biome.Unmatched
	for i, n := range cov.Counts {
		if best == biome.Unmatched || n > cov.Counts[best] {
			best = i
		}
	}
	return best, cov.Share(best)
}
