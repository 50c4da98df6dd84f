package biome

import (
	"math"

	"meadowland/internal/noise"
)

// Unmatched marks a cell for which no biome is admissible. It is never a
// valid catalog index.
const Unmatched = -1

// Admits reports whether every sampled scalar meets the biome's minimum.
func (b Biome) Admits(s noise.Sample) bool {
	return s.Height >= b.MinHeight && s.Moisture >= b.MinMoisture && s.Heat >= b.MinHeat
}

// Score is the summed distance between the sample and the biome's minimums.
// Lower is a closer match.
func (b Biome) Score(s noise.Sample) float64 {
	return math.Abs(s.Height-b.MinHeight) + math.Abs(s.Moisture-b.MinMoisture) + math.Abs(s.Heat-b.MinHeat)
}

// Classify returns the index of the admissible biome with the lowest score,
// keeping the earliest biome on ties, or Unmatched.
func Classify(c *Catalog, s noise.Sample) int {
	best := Unmatched
	bestScore := math.Inf(1)
	for i := 0; i < c.Len(); i++ {
		b := c.biomes[i]
		if !b.Admits(s) {
			continue
		}
		if score := b.Score(s); score < bestScore {
			best = i
			bestScore = score
		}
	}
	return best
}

// Coverage counts how many classified indices fall on each biome.
type Coverage struct {
	Counts    []int
	Unmatched int
	Total     int
}

// NewCoverage sizes a histogram for a catalog of n biomes.
func NewCoverage(n int) *Coverage {
	return &Coverage{Counts: make([]int, n)}
}

// Add records one classified index.
func (cv *Coverage) Add(index int) {
	cv.Total++
	if index < 0 || index >= len(cv.Counts) {
		cv.Unmatched++
		return
	}
	cv.Counts[index]++
}

// Merge adds the counts of other. Both must describe the same catalog.
func (cv *Coverage) Merge(other *Coverage) {
	for i, n := range other.Counts {
		if i < len(cv.Counts) {
			cv.Counts[i] += n
		} else {
			cv.Unmatched += n
		}
	}
	cv.Unmatched += other.Unmatched
	cv.Total += other.Total
}

// Share returns the fraction of cells classified as index.
func (cv *Coverage) Share(index int) float64 {
	if cv.Total == 0 || index < 0 || index >= len(cv.Counts) {
		return 0
	}
	return float64(cv.Counts[index]) / float64(cv.Total)
}
