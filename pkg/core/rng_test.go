package core

import "testing"

func TestNewRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 100; i++ {
		if a.Int64() != b.Int64() {
			t.Fatalf("draw %d differs for identical seeds", i)
		}
	}
}

func TestWeightedIndexEmpty(t *testing.T) {
	r := NewRNG(1)
	if got := r.WeightedIndex(nil); got != -1 {
		t.Fatalf("WeightedIndex(nil) = %d, want -1", got)
	}
	if got := r.WeightedIndex([]uint32{0, 0}); got != -1 {
		t.Fatalf("WeightedIndex(zero weights) = %d, want -1", got)
	}
}

func TestWeightedIndexSkipsZeroWeights(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 1000; i++ {
		if got := r.WeightedIndex([]uint32{0, 5, 0}); got != 1 {
			t.Fatalf("WeightedIndex picked %d, only index 1 has weight", got)
		}
	}
}

func TestWeightedIndexDistribution(t *testing.T) {
	r := NewRNG(99)
	counts := make([]int, 2)
	const draws = 20000
	for i := 0; i < draws; i++ {
		counts[r.WeightedIndex([]uint32{3, 1})]++
	}
	ratio := float64(counts[0]) / draws
	if ratio < 0.72 || ratio > 0.78 {
		t.Fatalf("index 0 chosen %.3f of the time, want about 0.75", ratio)
	}
}
