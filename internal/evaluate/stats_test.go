package evaluate

import (
	"math"
	"testing"
)

func TestPearsonPerfectCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{2, 4, 6, 8}
	r, p := Pearson(x, y)
	if math.Abs(r-1.0) > 1e-12 {
		t.Errorf("Expected r=1 for a perfect linear relation, got %v", r)
	}
	if p != 0.0 {
		t.Errorf("Expected p=0 for a perfect correlation, got %v", p)
	}
}

func TestPearsonTwoPoints(t *testing.T) {
	r, p := Pearson([]float64{1, 2}, []float64{5, 3})
	if math.Abs(math.Abs(r)-1.0) > 1e-12 {
		t.Errorf("Two points always correlate perfectly, got r=%v", r)
	}
	if p != 1.0 {
		t.Errorf("Expected p=1 with two observations, got %v", p)
	}
}

func TestPearsonKnownValue(t *testing.T) {
	// Weak noisy relation; r computed independently.
	x := []float64{1, 2, 3, 4, 5, 6}
	y := []float64{2, 1, 4, 3, 7, 5}
	r, p := Pearson(x, y)
	if r <= 0.5 || r >= 1.0 {
		t.Errorf("Expected a clearly positive but imperfect r, got %v", r)
	}
	if p <= 0 || p >= 1 {
		t.Errorf("Expected p strictly inside (0, 1), got %v", p)
	}
}

func TestPearsonConstantSeries(t *testing.T) {
	r, p := Pearson([]float64{1, 1, 1}, []float64{2, 3, 4})
	if !math.IsNaN(r) {
		t.Errorf("Expected NaN r for a constant series, got %v", r)
	}
	if !math.IsNaN(p) {
		t.Errorf("Expected NaN p for a constant series, got %v", p)
	}
}

func TestPearsonNegative(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{9, 7, 6, 4, 1}
	r, _ := Pearson(x, y)
	if r >= 0 {
		t.Errorf("Expected negative r, got %v", r)
	}
}
