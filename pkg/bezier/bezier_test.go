package bezier

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestBinomial(t *testing.T) {
	tests := []struct {
		n, k int
		want float64
	}{
		{0, 0, 1},
		{1, 0, 1},
		{1, 1, 1},
		{3, 1, 3},
		{4, 2, 6},
		{5, 2, 10},
		{10, 5, 252},
		{4, -1, 0},
		{4, 5, 0},
	}
	for _, tt := range tests {
		if got := Binomial(tt.n, tt.k); got != tt.want {
			t.Errorf("Binomial(%d, %d) = %v, want %v", tt.n, tt.k, got, tt.want)
		}
	}
}

func TestEmptyCurve(t *testing.T) {
	if got := Evaluate(nil, WeightBinomial); len(got) != 0 {
		t.Errorf("got %d samples for an empty curve, want 0", len(got))
	}

	for range Segments(nil, WeightBinomial) {
		t.Fatal("got a segment for an empty curve")
	}
}

func TestSampleCount(t *testing.T) {
	inputs := [][]Point{
		{Pt(1, 2)},
		{Pt(0, 0), Pt(10, 0)},
		{Pt(10, 10), Pt(50, 50), Pt(90, 10)},
		{Pt(0, 0), Pt(10, 30), Pt(20, -30), Pt(30, 30), Pt(40, 0), Pt(50, 10)},
	}
	for _, points := range inputs {
		if got := len(Evaluate(points, WeightBinomial)); got != SampleCount {
			t.Errorf("%d points: got %d samples, want %d", len(points), got, SampleCount)
		}

		n := 0
		for range Segments(points, WeightBinomial) {
			n++
		}
		if n != SampleCount-1 {
			t.Errorf("%d points: got %d segments, want %d", len(points), n, SampleCount-1)
		}
	}
}

func TestConstantCurve(t *testing.T) {
	p := Pt(42, -7)
	for i, s := range Evaluate([]Point{p}, WeightBinomial) {
		if s != p {
			t.Fatalf("sample %d: got %v, want %v", i, s, p)
		}
	}
}

func TestLinearCurve(t *testing.T) {
	p0, p1 := Pt(0, 0), Pt(100, 50)
	samples := Evaluate([]Point{p0, p1}, WeightBinomial)

	diff(t, p0, samples[0])
	for i, s := range samples {
		if s == p1 {
			t.Errorf("sample %d equals the end point", i)
		}

		want := Pt(float64(i), float64(i)/2)
		diff(t, want, s, cmpopts.EquateApprox(0, 1e-9))
	}
}

func TestArc(t *testing.T) {
	points := []Point{Pt(10, 10), Pt(50, 50), Pt(90, 10)}
	samples := Evaluate(points, WeightBinomial)

	diff(t, Pt(10, 10), samples[0])
	for i, s := range samples {
		if s == points[2] {
			t.Errorf("sample %d equals the last control point", i)
		}
	}

	// symmetric around x=50 with its apex at t=0.5
	diff(t, Pt(50, 30), samples[50], cmpopts.EquateApprox(0, 1e-9))
	for i := 1; i < 50; i++ {
		l, r := samples[50-i], samples[50+i]
		diff(t, 100-l.X, r.X, cmpopts.EquateApprox(0, 1e-9))
		diff(t, l.Y, r.Y, cmpopts.EquateApprox(0, 1e-9))
		if l.Y > samples[50].Y {
			t.Errorf("sample %d is above the apex: %v", 50-i, l)
		}
	}
}

func TestWeighting(t *testing.T) {
	cubic := []Point{Pt(0, 0), Pt(10, 40), Pt(30, 40), Pt(40, 0)}
	diff(t, Evaluate(cubic, WeightBinomial), Evaluate(cubic, WeightDegree), cmpopts.EquateApprox(0, 1e-9))

	quartic := []Point{Pt(0, 0), Pt(10, 40), Pt(20, -40), Pt(30, 40), Pt(40, 0)}
	got := At(quartic, 0.5, WeightDegree)
	want := At(quartic, 0.5, WeightBinomial)
	if got == want {
		t.Errorf("degree weighting should differ from binomial for 5 points, both gave %v", got)
	}

	// the middle term is weighted 4 instead of 6 at t=0.5
	diff(t, want.Y-6*-40/16.0+4*-40/16.0, got.Y, cmpopts.EquateApprox(0, 1e-9))
}

func TestSamplesStopEarly(t *testing.T) {
	n := 0
	for range Samples([]Point{Pt(0, 0), Pt(1, 1)}, WeightBinomial) {
		n++
		if n == 3 {
			break
		}
	}

	if n != 3 {
		t.Errorf("got %d samples before break, want 3", n)
	}
}

func TestWeightingString(t *testing.T) {
	diff(t, "binomial", WeightBinomial.String())
	diff(t, "degree", WeightDegree.String())
}
