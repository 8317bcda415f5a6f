package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-adsr/dsp/core"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireSampleNear fails t if got differs from (wantTime, wantAmp) by more
// than eps in either column.
func RequireSampleNear(t *testing.T, got core.Sample, wantTime, wantAmp, eps float64) {
	t.Helper()
	if math.Abs(got.Time-wantTime) > eps || math.Abs(got.Amplitude-wantAmp) > eps {
		t.Fatalf("sample = (%v, %v), want (%v, %v) within %v", got.Time, got.Amplitude, wantTime, wantAmp, eps)
	}
}

// RequireFinite fails t if any sample holds a NaN or Inf.
func RequireFinite(t *testing.T, samples []core.Sample) {
	t.Helper()
	for i, s := range samples {
		if !core.IsFinite(s.Time) || !core.IsFinite(s.Amplitude) {
			t.Fatalf("index %d: non-finite sample (%v, %v)", i, s.Time, s.Amplitude)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
