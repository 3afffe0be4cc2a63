package testutil

import "testing"

// RequireWithin fails t if got differs from want by more than tol.
func RequireWithin(t *testing.T, name string, got, want, tol int32) {
	t.Helper()
	d := got - want
	if d < 0 {
		d = -d
	}
	if d > tol {
		t.Fatalf("%s=%d, want %d±%d", name, got, want, tol)
	}
}

// RequireStrictlyAscending fails t unless every element of v is greater
// than the one before it.
func RequireStrictlyAscending(t *testing.T, v []int) {
	t.Helper()
	for i := 1; i < len(v); i++ {
		if v[i] <= v[i-1] {
			t.Fatalf("index %d: %d not after %d in %v", i, v[i], v[i-1], v)
		}
	}
}
