package aoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMod(t *testing.T) {
	tests := []struct {
		a, n, want int
	}{
		{0, 100, 0},
		{99, 100, 99},
		{100, 100, 0},
		{-1, 100, 99},
		{-18, 100, 82},
		{-200, 100, 0},
		{255, 100, 55},
	}
	for _, tt := range tests {
		if got := Mod(tt.a, tt.n); got != tt.want {
			t.Errorf("Mod(%d, %d) = %d, want %d", tt.a, tt.n, got, tt.want)
		}
	}
}

func TestFilterInts(t *testing.T) {
	got := FilterInts("7", " 4", "x", "", "9 ", "1.5", "-3")
	if diff := cmp.Diff([]int{7, 4, 9, -3}, got); diff != "" {
		t.Errorf("FilterInts mismatch (-want +got):\n%s", diff)
	}
}

func TestIntPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Int(\"x\") did not panic")
		}
	}()
	Int("x")
}

func TestSum(t *testing.T) {
	if got := Sum(1, 2, 3); got != 6 {
		t.Errorf("Sum = %d, want 6", got)
	}
	if got := Sum[int](); got != 0 {
		t.Errorf("Sum() = %d, want 0", got)
	}
	if got := Ints("1", " 2 "); !cmp.Equal(got, []int{1, 2}) {
		t.Errorf("Ints = %v", got)
	}
}
