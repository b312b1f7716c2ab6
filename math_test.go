package aoc

import "testing"

func TestProduct(t *testing.T) {
	tests := []struct {
		in   []int
		want int
	}{
		{nil, 1},
		{[]int{5}, 5},
		{[]int{5, 4, 2}, 40},
	}
	for _, tt := range tests {
		if got := Product(tt.in...); got != tt.want {
			t.Errorf("Product(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFloats(t *testing.T) {
	got := Floats("1", " -2.5", "3e2 ")
	want := []float64{1, -2.5, 300}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Floats()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
