package num

import (
	"testing"
)

func TestClamp(t *testing.T) {
	if v := Clamp(5, 1, 8); v != 5 {
		t.Error("got", v)
	}
	if v := Clamp(-1.5, 0, 1); v != 0 {
		t.Error("got", v)
	}
	if v := Clamp(12, 1, 8); v != 8 {
		t.Error("got", v)
	}
}

func TestSnap(t *testing.T) {
	tests := []struct{ in, step, lo, hi, expect int }{
		{12, 5, 0, 50, 10},
		{13, 5, 0, 50, 15},
		{73, 5, 0, 50, 50},
		{5, 10, 10, 90, 10},
		{44, 10, 10, 90, 40},
		{7, 1, 0, 5, 5},
	}
	for _, test := range tests {
		if v := Snap(test.in, test.step, test.lo, test.hi); v != test.expect {
			t.Error("snap", test.in, "step", test.step, "got", v, "expect", test.expect)
		}
	}
}

func TestMax(t *testing.T) {
	if v := Max(3, 9, 2); v != 9 {
		t.Error("got", v)
	}
	if v := Max[int](); v != 0 {
		t.Error("empty got", v)
	}
	if v := Max(-3.0, -1.0); v != -1 {
		t.Error("got", v)
	}
}

func TestSumAdjacent(t *testing.T) {
	if n := SumAdjacent([]int{2, 4, 2, 1}); n != 18 {
		t.Error("got", n, "expect", 18)
	}
	if n := SumAdjacent([]int{3}); n != 0 {
		t.Error("got", n)
	}
}

func TestLerp(t *testing.T) {
	if v := Lerp(10, 20, 0.25); v != 12.5 {
		t.Error("got", v)
	}
	if v := Uniform(0.5, -1, 1); v != 0 {
		t.Error("got", v)
	}
}
