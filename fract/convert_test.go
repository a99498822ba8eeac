package fract

import "testing"

func TestFromInt(t *testing.T) {
	tests := []struct {
		in  int
		out Unit
	}{
		{0, 0}, {1, 64}, {-1, -64}, {4, 256}, {10, 640}, {-10, -640},
	}

	for i, test := range tests {
		out := FromInt(test.in)
		if out != test.out {
			str := "test #%d: in %d expected out %d, but got %d"
			t.Fatalf(str, i, test.in, test.out, out)
		}
	}
}

func TestFromFloat64(t *testing.T) {
	tests := []struct {
		in   float64
		up   Unit
		down Unit
	}{
		{in:  0.0, up:    0, down:    0},
		{in:  1.0, up:   64, down:   64},
		{in: -1.0, up:  -64, down:  -64},
		{in:  0.5, up:   32, down:   32},
		{in:  1.5, up:   96, down:   96},
		{in: 4.0078125, up: 257, down: 256}, // tie, 1/128 above 4 pixels
		{in: 4.0078126, up: 257, down: 257},
		{in: 4.0078124, up: 256, down: 256},
		{in: -4.0078125, up: -256, down: -257},
	}

	for i, test := range tests {
		up, down := FromFloat64(test.in), FromFloat64Down(test.in)
		if up != test.up || down != test.down {
			str := "test #%d: in %f expected outs %d and %d, but got %d and %d"
			t.Fatalf(str, i, test.in, test.up, test.down, up, down)
		}
	}
}
