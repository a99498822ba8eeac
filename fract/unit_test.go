package fract

import "testing"
import "math/rand"

func TestIsWhole(t *testing.T) {
	tests := []struct {
		in  Unit
		out bool
	}{
		{0, true}, {1, false}, {-1, false}, {-32, false}, {32, false},
		{64, true}, {-64, true}, {-128, true}, {128, true}, {-95, false},
		{18, false},
	}

	for i, test := range tests {
		out := test.in.IsWhole()
		if out != test.out {
			str := "test #%d: in %d (%f) expected out %t, but got %t"
			t.Fatalf(str, i, test.in, test.in.ToFloat64(), test.out, out)
		}
	}
}

func TestFract(t *testing.T) {
	tests := []struct {
		in  Unit
		out Unit
	}{
		{0, 0}, {32, 32}, {64, 0}, {31, 31}, {63, 63},
		{127, 63}, {65, 1}, {96, 32},
		{-32, -32}, {-1, -1}, {-31, -31}, {-33, -33},
		{-64, 0}, {-128, 0}, {-65, -1},
	}

	for i, test := range tests {
		out := test.in.Fract()
		if out != test.out {
			str := "test #%d: in %d (%f) expected out %d, but got %d"
			t.Fatalf(str, i, test.in, test.in.ToFloat64(), test.out, out)
		}
	}
}

func TestFloorCeil(t *testing.T) {
	tests := []struct {
		in    Unit
		floor Unit
		ceil  Unit
	}{
		{0, 0, 0}, {1, 0, 64}, {32, 0, 64}, {63, 0, 64}, {64, 64, 64},
		{65, 64, 128}, {-1, -64, 0}, {-63, -64, 0}, {-64, -64, -64},
		{-65, -128, -64}, {96, 64, 128}, {-96, -128, -64},
	}

	for i, test := range tests {
		floor, ceil := test.in.Floor(), test.in.Ceil()
		if floor != test.floor || ceil != test.ceil {
			str := "test #%d: in %d expected floor %d and ceil %d, but got %d and %d"
			t.Fatalf(str, i, test.in, test.floor, test.ceil, floor, ceil)
		}
	}
}

func TestCeilToMultiple(t *testing.T) {
	tests := []struct {
		in   Unit
		cell Unit
		out  Unit
	}{
		{in: 0, cell: 256, out: 0},
		{in: 1, cell: 256, out: 256},
		{in: 255, cell: 256, out: 256},
		{in: 256, cell: 256, out: 256},
		{in: 257, cell: 256, out: 512},
		{in: 640, cell: 256, out: 768}, // 10px up to 12px on a 4px grid
		{in: 1920, cell: 256, out: 2048}, // 30px up to 32px
		{in: 1536, cell: 256, out: 1536}, // 24px already aligned
		{in: 100, cell: 3, out: 102}, // fractional cells work too
		{in: -1, cell: 256, out: 0},
		{in: -255, cell: 256, out: 0},
		{in: -256, cell: 256, out: -256},
		{in: -257, cell: 256, out: -256},
	}

	for i, test := range tests {
		out := test.in.CeilToMultiple(test.cell)
		if out != test.out {
			str := "test #%d: in %d with cell %d expected out %d, but got %d"
			t.Fatalf(str, i, test.in, test.cell, test.out, out)
		}
	}

	// zero and negative cells must panic
	for _, cell := range []Unit{0, -1, -256} {
		func() {
			defer func(){ _ = recover() }()
			Unit(64).CeilToMultiple(cell)
			t.Fatalf("expected cell %d to panic", cell)
		}()
	}
}

func TestFloorToMultiple(t *testing.T) {
	tests := []struct {
		in   Unit
		cell Unit
		out  Unit
	}{
		{in: 0, cell: 256, out: 0},
		{in: 1, cell: 256, out: 0},
		{in: 255, cell: 256, out: 0},
		{in: 256, cell: 256, out: 256},
		{in: 511, cell: 256, out: 256},
		{in: -1, cell: 256, out: -256},
		{in: -256, cell: 256, out: -256},
		{in: -257, cell: 256, out: -512},
	}

	for i, test := range tests {
		out := test.in.FloorToMultiple(test.cell)
		if out != test.out {
			str := "test #%d: in %d with cell %d expected out %d, but got %d"
			t.Fatalf(str, i, test.in, test.cell, test.out, out)
		}
	}
}

func TestRemToMultiple(t *testing.T) {
	tests := []struct {
		in   Unit
		cell Unit
		out  Unit
	}{
		{in: 0, cell: 256, out: 0},
		{in: 2368, cell: 256, out: 192}, // 37px needs 3px more on a 4px grid
		{in: 2560, cell: 256, out: 0},   // 40px already aligned
		{in: 255, cell: 256, out: 1},
		{in: 257, cell: 256, out: 255},
	}

	for i, test := range tests {
		out := test.in.RemToMultiple(test.cell)
		if out != test.out {
			str := "test #%d: in %d with cell %d expected out %d, but got %d"
			t.Fatalf(str, i, test.in, test.cell, test.out, out)
		}
	}

	// consistency against CeilToMultiple on random values
	rng := rand.New(rand.NewSource(0x626772)) // deterministic, tests must not flake
	for i := 0; i < 1000; i++ {
		value := Unit(rng.Int31n(1 << 22))
		cell  := Unit(rng.Int31n(1024)) + 1
		rem   := value.RemToMultiple(cell)
		if rem < 0 || rem >= cell {
			str := "rand test #%d: in %d with cell %d got out-of-range rem %d"
			t.Fatalf(str, i, value, cell, rem)
		}
		if (value + rem) % cell != 0 {
			str := "rand test #%d: in %d with cell %d got rem %d, but %d %% %d != 0"
			t.Fatalf(str, i, value, cell, rem, value + rem, cell)
		}
		if value.CeilToMultiple(cell) != value + rem {
			str := "rand test #%d: in %d with cell %d, rem %d disagrees with CeilToMultiple %d"
			t.Fatalf(str, i, value, cell, rem, value.CeilToMultiple(cell))
		}
	}
}
