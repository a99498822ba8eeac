package sizer

import "testing"

import "github.com/tinne26/bgrid/fract"

func TestGridSizerLineAdvance(t *testing.T) {
	tests := []struct {
		lineHeight fract.Unit
		cell       fract.Unit
		out        fract.Unit
	}{
		{lineHeight: 1920, cell: 256, out: 2048}, // 30px up to 32px
		{lineHeight: 1536, cell: 256, out: 1536}, // 24px already aligned
		{lineHeight: 1920, cell: 0, out: 1920},   // no cell, no snapping
		{lineHeight: 1000, cell: 384, out: 1152},
		{lineHeight: 0, cell: 256, out: 0},
	}

	for i, test := range tests {
		gridSizer := GridSizer{}
		gridSizer.cachedLineHeight = test.lineHeight
		gridSizer.SetCell(test.cell)
		out := gridSizer.LineAdvance(nil, nil, 0)
		if out != test.out {
			str := "test #%d: line height %d with cell %d expected advance %d, but got %d"
			t.Fatalf(str, i, test.lineHeight, test.cell, test.out, out)
		}
	}

	// negative cells are programmer errors
	func() {
		defer func(){ _ = recover() }()
		gridSizer := GridSizer{}
		gridSizer.SetCell(-1)
		t.Fatal("expected negative cell to panic")
	}()
}

func TestGridSizerPassthrough(t *testing.T) {
	// ascent, descent and line gap must come through unsnapped
	gridSizer := GridSizer{}
	gridSizer.cachedAscent = 640
	gridSizer.cachedDescent = 256
	gridSizer.cachedLineHeight = 1000
	gridSizer.SetCell(256)

	if gridSizer.Ascent(nil, nil, 0) != 640 {
		t.Fatal("expected ascent to pass through unsnapped")
	}
	if gridSizer.Descent(nil, nil, 0) != 256 {
		t.Fatal("expected descent to pass through unsnapped")
	}
	if gridSizer.LineGap(nil, nil, 0) != 104 {
		t.Fatal("expected line gap to pass through unsnapped")
	}
	if gridSizer.LineHeight(nil, nil, 0) != 1000 {
		t.Fatal("expected line height to pass through unsnapped")
	}
}

func TestSizerNotifyNilFont(t *testing.T) {
	// a nil font must clear any cached metrics
	gridSizer := GridSizer{}
	gridSizer.cachedLineHeight = 1000
	gridSizer.NotifyChange(nil, nil, 0)
	if gridSizer.LineAdvance(nil, nil, 0) != 0 {
		t.Fatal("expected cleared metrics after NotifyChange with nil font")
	}
}
