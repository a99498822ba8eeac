package bgrid

import "github.com/tinne26/bgrid/fract"

// The separation between baseline grid lines used by most design
// systems, in density independent pixels. See [NewGridFromScale]().
const DefaultCellDips = 4

// A Grid represents a vertical baseline grid: an invisible set of
// horizontal lines, one every cell pixels, that text baselines and
// block heights should align to.
//
// Grids are immutable and their three operations are pure functions,
// so a single Grid can be shared freely. The stateful part of the
// alignment process (hints, padding caches, the measure pass) lives
// in [Aligner].
type Grid struct {
	cell fract.Unit
}

// Creates a Grid with the given cell size. The cell must be strictly
// positive or the function will panic: a zero or negative cell can
// only come from a programming error, as real display densities can't
// produce one.
func NewGrid(cell fract.Unit) Grid {
	if cell <= 0 { panic("cell <= 0") }
	return Grid{ cell: cell }
}

// Creates a Grid from a cell size expressed in density independent
// pixels and a display scaling factor, like the one returned by
// Ebitengine's DeviceScaleFactor(). For the conventional 4dp grid,
// pass [DefaultCellDips].
func NewGridFromScale(dips int, scale float64) Grid {
	return NewGrid(fract.FromFloat64(float64(dips)*scale))
}

// Returns the separation between grid lines, in pixels.
func (self Grid) Cell() fract.Unit { return self.cell }

// Given an unaligned top padding and a font ascent (as an absolute
// magnitude), returns the smallest padding >= the given one that
// makes the first baseline fall on a grid line. In other words:
// the result plus the ascent is always an exact multiple of the
// grid cell.
//
// The ascent is ceiled to a whole pixel before aligning, consistent
// with hosts that operate on integer font metrics. Paddings that
// already align the baseline are returned unchanged.
func (self Grid) AlignTopPadding(padding, ascent fract.Unit) fract.Unit {
	ascent = ascent.Ceil()
	return (padding + ascent).CeilToMultiple(self.cell) - ascent
}

// Returns the given height rounded up to the next multiple of the
// grid cell. Heights that are already a grid multiple are returned
// unchanged.
func (self Grid) AlignHeight(height fract.Unit) fract.Unit {
	return height.CeilToMultiple(self.cell)
}

// Returns how much the given height overhangs the baseline grid,
// which is the amount that must be added to reach the next grid
// multiple. The result is always in [0, cell), with zero meaning
// the height is already a grid multiple.
func (self Grid) Overhang(height fract.Unit) fract.Unit {
	return height.RemToMultiple(self.cell)
}
