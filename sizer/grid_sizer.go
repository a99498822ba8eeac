package sizer

import . "golang.org/x/image/font/sfnt"
import "github.com/tinne26/bgrid/fract"

var _ Sizer = (*GridSizer)(nil)

// A [Sizer] that behaves like the default one, but with its line
// advance snapped up to the next multiple of a baseline grid cell.
// Plug it into your text renderer and every baseline will land on
// the grid, as long as the first one does (see bgrid's Aligner and
// Grid.AlignTopPadding for that part).
//
// The zero value has no cell set and behaves exactly like
// [DefaultSizer] until [GridSizer.SetCell]() is called.
type GridSizer struct {
	DefaultSizer
	cell fract.Unit
}

// Sets the grid cell the line advance snaps to. A zero cell disables
// snapping; negative cells will panic.
func (self *GridSizer) SetCell(cell fract.Unit) {
	if cell < 0 { panic("cell < 0") }
	self.cell = cell
}

// Like [GridSizer.SetCell], but expecting a float64 instead
// of a fract.Unit.
func (self *GridSizer) SetCellFloat(value float64) {
	self.SetCell(fract.FromFloat64(value))
}

// Returns the grid cell the line advance snaps to.
func (self *GridSizer) GetCell() fract.Unit {
	return self.cell
}

// Satisfies the [Sizer] interface.
func (self *GridSizer) LineAdvance(font *Font, buffer *Buffer, size fract.Unit) fract.Unit {
	advance := self.DefaultSizer.LineAdvance(font, buffer, size)
	if self.cell == 0 { return advance }
	return advance.CeilToMultiple(self.cell)
}
