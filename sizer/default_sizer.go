package sizer

import . "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"
import "github.com/tinne26/bgrid/fract"

var _ Sizer = (*DefaultSizer)(nil)

// The default [Sizer]: vertical metrics straight from the font, with
// the line advance matching the line height. For more information
// about sizers, see the documentation of the [Sizer] interface.
type DefaultSizer struct {
	cachedAscent     fract.Unit
	cachedDescent    fract.Unit
	cachedLineHeight fract.Unit
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) Ascent(*Font, *Buffer, fract.Unit) fract.Unit {
	return self.cachedAscent
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) Descent(*Font, *Buffer, fract.Unit) fract.Unit {
	return self.cachedDescent
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) LineGap(*Font, *Buffer, fract.Unit) fract.Unit {
	return self.cachedLineHeight - self.cachedAscent - self.cachedDescent
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) LineHeight(*Font, *Buffer, fract.Unit) fract.Unit {
	return self.cachedLineHeight
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) LineAdvance(*Font, *Buffer, fract.Unit) fract.Unit {
	return self.cachedLineHeight
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) NotifyChange(font *Font, buffer *Buffer, size fract.Unit) {
	if font == nil || size == 0 {
		self.cachedAscent     = 0
		self.cachedDescent    = 0
		self.cachedLineHeight = 0
	} else {
		metrics, err := font.Metrics(buffer, fixed.Int26_6(size), hintingNone)
		if err != nil { panic("font.Metrics error: " + err.Error()) }
		self.cachedAscent     = fract.Unit(metrics.Ascent)
		self.cachedDescent    = fract.Unit(metrics.Descent)
		self.cachedLineHeight = fract.Unit(metrics.Height)
	}
}
