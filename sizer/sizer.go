package sizer

import "golang.org/x/image/font"

import . "golang.org/x/image/font/sfnt"
import "github.com/tinne26/bgrid/fract"

const hintingNone = font.HintingNone

// When laying out text on a baseline grid, we need some information
// related to the "font metrics". For example, how far above the
// baseline the ascenders reach or how much we need to advance from
// one baseline to the next.
//
// Sizers are the interface that text renderers use to obtain that
// information, and implementing one is how bgrid plugs its grid
// snapping into renderers without owning any rendering itself.
//
// You rarely need to care about sizers, but they can be useful
// in the following cases:
//  - Snap line advances to a baseline grid (see [GridSizer]).
//  - Customize the line height for a font you don't control.
type Sizer interface {
	// Returns the ascent of the given font, at the given size,
	// as an absolute value.
	//
	// The given font and size must be consistent with the
	// latest NotifyChange() call.
	Ascent(*Font, *Buffer, fract.Unit) fract.Unit

	// Returns the descent of the given font, at the given size,
	// as an absolute value.
	//
	// The given font and size must be consistent with the
	// latest NotifyChange() call.
	Descent(*Font, *Buffer, fract.Unit) fract.Unit

	// Returns the line gap of the given font, at the given size,
	// as an absolute value.
	//
	// The given font and size must be consistent with the
	// latest NotifyChange() call.
	LineGap(*Font, *Buffer, fract.Unit) fract.Unit

	// Utility method equivalent to Ascent() + Descent() + LineGap().
	LineHeight(*Font, *Buffer, fract.Unit) fract.Unit

	// Returns the distance between consecutive baselines for the
	// given font at the given size. Unlike LineHeight(), the result
	// may include adjustments like baseline grid snapping.
	LineAdvance(*Font, *Buffer, fract.Unit) fract.Unit

	// Must be called to sync the state of the sizer whenever the
	// active font or size change, allowing the sizer to cache
	// whatever it may want to cache about them.
	NotifyChange(*Font, *Buffer, fract.Unit)
}
