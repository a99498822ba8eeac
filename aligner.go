package bgrid

import "github.com/tinne26/bgrid/fract"

// The Aligner is the main type for baseline grid alignment provided
// by bgrid.
//
// Aligners bind a [Host] to a [Grid] and keep the mutable state that
// the alignment process needs: the line height hints and the cache of
// the last top padding requested by the user, before grid alignment.
//
// Basic usage goes like this:
//  - Create and store an aligner for your text block.
//  - Adjust the line height hints as desired.
//  - Call [Aligner.Measure]() from your layout pass... and keep
//    repeating.
//
// Aligners are not safe for concurrent use, and they are designed to
// run inline inside layout passes: every operation is a handful of
// fixed point computations, with no allocations, blocking or I/O.
type Aligner struct {
	host Host
	grid Grid
	lineHeightHint fract.Unit // zero or negative means unset
	lineHeightMultiplier float64
	unalignedTopPadding fract.Unit
}

// Creates an [Aligner] for the given host and grid. The host's
// current top padding is captured as the "unaligned" padding, the
// value all future grid alignments are computed from.
func New(host Host, grid Grid) *Aligner {
	_, top, _, _ := host.Padding()
	return &Aligner {
		host: host,
		grid: grid,
		lineHeightMultiplier: 1.0,
		unalignedTopPadding: top,
	}
}

// Requests a new padding for the host. The left, right and bottom
// values are forwarded untouched; the top value is remembered as the
// new unaligned padding and then grid-aligned so the first baseline
// stays on the grid.
//
// Recomputation is only triggered when the top value actually
// changes, and grid alignment is idempotent, so hosts that relayout
// synchronously in response to padding writes settle after a single
// extra pass instead of recursing forever.
func (self *Aligner) SetPadding(left, top, right, bottom fract.Unit) {
	self.host.SetPadding(left, top, right, bottom)
	if self.unalignedTopPadding != top {
		self.unalignedTopPadding = top
		self.Refresh()
	}
}

// Recomputes the grid-aligned top padding and line spacing and writes
// them through the host. You rarely need to call Refresh directly:
// [Aligner.Measure]() and the setters already do, but it can be
// necessary if the host's font or size change behind the aligner's
// back.
func (self *Aligner) Refresh() {
	metrics := self.host.Metrics()

	// ensure that the first line's baseline sits on the grid; the
	// write is skipped when the padding is already aligned so hosts
	// that relayout on padding changes don't re-enter forever
	left, top, right, bottom := self.host.Padding()
	topPadding := self.grid.AlignTopPadding(self.unalignedTopPadding, metrics.Ascent)
	if topPadding != top {
		self.host.SetPadding(left, topPadding, right, bottom)
	}

	// ensure that the line advance is a whole number of grid cells
	fontHeight := metrics.Height()
	desiredHeight := self.lineHeightHint
	if desiredHeight <= 0 {
		desiredHeight = fract.FromFloat64(self.lineHeightMultiplier*fontHeight.ToFloat64())
	}
	self.host.SetLineSpacing(self.grid.AlignHeight(desiredHeight) - fontHeight)
}

// Runs a full measure pass: refreshes padding and line spacing, asks
// the host for its measured size and, if the height overhangs the
// grid, grows the bottom padding and the measured height up to the
// next grid multiple. This way whatever gets laid out below the host
// starts on the grid too.
//
// Call this from your host's measurement callback, after the natural
// content size is known.
func (self *Aligner) Measure() {
	self.Refresh()
	width, height := self.host.MeasuredSize()
	overhang := self.grid.Overhang(height)
	if overhang == 0 { return }
	left, top, right, bottom := self.host.Padding()
	self.host.SetPadding(left, top, right, bottom + overhang)
	self.host.SetMeasuredSize(width, height + overhang)
}
