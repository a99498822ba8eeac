package bgrid

import "github.com/tinne26/bgrid/fract"

// A Host is whatever actually owns the text block being aligned: a
// widget in a UI tree, a layout node, a text area in a game menu...
// [Aligner] drives the alignment process exclusively through this
// interface, so the grid math stays testable without any real UI.
//
// All methods are expected to be cheap, synchronous and free of side
// effects beyond their obvious ones: aligners are meant to be invoked
// inline from layout passes. Hosts whose padding writes re-enter the
// aligner are fine; see [Aligner.SetPadding]() for the re-entrancy
// guard.
//
// If you don't have a host of your own, [Block] provides a plain
// in-memory implementation.
type Host interface {
	// Returns the vertical metrics of the font currently used by
	// the host, at its current size. Queried fresh on every
	// recomputation, never cached by the aligner.
	Metrics() Metrics

	// Returns the current padding values.
	Padding() (left, top, right, bottom fract.Unit)

	// Replaces the current padding values. Writes received here come
	// from the aligner and must go to the host's own storage; don't
	// route them back through [Aligner.SetPadding]().
	SetPadding(left, top, right, bottom fract.Unit)

	// Replaces the additive line spacing: the extra distance inserted
	// between consecutive lines on top of the natural font height.
	// Negative values are legal and shrink the line advance.
	SetLineSpacing(extra fract.Unit)

	// Returns the size the host's layout pass measured for the text
	// block, padding included.
	MeasuredSize() (width, height fract.Unit)

	// Replaces the measured size reported by the host.
	SetMeasuredSize(width, height fract.Unit)
}
