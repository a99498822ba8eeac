package bgrid

import "github.com/tinne26/bgrid/fract"

// This file contains the Aligner getters and setters. Actual
// operations live in aligner.go.

// Returns the aligner's grid.
func (self *Aligner) GetGrid() Grid { return self.grid }

// Returns the aligner's host.
func (self *Aligner) GetHost() Host { return self.host }

// Sets the desired line height, in pixels. Values of zero or below
// unset the hint, falling back to the line height multiplier. The
// hint takes effect immediately.
//
// The actual line height will be the hint rounded up to the next
// grid multiple, applied as additive line spacing on the host.
func (self *Aligner) SetLineHeightHint(lineHeight fract.Unit) {
	self.lineHeightHint = lineHeight
	self.Refresh()
}

// Like [Aligner.SetLineHeightHint](), but expecting a float64
// instead of a fract.Unit.
func (self *Aligner) SetLineHeightHintFloat(lineHeight float64) {
	self.SetLineHeightHint(fract.FromFloat64(lineHeight))
}

// Returns the desired line height, in pixels. Zero means the hint
// is unset and the line height multiplier applies instead.
func (self *Aligner) GetLineHeightHint() fract.Unit {
	if self.lineHeightHint <= 0 { return 0 }
	return self.lineHeightHint
}

// Sets the desired line height as a multiplier of the natural font
// height. The multiplier defaults to 1.0 and is ignored while a line
// height hint is set. The new value takes effect immediately.
//
// Multipliers below 1.0 are legal and may produce negative line
// spacing on the host, packing lines closer than the font height.
func (self *Aligner) SetLineHeightMultiplier(multiplier float64) {
	if multiplier <= 0 { panic("multiplier <= 0") }
	self.lineHeightMultiplier = multiplier
	self.Refresh()
}

// Returns the line height multiplier. See
// [Aligner.SetLineHeightMultiplier]().
func (self *Aligner) GetLineHeightMultiplier() float64 {
	return self.lineHeightMultiplier
}
