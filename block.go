package bgrid

import "github.com/tinne26/bgrid/fract"

var _ Host = (*Block)(nil)

// Block is a plain in-memory [Host]: a rectangle of text lines with
// paddings, described only by its font metrics, line count and content
// width. It's enough to drive an [Aligner] in tests, tools or immediate
// mode UIs where no widget tree exists.
//
// The zero value is usable, but you typically want [NewBlock]().
type Block struct {
	metrics Metrics
	padLeft   fract.Unit
	padTop    fract.Unit
	padRight  fract.Unit
	padBottom fract.Unit
	lineSpacing  fract.Unit
	lines        int
	contentWidth fract.Unit

	// measured size override, set through SetMeasuredSize and
	// invalidated whenever a layout input changes
	overrideWidth  fract.Unit
	overrideHeight fract.Unit
	hasOverride    bool
}

// Creates a [Block] with the given font metrics and no content.
func NewBlock(metrics Metrics) *Block {
	return &Block{ metrics: metrics }
}

// Replaces the block's font metrics, as if the font or its size
// had changed.
func (self *Block) SetMetrics(metrics Metrics) {
	self.metrics = metrics
	self.hasOverride = false
}

// Satisfies the [Host] interface.
func (self *Block) Metrics() Metrics { return self.metrics }

// Sets the block's natural content: the number of text lines and
// the content width, without paddings.
func (self *Block) SetContent(lines int, width fract.Unit) {
	if lines < 0 { panic("lines < 0") }
	self.lines = lines
	self.contentWidth = width
	self.hasOverride = false
}

// Satisfies the [Host] interface.
func (self *Block) Padding() (left, top, right, bottom fract.Unit) {
	return self.padLeft, self.padTop, self.padRight, self.padBottom
}

// Satisfies the [Host] interface.
func (self *Block) SetPadding(left, top, right, bottom fract.Unit) {
	self.padLeft, self.padTop = left, top
	self.padRight, self.padBottom = right, bottom
	self.hasOverride = false
}

// Satisfies the [Host] interface.
func (self *Block) SetLineSpacing(extra fract.Unit) {
	self.lineSpacing = extra
	self.hasOverride = false
}

// Returns the current additive line spacing.
func (self *Block) LineSpacing() fract.Unit { return self.lineSpacing }

// Satisfies the [Host] interface. Unless a measured size has been
// forced through [Block.SetMeasuredSize](), the result is computed
// from the block's content, paddings and line spacing, with every
// line advancing the natural font height plus the line spacing.
func (self *Block) MeasuredSize() (width, height fract.Unit) {
	if self.hasOverride { return self.overrideWidth, self.overrideHeight }
	width  = self.padLeft + self.contentWidth + self.padRight
	height = self.padTop + self.padBottom
	if self.lines > 0 {
		lineHeight := self.metrics.Height() + self.lineSpacing
		height += lineHeight*fract.Unit(self.lines)
	}
	return width, height
}

// Satisfies the [Host] interface. The forced size stays in place
// until a layout input (metrics, content, padding, spacing) changes.
func (self *Block) SetMeasuredSize(width, height fract.Unit) {
	self.overrideWidth, self.overrideHeight = width, height
	self.hasOverride = true
}
