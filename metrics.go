package bgrid

import "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

import "github.com/tinne26/bgrid/fract"

const hintingNone = font.HintingNone

// Metrics hold the vertical font metrics relevant for baseline grid
// alignment. All values are absolute magnitudes: some conventions
// make the ascent negative, but whoever creates the Metrics must
// normalize the signs (see [MetricsOfFont]()).
type Metrics struct {
	Ascent  fract.Unit // height above the baseline
	Descent fract.Unit // depth below the baseline
	LineGap fract.Unit // extra separation between consecutive lines
}

// Returns Ascent + Descent + LineGap, the natural height of a line
// of text before any baseline grid adjustment.
func (self Metrics) Height() fract.Unit {
	return self.Ascent + self.Descent + self.LineGap
}

// Obtains the [Metrics] of the given font at the given size. This is
// the bridge between sfnt fonts and bgrid: query the metrics whenever
// the font or the size change and hand them to the [Host].
//
// The buffer can be nil. The function will panic if the font can't
// provide metrics, which is virtually impossible for well-formed
// fonts.
func MetricsOfFont(sfntFont *sfnt.Font, buffer *sfnt.Buffer, size fract.Unit) Metrics {
	if buffer == nil { buffer = &sfnt.Buffer{} }
	metrics, err := sfntFont.Metrics(buffer, fixed.Int26_6(size), hintingNone)
	if err != nil { panic("font.Metrics error: " + err.Error()) }
	return Metrics {
		Ascent:  fract.Unit(metrics.Ascent),
		Descent: fract.Unit(metrics.Descent),
		LineGap: fract.Unit(metrics.Height - metrics.Ascent - metrics.Descent),
	}
}
