// bgrid is a small package to align text to a vertical baseline grid,
// the typographic convention where every baseline sits on a fixed
// vertical rhythm (most commonly every 4 density independent pixels).
// It's designed to be used mainly with Ebitengine UIs, but the math is
// pure and the host layout system is abstracted behind an interface,
// so you can plug it anywhere.
//
// Common usage depends only on a couple types and a few functions...
//
// First, you create a [Grid] for your display:
//   grid := bgrid.NewGridFromDisplay()
//
// Then, you wrap whatever holds your text block behind the [Host]
// interface (or use the provided [Block]) and create an [Aligner]:
//   block := bgrid.NewBlock(metrics)
//   aligner := bgrid.New(block, grid)
//
// Finally, you configure the line height and measure:
//   aligner.SetLineHeightMultiplier(1.5)
//   aligner.Measure()
//
// After Measure(), the block's top padding places the first baseline
// on a grid line, each line advance is a whole number of grid cells,
// and the total height is a grid multiple, so whatever you lay out
// below the block starts on the grid too.
package bgrid
