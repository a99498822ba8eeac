package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/image/font/sfnt"

	"github.com/tinne26/bgrid"
	"github.com/tinne26/bgrid/fract"
	"github.com/tinne26/bgrid/sizer"
)

func metricsCmd() *cobra.Command {
	var fontPath string
	var size float64
	var padding float64
	var lineHeight float64
	var multiplier float64

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Print raw and grid aligned metrics for a font",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grid()
			if err != nil {
				return err
			}
			if size <= 0 {
				return fmt.Errorf("font size must be positive, got %g", size)
			}
			if multiplier <= 0 {
				return fmt.Errorf("line height multiplier must be positive, got %g", multiplier)
			}
			if padding < 0 {
				return fmt.Errorf("padding can't be negative, got %g", padding)
			}

			data, err := os.ReadFile(fontPath)
			if err != nil {
				return err
			}
			sfntFont, err := sfnt.Parse(data)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", fontPath, err)
			}

			sizePx := fract.FromFloat64(size * scale)
			metrics := bgrid.MetricsOfFont(sfntFont, nil, sizePx)

			block := bgrid.NewBlock(metrics)
			block.SetPadding(0, fract.FromFloat64(padding*scale), 0, 0)
			aligner := bgrid.New(block, g)
			if lineHeight > 0 {
				aligner.SetLineHeightHintFloat(lineHeight * scale)
			} else {
				aligner.SetLineHeightMultiplier(multiplier)
			}
			aligner.Refresh()
			_, top, _, _ := block.Padding()

			gridSizer := sizer.GridSizer{}
			gridSizer.NotifyChange(sfntFont, nil, sizePx)
			gridSizer.SetCell(g.Cell())
			advance := gridSizer.LineAdvance(sfntFont, nil, sizePx)

			fmt.Printf("grid cell:        %gpx\n", g.Cell().ToFloat64())
			fmt.Printf("ascent:           %gpx\n", metrics.Ascent.ToFloat64())
			fmt.Printf("descent:          %gpx\n", metrics.Descent.ToFloat64())
			fmt.Printf("line gap:         %gpx\n", metrics.LineGap.ToFloat64())
			fmt.Printf("font height:      %gpx\n", metrics.Height().ToFloat64())
			fmt.Printf("top padding:      %gpx (from %gpx)\n", top.ToFloat64(), padding*scale)
			fmt.Printf("line spacing:     %gpx\n", block.LineSpacing().ToFloat64())
			fmt.Printf("line advance:     %gpx (%d cells)\n", advance.ToFloat64(), advance/g.Cell())
			return nil
		},
	}

	cmd.Flags().StringVarP(&fontPath, "font", "f", "", "path to a .ttf or .otf font file")
	cmd.Flags().Float64VarP(&size, "size", "s", 16, "font size in density independent pixels")
	cmd.Flags().Float64VarP(&padding, "padding", "p", 0, "unaligned top padding in density independent pixels")
	cmd.Flags().Float64Var(&lineHeight, "line-height", 0, "desired line height in density independent pixels (0 = use multiplier)")
	cmd.Flags().Float64Var(&multiplier, "multiplier", 1, "line height multiplier of the font height")
	_ = cmd.MarkFlagRequired("font")
	return cmd
}
