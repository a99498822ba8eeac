package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tinne26/bgrid/fract"
)

func overhangCmd() *cobra.Command {
	var height float64

	cmd := &cobra.Command{
		Use:   "overhang",
		Short: "Compute the bottom addition that grid aligns a height",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grid()
			if err != nil {
				return err
			}
			if height < 0 {
				return fmt.Errorf("height can't be negative, got %g", height)
			}

			measured := fract.FromFloat64(height * scale)
			addition := g.Overhang(measured)
			fmt.Printf("grid cell:      %gpx\n", g.Cell().ToFloat64())
			fmt.Printf("measured:       %gpx\n", measured.ToFloat64())
			fmt.Printf("overhang:       %gpx\n", addition.ToFloat64())
			fmt.Printf("aligned height: %gpx\n", (measured + addition).ToFloat64())
			return nil
		},
	}

	cmd.Flags().Float64Var(&height, "height", 0, "measured height in density independent pixels")
	_ = cmd.MarkFlagRequired("height")
	return cmd
}
