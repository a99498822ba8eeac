package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tinne26/bgrid"
	"github.com/tinne26/bgrid/fract"
)

var (
	cellDips float64
	scale    float64
)

func Execute() error {
	root := &cobra.Command{
		Use:   "bgrid",
		Short: "Baseline grid alignment calculator for fonts",
	}

	root.PersistentFlags().Float64Var(&cellDips, "cell", bgrid.DefaultCellDips, "grid cell size in density independent pixels")
	root.PersistentFlags().Float64Var(&scale, "scale", 1, "display scale factor")

	root.AddCommand(metricsCmd(), overhangCmd())
	return root.Execute()
}

// builds the grid from the persistent flags, validating them as user
// input (the library itself would panic instead)
func grid() (bgrid.Grid, error) {
	cell := fract.FromFloat64(cellDips * scale)
	if cell <= 0 {
		return bgrid.Grid{}, fmt.Errorf("grid cell must be positive, got %gdp at scale %g", cellDips, scale)
	}
	return bgrid.NewGrid(cell), nil
}
