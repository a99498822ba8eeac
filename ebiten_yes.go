//go:build !gtxt

package bgrid

import "github.com/hajimehoshi/ebiten/v2"

// Creates a [Grid] for the current display: a [DefaultCellDips] cell
// scaled by Ebitengine's device scale factor. This is the Go analog
// of deriving the grid from the display density, and the recommended
// constructor for games and UIs that honor high-DPI displays.
//
// Must only be called from the main goroutine, like
// [ebiten.DeviceScaleFactor]() itself.
func NewGridFromDisplay() Grid {
	return NewGridFromScale(DefaultCellDips, ebiten.DeviceScaleFactor())
}
