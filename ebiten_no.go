//go:build gtxt

package bgrid

// Creates a [Grid] with a [DefaultCellDips] cell at 1:1 scale.
//
// Without Ebitengine (gtxt version) there's no display to query, so
// the device scale factor is assumed to be 1. If you know the real
// scale, use [NewGridFromScale]() instead.
func NewGridFromDisplay() Grid {
	return NewGridFromScale(DefaultCellDips, 1.0)
}
