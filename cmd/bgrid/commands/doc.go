// Package commands defines the bgrid CLI.
//
// Commands
//
//   - metrics   Print raw and grid aligned metrics for a font
//   - overhang  Compute the bottom addition that grid aligns a height
//
// The CLI exists mostly as a design aid: when deciding text sizes and
// paddings for a baseline grid layout, it answers "where does this
// font land on the grid" without running the game or UI.
package commands
