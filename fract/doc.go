// Font metrics are rarely whole pixel values: ascents, descents and
// line gaps are scaled from the font's design units and almost always
// end up with a fractional part. Doing baseline grid math with plain
// ints, then, either loses precision or sprinkles ad hoc roundings all
// over the code — and that's what brings us to this subpackage.
//
// The fract subpackage defines a [Unit] type representing a 26.6
// [fixed point] value and provides the conversion, rounding and grid
// snapping operations that bgrid needs. The internal representation
// is compatible with [golang.org/x/image/math/fixed], so metrics
// obtained through sfnt can be casted directly.
//
// [fixed point]: https://en.wikipedia.org/wiki/Fixed-point_arithmetic
package fract
