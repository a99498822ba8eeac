package fract

// Fixed point type to represent the fractional pixel values used for
// baseline grid alignment.
//
// 26 bits represent the integer part of the value, while the remaining
// 6 bits represent the decimal part. For an intuitive understanding, if
// you can understand that var ms Millis = 1000 is storing the equivalent
// to 1 second, with Unit, instead of thousandths of a value, you are
// storing 64ths. So, var pixels Unit = 64 would mean 1 pixel, and 96
// would be 1.5 pixels.
//
// The internal representation is compatible with [fixed.Int26_6].
//
// [fixed.Int26_6]: golang.org/x/image/math/fixed.Int26_6
type Unit int32

// Returns whether the Unit is a whole number or if it
// has a fractional part.
func (self Unit) IsWhole() bool {
	return self & 0x3F == 0
}

// Returns only the fractional part of the Unit.
func (self Unit) Fract() Unit {
	return self % 64
}

// Fixed point multiplication, rounding up in case of ties.
func (self Unit) Mul(multiplier Unit) Unit {
	mx64 := int64(self)*int64(multiplier)
	return Unit((mx64 + 32) >> 6)
}

func (self Unit) ToFloat64() float64 {
	return float64(self)/64.0
}

// Defaults to [Unit.ToIntHalfUp](). For the fastest possible
// conversion to int, use [Unit.ToIntFloor]() instead.
func (self Unit) ToInt() int {
	return self.ToIntHalfUp()
}

// Fastest conversion from Unit to int.
func (self Unit) ToIntFloor() int {
	return (int(self) +  0) >> 6
}

func (self Unit) ToIntCeil() int {
	return (int(self) + 63) >> 6
}

func (self Unit) ToIntHalfUp() int {
	return (int(self) + 32) >> 6
}

func (self Unit) Floor() Unit {
	return self & ^0x3F
}

func (self Unit) Ceil() Unit {
	return (self + 0x3F).Floor()
}

func (self Unit) HalfUp() Unit {
	return (self + 32).Floor()
}

// Rounds the Unit up to the next multiple of cell. Units that
// already are a multiple of cell are returned unchanged. The cell
// must be strictly positive or the method will panic.
func (self Unit) CeilToMultiple(cell Unit) Unit {
	if cell <= 0 { panic("cell <= 0") }

	mod := self % cell
	if mod == 0 { return self }
	if self > 0 { return self + (cell - mod) }
	return self - mod // negative mod, ceil towards zero
}

// Rounds the Unit down to the previous multiple of cell. Units that
// already are a multiple of cell are returned unchanged. The cell
// must be strictly positive or the method will panic.
func (self Unit) FloorToMultiple(cell Unit) Unit {
	if cell <= 0 { panic("cell <= 0") }

	mod := self % cell
	if mod == 0 { return self }
	if self > 0 { return self - mod }
	return self - mod - cell
}

// Returns the distance between the Unit and the next multiple of
// cell, also known as the grid overhang. The result is always in
// [0, cell), with zero meaning the Unit is already a multiple of
// cell. The cell must be strictly positive or the method will panic.
//
// RemToMultiple is equivalent to self.CeilToMultiple(cell) - self.
func (self Unit) RemToMultiple(cell Unit) Unit {
	return self.CeilToMultiple(cell) - self
}
