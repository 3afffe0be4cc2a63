// Package fixed provides integer signal primitives with truncating
// arithmetic.
//
// Every transform writes its output front to back and reads only input taps
// at or after the position being written, so dst may alias src. Division
// truncates toward zero, matching fixed-point firmware implementations bit
// for bit.
package fixed
