// Package window generates spectral tapers and the fixed-point kernels
// derived from them.
package window

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a taper.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
)

// Properties describes the spectral behaviour of a taper. ENBW is in bins,
// HighestSidelobe in dB relative to the main lobe.
type Properties struct {
	Name            string
	ENBW            float64
	HighestSidelobe float64
	CoherentGain    float64
}

var nominal = map[Type]Properties{
	TypeRectangular: {Name: "Rectangular", ENBW: 1, HighestSidelobe: -13.3, CoherentGain: 1},
	TypeHann:        {Name: "Hann", ENBW: 1.5, HighestSidelobe: -31.5, CoherentGain: 0.5},
	TypeHamming:     {Name: "Hamming", ENBW: 1.36, HighestSidelobe: -42.7, CoherentGain: 0.54},
	TypeBlackman:    {Name: "Blackman", ENBW: 1.73, HighestSidelobe: -58.1, CoherentGain: 0.42},
}

// cosineTerms holds a_k of w(x) = sum_k a_k cos(2*pi*k*x), x in [0, 1].
var cosineTerms = map[Type][]float64{
	TypeRectangular: {1},
	TypeHann:        {0.5, -0.5},
	TypeHamming:     {0.54, -0.46},
	TypeBlackman:    {0.42, -0.5, 0.08},
}

// Info returns the nominal properties of t. Unknown types report the zero
// value.
func Info(t Type) Properties {
	return nominal[t]
}

func (t Type) String() string {
	if p, ok := nominal[t]; ok {
		return p.Name
	}

	return fmt.Sprintf("Type(%d)", int(t))
}

// Option configures Generate.
type Option func(*options)

type options struct {
	periodic bool
}

// WithPeriodic drops the repeated end point so the taper tiles an FFT
// frame. The default is the symmetric form used for filter kernels.
func WithPeriodic() Option {
	return func(o *options) {
		o.periodic = true
	}
}

// Generate returns length coefficients of t, or nil for length <= 0.
// Unknown types fall back to rectangular.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	var o options

	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	terms, ok := cosineTerms[t]
	if !ok {
		terms = cosineTerms[TypeRectangular]
	}

	span := float64(length - 1)
	if o.periodic {
		span = float64(length)
	}

	out := make([]float64, length)
	for i := range out {
		x := 0.0
		if span > 0 {
			x = float64(i) / span
		}

		for k, a := range terms {
			out[i] += a * math.Cos(2*math.Pi*float64(k)*x)
		}
	}

	return out
}

// Multiply scales samples by coeffs element-wise in place.
func Multiply(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return fmt.Errorf("%w: %d samples, %d coefficients", ErrLengthMismatch, len(samples), len(coeffs))
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

// Measure computes the coherent gain and ENBW of concrete coefficients.
// Name and HighestSidelobe are left empty.
func Measure(coeffs []float64) (Properties, error) {
	if len(coeffs) == 0 {
		return Properties{}, ErrEmpty
	}

	var sum, sumSquares float64
	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}

	if sum == 0 {
		return Properties{}, ErrZeroGain
	}

	n := float64(len(coeffs))

	return Properties{
		ENBW:         n * sumSquares / (sum * sum),
		CoherentGain: sum / n,
	}, nil
}

// Quantize scales coefficients by scale and rounds them to the nearest
// integer (halves away from zero), producing a fixed-point kernel.
// round(512 * hamming(5)) gives {41, 276, 512, 276, 41}.
func Quantize(coeffs []float64, scale float64) []int32 {
	scaled := make([]float64, len(coeffs))
	vecmath.ScaleBlock(scaled, coeffs, scale)

	out := make([]int32, len(coeffs))
	for i, v := range scaled {
		out[i] = int32(math.Round(v))
	}

	return out
}
