package iir

import (
	"math"
	"math/cmplx"
)

// Response computes the complex frequency response H(e^{-jw}) at the given
// frequency (Hz) and sample rate (Hz) as the ratio of the numerator and
// denominator polynomials evaluated on the unit circle.
func (c Coefficients) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate

	var num, den complex128
	for k := range c.B {
		num += complex(c.B[k], 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	for k := range c.A {
		den += complex(c.A[k], 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}

	return num / den
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (c Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// Phase returns the phase response in radians at the given frequency,
// in [-pi, pi].
func (c Coefficients) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}

// Response computes the complex frequency response of the installed
// coefficient set.
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	return Coefficients{A: f.a, B: f.b}.Response(freqHz, sampleRate)
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return Coefficients{A: f.a, B: f.b}.MagnitudeDB(freqHz, sampleRate)
}

// ImpulseResponse computes n samples of the impulse response h[n] by
// feeding an impulse through the filter. The history is saved and
// restored, so this method does not disturb a running stream.
func (f *Filter) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	saved := f.State()
	f.Reset()

	ir := make([]float64, n)
	ir[0] = f.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = f.ProcessSample(0)
	}

	f.SetState(saved)

	return ir
}
