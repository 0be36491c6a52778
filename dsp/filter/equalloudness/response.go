package equalloudness

import (
	"math"
	"math/cmplx"
)

// Response computes the complex frequency response of the full cascade as
// the product of the stage responses.
func (f *Filter) Response(freqHz float64) complex128 {
	sr := float64(f.sampleRate)

	return f.yulewalk.Response(freqHz, sr) * f.butterworth.Response(freqHz, sr)
}

// MagnitudeDB returns the cascaded magnitude response in dB.
func (f *Filter) MagnitudeDB(freqHz float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz)))
}

// ImpulseResponse computes n samples of the cascade impulse response.
// Both stage histories are saved and restored, so a running stream is not
// disturbed.
func (f *Filter) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	savedYulewalk := f.yulewalk.State()
	savedButterworth := f.butterworth.State()
	f.Reset()

	ir := make([]float64, n)
	ir[0] = f.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = f.ProcessSample(0)
	}

	f.yulewalk.SetState(savedYulewalk)
	f.butterworth.SetState(savedButterworth)

	return ir
}
