package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ErrNilProcessor is returned by Measure when no processor is given.
var ErrNilProcessor = errors.New("response: processor must not be nil")

// Processor is any streaming filter that can be driven one sample at a
// time and restarted.
type Processor interface {
	ProcessSample(x float64) float64
	Reset()
}

// Config defines measurement settings.
type Config struct {
	SampleRate float64
	FFTSize    int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sensible defaults for audio-band measurements.
func DefaultConfig() Config {
	return Config{
		SampleRate: 48000,
		FFTSize:    4096,
	}
}

// WithSampleRate sets the sample rate used to label frequency bins.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithFFTSize sets the FFT length (and impulse-response truncation point).
// Must be a size the FFT planner accepts; powers of two are always safe.
func WithFFTSize(size int) Option {
	return func(cfg *Config) {
		if size > 1 {
			cfg.FFTSize = size
		}
	}
}

// Result holds the measured magnitude response for the non-negative
// frequency bins [0 .. FFTSize/2].
type Result struct {
	SampleRate  float64
	Frequencies []float64 // bin center frequencies in Hz
	MagnitudeDB []float64 // 20*log10 |H| per bin
}

// At returns the measured magnitude in dB at the bin nearest freqHz.
func (r Result) At(freqHz float64) float64 {
	if len(r.Frequencies) == 0 {
		return math.Inf(-1)
	}

	binWidth := r.SampleRate / float64(2*(len(r.Frequencies)-1))
	idx := int(math.Round(freqHz / binWidth))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(r.MagnitudeDB) {
		idx = len(r.MagnitudeDB) - 1
	}

	return r.MagnitudeDB[idx]
}

// Measure resets p, feeds it a unit impulse of FFTSize samples and
// returns the magnitude spectrum of the response. p is left in the state
// following the impulse; callers that need the prior stream state should
// snapshot it themselves.
func Measure(p Processor, opts ...Option) (Result, error) {
	if p == nil {
		return Result{}, ErrNilProcessor
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := cfg.FFTSize

	p.Reset()

	in := make([]complex128, n)
	in[0] = complex(p.ProcessSample(1), 0)
	for i := 1; i < n; i++ {
		in[i] = complex(p.ProcessSample(0), 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Result{}, fmt.Errorf("response: planning %d-point FFT: %w", n, err)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, fmt.Errorf("response: forward FFT: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := range bins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	res := Result{
		SampleRate:  cfg.SampleRate,
		Frequencies: make([]float64, bins),
		MagnitudeDB: make([]float64, bins),
	}
	for i := range bins {
		res.Frequencies[i] = float64(i) * cfg.SampleRate / float64(n)
		res.MagnitudeDB[i] = 20 * math.Log10(mag[i])
	}

	return res, nil
}
