package equalloudness

import (
	"fmt"

	"github.com/cwbudde/algo-replaygain/dsp/filter/iir"
)

// Filter is the two-stage equal-loudness cascade. Each stage owns its own
// history; the only coupling between them is the sample value handed from
// the yulewalk stage to the high-pass stage. Instances are cheap to
// construct and not safe for concurrent use; use one per stream.
type Filter struct {
	sampleRate  int
	yulewalk    *iir.Filter
	butterworth *iir.Filter
}

// config holds options for New.
type config struct {
	profiles ProfileTable
}

// Option configures a Filter.
type Option func(*config)

// WithProfileTable replaces the built-in coefficient table with a
// caller-supplied one. The table is only read, never written.
func WithProfileTable(t ProfileTable) Option {
	return func(cfg *config) {
		if t != nil {
			cfg.profiles = t
		}
	}
}

// New builds an equal-loudness filter for the given sample rate. The rate
// is looked up in the active profile table; if absent, New fails with an
// [*UnsupportedRateError] listing the table's rates. This is the only
// validation the cascade performs: a present profile is trusted.
func New(sampleRate int, opts ...Option) (*Filter, error) {
	cfg := config{profiles: builtinProfiles}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	profile, ok := cfg.profiles[sampleRate]
	if !ok {
		return nil, &UnsupportedRateError{
			Rate:      sampleRate,
			Supported: cfg.profiles.Rates(),
		}
	}

	yulewalk, err := iir.NewWithCoefficients(profile.Yulewalk)
	if err != nil {
		return nil, fmt.Errorf("equalloudness: yulewalk stage for %d Hz: %w", sampleRate, err)
	}

	butterworth, err := iir.NewWithCoefficients(profile.Butterworth)
	if err != nil {
		return nil, fmt.Errorf("equalloudness: butterworth stage for %d Hz: %w", sampleRate, err)
	}

	return &Filter{
		sampleRate:  sampleRate,
		yulewalk:    yulewalk,
		butterworth: butterworth,
	}, nil
}

// ProcessSample filters one sample through both stages and returns the
// high-pass output. Stage order is significant: the high-pass runs second
// so the cumulative response matches the ReplayGain equal-loudness curve.
func (f *Filter) ProcessSample(x float64) float64 {
	return f.butterworth.ProcessSample(f.yulewalk.ProcessSample(x))
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset clears both stage histories independently, each sized by its own
// order. Coefficients are untouched; the filter behaves as if starting an
// unrelated stream.
func (f *Filter) Reset() {
	f.yulewalk.Reset()
	f.butterworth.Reset()
}

// SampleRate returns the sample rate the cascade was built for.
func (f *Filter) SampleRate() int {
	return f.sampleRate
}
