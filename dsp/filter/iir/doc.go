// Package iir provides a general direct-form I recursive (IIR) filter
// runtime.
//
// A [Filter] evaluates the standard linear recurrence
//
//	a[0]*y[n] = b[0]*x[n] + b[1]*x[n-1] + ... + b[N]*x[n-N]
//	          - a[1]*y[n-1] - ... - a[N]*y[n-N]
//
// one sample at a time, keeping the last N inputs and outputs as internal
// state. Coefficients are an immutable [Coefficients] value installed with
// [Filter.Configure]; one value can configure any number of filter
// instances since every install copies the vectors.
//
// This package provides the processing runtime only. Coefficient design
// (bilinear transform, Butterworth/Chebyshev prototypes, etc.) is a
// separate concern; see dsp/filter/equalloudness for a fixed cascade built
// from pre-computed tables.
package iir
