// Package response measures the magnitude response of a streaming sample
// processor by taking the FFT of its impulse response.
//
// It works against anything with a per-sample process/reset contract
// (dsp/filter/iir.Filter, dsp/filter/equalloudness.Filter), so a measured
// response can be checked against an analytic one, or a filter whose
// coefficients came from an opaque table can be characterized without
// knowing how the table was derived.
//
// The measurement truncates the impulse response at the FFT size; for
// stable filters whose response has decayed below the precision floor by
// then, the result matches the analytic response closely.
package response
