// Package equalloudness provides the ReplayGain equal-loudness
// compensation filter.
//
// A [Filter] is a fixed two-stage cascade: a 10th-order "yulewalk" IIR
// filter approximating the inverse equal-loudness contour, followed by a
// 2nd-order Butterworth high-pass at 150 Hz. Together they pre-weight an
// audio stream so that subsequent loudness measurement tracks perceived
// rather than physical level, per the Original ReplayGain specification.
//
// Coefficients are embedded for the sample rates of the original
// specification table (see [SupportedRates]); a caller-supplied
// [ProfileTable] can extend or replace them. Coefficient design is not
// part of this package.
package equalloudness
