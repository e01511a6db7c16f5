// Package stats computes descriptive statistics over couplet counts:
// arithmetic mean, median, minimum, maximum, and sample standard
// deviation (Bessel-corrected, n-1 denominator).
//
// The sample standard deviation is undefined for fewer than two
// observations, so Summarize rejects collections smaller than that; the
// caller treats this as a fatal precondition failure rather than papering
// over it.
package stats
