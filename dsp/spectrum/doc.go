// Package spectrum post-processes complex transform bins.
//
// It reads the output of fourier.FFT (or any other complex transform) and
// derives per-bin magnitude, power and phase, the strongest bin, and the
// group delay implied by a linear phase. Magnitude and power run on
// algo-vecmath kernels.
package spectrum
