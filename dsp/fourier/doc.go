// Package fourier implements the complex discrete Fourier transform.
//
// [DFT] evaluates the transform directly from the n×n matrix
// M[j,k] = exp(-2πi·jk/n). [FFT] is a recursive radix-2 decimation in time
// that falls back to [DFT] once a sub-transform has at most
// [core.DefaultBaseSize] points; the threshold can be changed with
// [core.WithBaseSize]. [FFTInPlace] is the iterative bit-reversed variant
// and [IFFT] the scaled inverse.
//
// All entry points require a power-of-two length and return a freshly
// allocated slice, except FFTInPlace which overwrites its argument.
package fourier
