package fourier_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ntt/dsp/fourier"
)

func ExampleFFT() {
	y, err := fourier.FFT([]complex128{1, 2, 3, 4, 0, 0, 0, 0})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.1f %.1f\n", real(y[0]), math.Abs(imag(y[0])))
	fmt.Printf("%.1f %.1f\n", real(y[4]), math.Abs(imag(y[4])))
	// Output:
	// 10.0 0.0
	// -2.0 0.0
}

func ExampleIFFT() {
	x, err := fourier.IFFT([]complex128{4, 0, 0, 0})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, v := range x {
		fmt.Printf("%.1f ", real(v))
	}
	fmt.Println()
	// Output:
	// 1.0 1.0 1.0 1.0
}
