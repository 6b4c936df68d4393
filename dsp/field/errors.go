package field

import "errors"

// Errors returned by field operations.
var (
	// ErrInvalidModulus is returned when a field is created with a modulus <= 1.
	ErrInvalidModulus = errors.New("field: modulus must be greater than 1")

	// ErrNotPrime is returned when an operation requires a prime modulus.
	ErrNotPrime = errors.New("field: modulus is not prime")

	// ErrFieldMismatch is returned when the operands belong to different fields.
	ErrFieldMismatch = errors.New("field: operands belong to different fields")

	// ErrNoField is returned when a zero-value Element is used.
	ErrNoField = errors.New("field: element has no field")

	// ErrNotInvertible is returned for the inverse of, or division by, an
	// element sharing a factor with the modulus (including zero).
	ErrNotInvertible = errors.New("field: element is not invertible")

	// ErrInvalidExponent is returned for negative exponents.
	ErrInvalidExponent = errors.New("field: negative exponent")

	// ErrNoRootOfUnity is returned when the field has no primitive root of the
	// requested order.
	ErrNoRootOfUnity = errors.New("field: no primitive root of unity of requested order")
)
