package iir

import (
	"errors"
	"fmt"
)

// Errors returned when installing coefficients.
var (
	ErrCoefficientLength      = errors.New("iir: coefficient vector length must equal order+1")
	ErrZeroLeadingCoefficient = errors.New("iir: leading feedback coefficient must be nonzero")
)

func validateLengths(order, lenA, lenB int) error {
	if lenA != order+1 {
		return fmt.Errorf("%w: feedback has %d elements, want %d", ErrCoefficientLength, lenA, order+1)
	}
	if lenB != order+1 {
		return fmt.Errorf("%w: feedforward has %d elements, want %d", ErrCoefficientLength, lenB, order+1)
	}
	return nil
}
