package fixedbitmaps

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when a bit index is not below the bitmap width.
	ErrIndexOutOfRange = errors.New("bit index out of range")

	// ErrDivisionByZero is returned by Div and DivValue when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidEncoding is returned when decoding a bitmap from text, binary or msgpack fails.
	ErrInvalidEncoding = errors.New("invalid bitmap encoding")
)

// IndexError reports an out-of-range bit index together with the bitmap width.
//
// errors.Is(err, ErrIndexOutOfRange) holds for every IndexError.
type IndexError struct {
	Index uint
	Width uint
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("bit index out of range: index %d, width %d", e.Index, e.Width)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// CheckIndex returns an *IndexError if index is not below width.
func CheckIndex(index, width uint) error {
	if index >= width {
		return &IndexError{Index: index, Width: width}
	}
	return nil
}

func encodingError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidEncoding, fmt.Sprintf(format, args...))
}
