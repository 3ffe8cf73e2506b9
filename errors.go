package smallbitset

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned when parsed text does not have exactly N characters.
	ErrInvalidLength = errors.New("invalid text length")
)

// SyntaxError reports a character other than '0' or '1' in parsed text.
type SyntaxError struct {
	Offset int
	Char   byte
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid character %q at offset %d, want '0' or '1'", e.Char, e.Offset)
}
