package series

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned by ParseFormat for unrecognised names.
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects how indicator outputs are returned to callers.
type Format int

const (
	// FormatArray returns plain, warm-up trimmed slices.
	FormatArray Format = iota
	// FormatLabeled returns index-aware series whose labels are the tail of
	// the input index.
	FormatLabeled
)

func (f Format) String() string {
	switch f {
	case FormatArray:
		return "array"
	case FormatLabeled:
		return "labeled"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps a configuration string to a Format. The empty string
// selects FormatArray.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "array", "plain":
		return FormatArray, nil
	case "labeled", "labelled", "table":
		return FormatLabeled, nil
	}
	return FormatArray, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}
