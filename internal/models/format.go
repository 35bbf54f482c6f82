package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned when a banlist format is neither TCG nor OCG.
var ErrUnknownFormat = errors.New("unknown banlist format")

// Format identifies a banlist region
type Format string

const (
	FormatTCG Format = "TCG"
	FormatOCG Format = "OCG"
)

// Formats lists every supported format in display order.
func Formats() []Format {
	return []Format{FormatTCG, FormatOCG}
}

// ParseFormat accepts "tcg"/"ocg" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(FormatTCG):
		return FormatTCG, nil
	case string(FormatOCG):
		return FormatOCG, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}
