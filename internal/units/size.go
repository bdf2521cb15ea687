// Package units converts between human-entered size strings and byte counts.
package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	KiB uint64 = 1024
	MiB        = KiB * 1024
	GiB        = MiB * 1024
)

// ParseSize converts a size string such as "10KB" or "1.5MB" to bytes.
// The suffix is case-insensitive; a bare number is a byte count.
// Fractional results are truncated. ok is false when the numeric
// prefix does not parse.
func ParseSize(s string) (bytes uint64, ok bool) {
	s = strings.ToUpper(strings.TrimSpace(s))

	end := 0
	for end < len(s) && (isDigit(s[end]) || s[end] == '.') {
		end++
	}
	num, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}

	switch {
	case strings.HasSuffix(s, "KB"):
		num *= float64(KiB)
	case strings.HasSuffix(s, "MB"):
		num *= float64(MiB)
	case strings.HasSuffix(s, "GB"):
		num *= float64(GiB)
	}
	if num >= math.MaxUint64 {
		return math.MaxUint64, true
	}
	return uint64(num), true
}

// FormatSize renders a byte count with two decimals in the largest
// binary unit it reaches, or as plain bytes below 1 KiB.
func FormatSize(bytes uint64) string {
	switch {
	case bytes >= GiB:
		return fmt.Sprintf("%.2fGB", float64(bytes)/float64(GiB))
	case bytes >= MiB:
		return fmt.Sprintf("%.2fMB", float64(bytes)/float64(MiB))
	case bytes >= KiB:
		return fmt.Sprintf("%.2fKB", float64(bytes)/float64(KiB))
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
