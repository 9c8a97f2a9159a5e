package units

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit symbols in ascending order. Each step is a factor of 1024.
var symbols = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}

// HumanBytes converts a raw byte-count string to a scaled human-readable
// form, e.g. "123456" -> "120.56KB". It returns "" for empty, zero, or
// non-numeric input so callers can suppress the parenthetical entirely
// instead of rendering a bogus value.
func HumanBytes(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return ""
	}

	v := float64(n)
	for _, sym := range symbols {
		if v < 1024 {
			return fmt.Sprintf("%.2f%s", v, sym)
		}
		v /= 1024
	}

	// Unreachable: a uint64 tops out below 1024 EB.
	return fmt.Sprintf("%.2f%s", v, symbols[len(symbols)-1])
}
