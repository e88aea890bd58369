package hikes

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// parseDistance reads values such as "12,5 km" or "1 012,5 km".
func parseDistance(raw string) (float64, error) {
	s := strings.ReplaceAll(raw, " km", "")
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.ReplaceAll(s, " ", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a finite number")
	}
	return f, nil
}

// parseElevation reads values such as "+ 350 m" or "+ 1 200 m".
func parseElevation(raw string) (int, error) {
	s := strings.ReplaceAll(raw, "+ ", "")
	s = strings.ReplaceAll(s, " m", "")
	s = strings.ReplaceAll(s, " ", "")
	return strconv.Atoi(s)
}

// parseLines turns a list literal like "['RER A', 'RER B']" into "RER A, RER B".
func parseLines(raw string) string {
	r := []rune(raw)
	if len(r) < 2 {
		return ""
	}
	s := string(r[1 : len(r)-1])
	s = strings.ReplaceAll(s, "'", "")
	return strings.ReplaceAll(s, `"`, "")
}

// parseTravelTime reads a whole number of minutes. Decimal values ("45,0")
// are truncated toward zero.
func parseTravelTime(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}

	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a finite number")
	}
	return int(f), nil
}
