package utils

import "strings"

// NormalizeCity trims and collapses whitespace in a city name so that
// "New  Delhi " and "New Delhi" hit the same route rows.
func NormalizeCity(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SafeFilenamePart strips characters that break Content-Disposition
// filenames.
func SafeFilenamePart(s string) string {
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", "\"", "", "'", "")
	out := replacer.Replace(strings.TrimSpace(s))
	if out == "" {
		return "x"
	}
	return out
}
