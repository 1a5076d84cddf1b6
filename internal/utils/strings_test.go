package utils

import "testing"

func TestNormalizeCity(t *testing.T) {
	cases := map[string]string{
		"  New  Delhi ":  "New Delhi",
		"Pune":           "Pune",
		"":               "",
		"\tMumbai\n":     "Mumbai",
		"San  Francisco": "San Francisco",
	}
	for in, want := range cases {
		if got := NormalizeCity(in); got != want {
			t.Fatalf("NormalizeCity(%q): got %q want %q", in, got, want)
		}
	}
}

func TestValidTravelDate(t *testing.T) {
	if !ValidTravelDate("2026-09-10") {
		t.Fatalf("well-formed date rejected")
	}
	for _, bad := range []string{"", "10-09-2026", "2026/09/10", "tomorrow"} {
		if ValidTravelDate(bad) {
			t.Fatalf("malformed date accepted: %q", bad)
		}
	}
}

func TestSafeFilenamePart(t *testing.T) {
	if got := SafeFilenamePart(`KA 01/B`); got != "KA_01-B" {
		t.Fatalf("got %q", got)
	}
	if got := SafeFilenamePart("  "); got != "x" {
		t.Fatalf("empty input should fall back, got %q", got)
	}
}
