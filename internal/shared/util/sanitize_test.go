package util

import "testing"

func TestSanitizeDownloadName(t *testing.T) {
	cases := map[string]string{
		"Ada Lovelace":         "Ada Lovelace",
		"  Ada \t Lovelace \n": "Ada Lovelace",
		`Ada "The Countess"`:   "Ada The Countess",
		`back\slash`:           "backslash",
		"AC/DC":                "AC-DC",
		"bell\x07char":         "bellchar",
		"José Núñez":           "José Núñez",
		"":                     "",
		"\"\\":                 "",
		"line\r\nbreak":        "line break",
	}
	for in, want := range cases {
		if got := SanitizeDownloadName(in); got != want {
			t.Fatalf("SanitizeDownloadName(%q) = %q, want %q", in, got, want)
		}
	}
}
