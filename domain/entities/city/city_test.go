package city

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		input string
		want  City
	}{
		{"chicago", Chicago},
		{"Chicago", Chicago},
		{"  NEW YORK CITY ", NewYorkCity},
		{"Washington", Washington},
	}
	for _, tc := range cases {
		got, err := Parse(tc.input)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("Parse(%q): got %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestParseUnknownCity(t *testing.T) {
	for _, input := range []string{"", "boston", "new york", "montreal"} {
		if _, err := Parse(input); !errors.Is(err, ErrUnknownCity) {
			t.Errorf("Parse(%q): got %v, want ErrUnknownCity", input, err)
		}
	}
}

func TestDisplayName(t *testing.T) {
	if got := NewYorkCity.DisplayName(); got != "New York City" {
		t.Errorf("DisplayName: got %q, want %q", got, "New York City")
	}
	if got := Chicago.DisplayName(); got != "Chicago" {
		t.Errorf("DisplayName: got %q, want %q", got, "Chicago")
	}
}
