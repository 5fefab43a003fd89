package currency

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{"thousands grouping", 1000, "$1.000"},
		{"millions grouping", 1234567, "$1.234.567"},
		{"below grouping threshold", 999, "$999"},
		{"zero", 0, "$0"},
		{"float rounds to nearest peso", 2500.4, "$2.500"},
		{"float rounds up", 2500.6, "$2.501"},
		{"negative keeps sign before symbol", -1000, "-$1.000"},
		{"int64", int64(15000), "$15.000"},
		{"numeric string", "1000", "$1.000"},
		{"empty string", "", ""},
		{"non-numeric string", "abc", ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.in); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
