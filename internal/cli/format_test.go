package cli

import "testing"

func TestFormatValues(t *testing.T) {
	values := []any{int32(1), int32(2), int32(3)}
	tests := []struct {
		format string
		values []any
		want   string
	}{
		{"space", values, "1 2 3"},
		{"comma", values, "1,2,3"},
		{"newline", values, "1\n2\n3"},
		{"json", values, "[1,2,3]"},
		{"json", []any{"a", "c"}, `["a","c"]`},
		{"json", nil, "[]"},
		{"space", nil, ""},
	}
	for _, tc := range tests {
		got, err := FormatValues(tc.format, tc.values)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.format, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %q want %q", tc.format, got, tc.want)
		}
	}
}

func TestCheckFormat(t *testing.T) {
	for _, f := range AllowedFormats {
		if err := CheckFormat(f); err != nil {
			t.Fatalf("unexpected error for %q: %v", f, err)
		}
	}
	if err := CheckFormat("yaml"); err == nil {
		t.Fatalf("expected error for yaml")
	}
}
