package util

import "testing"

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"10MB", 10 * 1024 * 1024},
		{"512KB", 512 * 1024},
		{"2GB", 2 * 1024 * 1024 * 1024},
		{"1024", 1024},
		{" 5mb ", 5 * 1024 * 1024},
		{"", 42},
		{"garbage", 42},
	}
	for _, tc := range tests {
		if got := ParseSize(tc.in, 42); got != tc.want {
			t.Errorf("ParseSize(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestMaskSecret(t *testing.T) {
	if got := MaskSecret("eyJhbGciOiJIUzI1NiJ9", 6); got != "eyJhbG***" {
		t.Errorf("MaskSecret() = %q", got)
	}
	if got := MaskSecret("abc", 6); got != "***" {
		t.Errorf("short secret must be fully masked, got %q", got)
	}
}
