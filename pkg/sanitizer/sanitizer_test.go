package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dogroom/pkg/sanitizer"
)

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  hello  world ", "hello world"},
		{"one\ttwo\nthree", "one two three"},
		{"", ""},
		{"   ", ""},
		{"already clean", "already clean"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, sanitizer.SanitizeText(tt.in))
	}
}

func TestSanitizeTag(t *testing.T) {
	require.Equal(t, "boarding", sanitizer.SanitizeTag("  Boarding "))
	require.Equal(t, "small", sanitizer.SanitizeTag("SMALL"))
	require.Equal(t, "", sanitizer.SanitizeTag("   "))
}

func TestSanitizeSlice(t *testing.T) {
	got := sanitizer.SanitizeSlice([]string{" Boarding ", "boarding", "", "Daycare"}, sanitizer.SanitizeTag)
	require.Equal(t, []string{"boarding", "daycare"}, got)

	got = sanitizer.SanitizeSlice(nil, sanitizer.SanitizeTag)
	require.Empty(t, got)
}

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://example.com/a/", "https://example.com/a"},
		{"example.com/pic.png", "https://example.com/pic.png"},
		{"   ", ""},
		{"https://", ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, sanitizer.SanitizeURL(tt.in))
	}
}
