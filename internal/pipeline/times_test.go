package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSeconds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		ok    bool
	}{
		{"plain seconds", "32.40", 32.40, true},
		{"hours minutes seconds", "0:00:24.07", 24.07, true},
		{"zero padded minutes", "01:03.32", 63.32, true},
		{"minutes seconds", "1:39.58", 99.58, true},
		{"over a minute hms", "0:01:39.58", 99.58, true},
		{"whitespace trimmed", "  45.12  ", 45.12, true},
		{"empty", "", 0, false},
		{"dash", "-", 0, false},
		{"dnf", "DNF", 0, false},
		{"dns", "DNS", 0, false},
		{"dq", "DQ", 0, false},
		{"garbage", "abc", 0, false},
		{"bare integer", "42", 0, false},
		{"negative-looking", "-1:03.32", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToSeconds(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 0.0001)
			}
		})
	}
}

func TestIsTimeMarker(t *testing.T) {
	for _, marker := range []string{"", "-", "DNF", "DNS", "DQ", " DNF "} {
		assert.True(t, IsTimeMarker(marker), "marker %q", marker)
	}
	for _, s := range []string{"32.40", "abc", "dnf"} {
		assert.False(t, IsTimeMarker(s), "non-marker %q", s)
	}
}
