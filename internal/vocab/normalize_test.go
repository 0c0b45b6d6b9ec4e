package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWord(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Tisch", "tisch"},
		{"  der Tisch  ", "tisch"},
		{"die Lampe", "lampe"},
		{"das Fenster", "fenster"},
		{"gehen", "gehen"},
		{"derselbe", "derselbe"}, // only a standalone article is stripped
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeWord(tt.in), "input %q", tt.in)
	}
}

func TestSynthesizeIDIsDeterministic(t *testing.T) {
	a := SynthesizeID("der Tisch")
	b := SynthesizeID("  Tisch ")
	assert.Equal(t, a, b, "the same normalized word always maps to the same id")
	assert.Equal(t, "temp_tisch", a)
}

func TestSynthesizeIDReplacesSpecialRunes(t *testing.T) {
	assert.Equal(t, "temp_gl_hbirne", SynthesizeID("Glühbirne"))
	assert.Equal(t, "temp_auf_dem_tisch", SynthesizeID("auf dem Tisch"))
}

func TestIsSynthesizedID(t *testing.T) {
	assert.True(t, IsSynthesizedID(SynthesizeID("Haus")))
	assert.False(t, IsSynthesizedID("w_haus"))
}
