package types

import (
	"testing"
)

func TestMakeGlyph(t *testing.T) {
	tests := []struct {
		name  string
		color uint32
		char  byte
		want  Glyph
	}{
		{"player", 0xFFFF00, '@', Glyph(0xFFFF0040)},
		{"wall", 0x00FF00, '#', Glyph(0x00FF0023)},
		{"remembered floor", 0x808080, '.', Glyph(0x8080802E)},
		{"high byte of color dropped", 0x12345678, 'o', Glyph(0x3456786F)},
		{"zero char", 0xFF0000, 0, Glyph(0xFF000000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MakeGlyph(tt.color, tt.char)
			if got != tt.want {
				t.Fatalf("MakeGlyph(0x%06X, %q) = 0x%08X, want 0x%08X", tt.color, tt.char, got, tt.want)
			}
			if got.Char() != tt.char {
				t.Errorf("Char() = %q, want %q", got.Char(), tt.char)
			}
			if got.Color() != tt.color&0xFFFFFF {
				t.Errorf("Color() = 0x%06X, want 0x%06X", got.Color(), tt.color&0xFFFFFF)
			}
		})
	}
}

// Поля не влияют друг на друга
func TestGlyph_FieldsIndependent(t *testing.T) {
	if MakeGlyph(0xFFFFFF, 'g').Char() != MakeGlyph(0x000000, 'g').Char() {
		t.Error("char depends on color")
	}
	if MakeGlyph(0xABCDEF, 'g').Color() != MakeGlyph(0xABCDEF, 0xFF).Color() {
		t.Error("color depends on char")
	}
}

func TestGlyph_RGB(t *testing.T) {
	r, g, b := MakeGlyph(0x123456, '@').RGB()
	if r != 0x12 || g != 0x34 || b != 0x56 {
		t.Errorf("RGB() = %X %X %X, want 12 34 56", r, g, b)
	}
}

func TestGlyph_Greyscale(t *testing.T) {
	tests := []struct {
		name string
		g    Glyph
		want uint32
	}{
		{"white stays white", MakeGlyph(0xFFFFFF, '.'), 0xFFFFFF},
		{"black stays black", MakeGlyph(0x000000, '#'), 0x000000},
		{"pure red", MakeGlyph(0xFF0000, 'g'), 0x4C4C4C},
		{"pure green", MakeGlyph(0x00FF00, '.'), 0x959595},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.g.Greyscale()
			if got.Color() != tt.want {
				t.Errorf("Greyscale() color = 0x%06X, want 0x%06X", got.Color(), tt.want)
			}
			if got.Char() != tt.g.Char() {
				t.Errorf("Greyscale() char = %q, want %q", got.Char(), tt.g.Char())
			}
		})
	}
}
