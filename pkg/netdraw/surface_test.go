package netdraw

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
		ok   bool
	}{
		{"#ffd700", color.NRGBA{255, 215, 0, 255}, true},
		{"#39FF14", color.NRGBA{57, 255, 20, 255}, true},
		{"#fff", color.NRGBA{255, 255, 255, 255}, true},
		{"ffd700", color.NRGBA{}, false},
		{"gold", color.NRGBA{}, false},
		{"", color.NRGBA{}, false},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseColor(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRGBA(t *testing.T) {
	c := RGBA(57, 255, 20, 0.8)
	if c.R != 57 || c.G != 255 || c.B != 20 || c.A != 204 {
		t.Errorf("RGBA = %v", c)
	}
	if RGBA(0, 0, 0, 2).A != 255 || RGBA(0, 0, 0, -1).A != 0 {
		t.Error("alpha should clamp to [0,1]")
	}
}

func TestWithAlpha(t *testing.T) {
	c := WithAlpha(color.NRGBA{R: 10, A: 255}, 0.5)
	if c.R != 10 || c.A != 128 {
		t.Errorf("WithAlpha = %v", c)
	}
	if WithAlpha(c, 0).A != 0 {
		t.Error("zero alpha should be transparent")
	}
}

func TestBlend(t *testing.T) {
	bg := color.NRGBA{0, 0, 0, 255}
	if got := Blend(bg, color.NRGBA{255, 255, 255, 255}); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("opaque blend = %v", got)
	}
	got := Blend(bg, color.NRGBA{255, 255, 255, 0})
	if got != bg {
		t.Errorf("transparent blend = %v, want background", got)
	}
	half := Blend(bg, RGBA(255, 255, 255, 0.5))
	if half.R < 120 || half.R > 135 || half.A != 255 {
		t.Errorf("half blend = %v", half)
	}
}
