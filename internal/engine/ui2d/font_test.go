package ui2d

import "testing"

// The UV and measurement paths are pure; only the atlas texture upload
// in NewFont needs a GL context, so these run on a bare Font value.

func TestGetGlyphUVInRange(t *testing.T) {
	f := &Font{}

	for char := rune(firstGlyph); char <= lastGlyph; char++ {
		u0, v0, u1, v1 := f.GetGlyphUV(char)
		if u0 < 0 || u1 > 1 || v0 < 0 || v1 > 1 {
			t.Fatalf("glyph %q UV out of range: (%v, %v)-(%v, %v)", char, u0, v0, u1, v1)
		}
		if u1 <= u0 || v1 <= v0 {
			t.Fatalf("glyph %q UV rect degenerate: (%v, %v)-(%v, %v)", char, u0, v0, u1, v1)
		}
		// Each glyph cell spans exactly one atlas column and row
		if got, want := u1-u0, float32(glyphWidth)/float32(atlasWidth); got != want {
			t.Fatalf("glyph %q UV width %v, want %v", char, got, want)
		}
		if got, want := v1-v0, float32(glyphHeight)/float32(atlasHeight); got != want {
			t.Fatalf("glyph %q UV height %v, want %v", char, got, want)
		}
	}
}

func TestGetGlyphUVDegreeSign(t *testing.T) {
	f := &Font{}

	u0, v0, _, _ := f.GetGlyphUV('°')
	wantU := float32((degreeGlyph % atlasCols) * glyphWidth) / float32(atlasWidth)
	wantV := float32((degreeGlyph / atlasCols) * glyphHeight) / float32(atlasHeight)
	if u0 != wantU || v0 != wantV {
		t.Errorf("degree sign maps to (%v, %v), want (%v, %v)", u0, v0, wantU, wantV)
	}
}

func TestGetGlyphUVUnknownFallsBack(t *testing.T) {
	f := &Font{}

	gu0, gv0, _, _ := f.GetGlyphUV('→')
	qu0, qv0, _, _ := f.GetGlyphUV('?')
	if gu0 != qu0 || gv0 != qv0 {
		t.Errorf("unknown rune should render as '?': got (%v, %v), want (%v, %v)", gu0, gv0, qu0, qv0)
	}
}

func TestMeasureText(t *testing.T) {
	f := &Font{}

	w, h := f.MeasureText("J(T,R)", 2)
	if w != float32(6*glyphWidth*2) {
		t.Errorf("width = %v, want %v", w, float32(6*glyphWidth*2))
	}
	if h != float32(glyphHeight*2) {
		t.Errorf("height = %v, want %v", h, float32(glyphHeight*2))
	}

	// Multi-line text: widest line wins, height stacks
	w, h = f.MeasureText("ab\nlonger", 1)
	if w != float32(6*glyphWidth) {
		t.Errorf("multiline width = %v, want %v", w, float32(6*glyphWidth))
	}
	if h != float32(2*glyphHeight) {
		t.Errorf("multiline height = %v, want %v", h, float32(2*glyphHeight))
	}
}
