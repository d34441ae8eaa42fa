package render

import (
	"math/rand/v2"
	"testing"
)

const ink = 0xffffffff

func touched(fb *Framebuffer) map[[2]int]bool {
	out := map[[2]int]bool{}
	for y := 0; y < fb.H; y++ {
		for x := 0; x < fb.W; x++ {
			if fb.At(x, y) == ink {
				out[[2]int{x, y}] = true
			}
		}
	}
	return out
}

func TestDrawLineHorizontalAndVertical(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	DrawLine(fb, 2, 3, 7, 3, ink)
	got := touched(fb)
	if len(got) != 6 {
		t.Fatalf("horizontal line touched %d pixels, want 6", len(got))
	}
	for x := 2; x <= 7; x++ {
		if !got[[2]int{x, 3}] {
			t.Fatalf("pixel (%d,3) not drawn", x)
		}
	}

	fb = NewFramebuffer(10, 10)
	DrawLine(fb, 4, 8, 4, 1, ink)
	got = touched(fb)
	if len(got) != 8 {
		t.Fatalf("vertical line touched %d pixels, want 8", len(got))
	}
}

func TestDrawLineDiagonal(t *testing.T) {
	fb := NewFramebuffer(6, 6)
	DrawLine(fb, 0, 0, 5, 5, ink)
	for i := 0; i < 6; i++ {
		if fb.At(i, i) != ink {
			t.Fatalf("diagonal pixel (%d,%d) not drawn", i, i)
		}
	}
	if n := len(touched(fb)); n != 6 {
		t.Fatalf("diagonal touched %d pixels, want 6", n)
	}
}

func TestDrawLineSymmetric(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 500; i++ {
		x0, y0 := rng.IntN(40)-5, rng.IntN(30)-5
		x1, y1 := rng.IntN(40)-5, rng.IntN(30)-5

		a := NewFramebuffer(30, 20)
		b := NewFramebuffer(30, 20)
		DrawLine(a, x0, y0, x1, y1, ink)
		DrawLine(b, x1, y1, x0, y0, ink)
		for j := range a.Pix {
			if a.Pix[j] != b.Pix[j] {
				t.Fatalf("(%d,%d)-(%d,%d) differs from its reverse at pixel %d", x0, y0, x1, y1, j)
			}
		}
	}
}

func TestDrawLineConnected(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 200; i++ {
		x0, y0 := rng.IntN(50), rng.IntN(50)
		x1, y1 := rng.IntN(50), rng.IntN(50)
		fb := NewFramebuffer(50, 50)
		DrawLine(fb, x0, y0, x1, y1, ink)

		dx, dy := abs(x1-x0), abs(y1-y0)
		want := max(dx, dy) + 1
		if n := len(touched(fb)); n != want {
			t.Fatalf("(%d,%d)-(%d,%d) touched %d pixels, want %d", x0, y0, x1, y1, n, want)
		}
		if fb.At(x0, y0) != ink || fb.At(x1, y1) != ink {
			t.Fatalf("(%d,%d)-(%d,%d) missing an endpoint", x0, y0, x1, y1)
		}
	}
}

func TestDrawLineClipsOutOfBounds(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	DrawLine(fb, -20, -3, 30, 12, ink)
	DrawLine(fb, -5, 4, 20, 4, ink)
	DrawLine(fb, 100, 100, 200, 150, ink)
	if len(fb.Pix) != 64 {
		t.Fatalf("buffer resized to %d", len(fb.Pix))
	}
	for x := 0; x < 8; x++ {
		if fb.At(x, 4) != ink {
			t.Fatalf("clipped row 4 missing pixel (%d,4)", x)
		}
	}
}

func TestDrawLineDegenerate(t *testing.T) {
	fb := NewFramebuffer(5, 5)
	DrawLine(fb, 2, 3, 2, 3, ink)
	got := touched(fb)
	if len(got) != 1 || !got[[2]int{2, 3}] {
		t.Fatalf("degenerate in-bounds line touched %v", got)
	}

	fb = NewFramebuffer(5, 5)
	DrawLine(fb, 7, -1, 7, -1, ink)
	if n := len(touched(fb)); n != 0 {
		t.Fatalf("degenerate out-of-bounds line touched %d pixels", n)
	}
}

func TestDrawLineFarOutsideReturnsQuickly(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	// Wholly to one side: nothing is walked or written.
	DrawLine(fb, -1_000_000_000, -5, 1_000_000_000, -1, ink)
	DrawLine(fb, 9, -1_000_000_000, 2_000_000_000, 1_000_000_000, ink)
	if n := len(touched(fb)); n != 0 {
		t.Fatalf("lines outside the buffer touched %d pixels", n)
	}

	// Long axis-aligned runs crossing the buffer are clamped to it.
	DrawLine(fb, -1_000_000_000, 0, 1_000_000_000, 0, ink)
	DrawLine(fb, 3, 1_000_000_000, 3, -1_000_000_000, ink)
	got := touched(fb)
	if len(got) != 15 {
		t.Fatalf("got %d pixels, want 15", len(got))
	}
	for i := 0; i < 8; i++ {
		if !got[[2]int{i, 0}] || !got[[2]int{3, i}] {
			t.Fatalf("missing pixel on row 0 or column 3 at %d", i)
		}
	}
}
