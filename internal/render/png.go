package render

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// WritePNG encodes the framebuffer as a PNG image.
func WritePNG(w io.Writer, fb *Framebuffer) error {
	if err := png.Encode(w, fb.RGBA()); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the framebuffer to path, creating parent directories.
func SavePNG(path string, fb *Framebuffer) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("render: create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("render: close %s: %w", path, cerr)
		}
	}()
	return WritePNG(f, fb)
}

// PNGSequence presents frames by writing each one to a numbered PNG file
// in Dir.
type PNGSequence struct {
	Dir    string
	Prefix string
	n      int
}

// NewPNGSequence returns a sequence writing frame_00000.png, frame_00001.png
// and so on into dir.
func NewPNGSequence(dir string) *PNGSequence {
	return &PNGSequence{Dir: dir, Prefix: "frame"}
}

// Present writes the next frame.
func (s *PNGSequence) Present(fb *Framebuffer) error {
	path := filepath.Join(s.Dir, fmt.Sprintf("%s_%05d.png", s.Prefix, s.n))
	if err := SavePNG(path, fb); err != nil {
		return err
	}
	s.n++
	return nil
}

// Closed always reports false: a file sink is never closed by a user.
func (s *PNGSequence) Closed() bool { return false }

// Frames returns how many frames have been written.
func (s *PNGSequence) Frames() int { return s.n }
