// Package sink receives rendered pixels and persists the raster.
package sink

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// Sink receives image dimensions, then one write per pixel, then Close.
// Set may be called concurrently for distinct (i, j).
type Sink interface {
	Begin(width, height int) error
	Set(i, j int, r, g, b uint8)
	Close() error
}

// Memory keeps the raster in memory.
type Memory struct {
	img *image.NRGBA
}

// NewMemory returns an empty in-memory sink.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", width, height)
	}
	m.img = image.NewNRGBA(image.Rect(0, 0, width, height))
	return nil
}

func (m *Memory) Set(i, j int, r, g, b uint8) {
	m.img.SetNRGBA(i, j, color.NRGBA{R: r, G: g, B: b, A: 255})
}

func (m *Memory) Close() error { return nil }

// Image returns the raster, or nil before Begin.
func (m *Memory) Image() *image.NRGBA {
	return m.img
}

// PNG buffers the raster and encodes it to a file on Close.
type PNG struct {
	Memory
	path string
}

// NewPNG returns a sink writing a PNG file at path.
func NewPNG(path string) *PNG {
	return &PNG{path: path}
}

// Path is the destination file.
func (p *PNG) Path() string { return p.path }

func (p *PNG) Close() error {
	if p.img == nil {
		return fmt.Errorf("png %s: closed before Begin", p.path)
	}
	if dir := filepath.Dir(p.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return writeFile(p.path, func(w io.Writer) error {
		return png.Encode(w, p.img)
	})
}

// writeFile creates path and fills it with encode. The file is removed if
// any step fails, so no partial image is left behind.
func writeFile(path string, encode func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(path)
		}
	}()

	w := bufio.NewWriter(f)
	if err := encode(w); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
