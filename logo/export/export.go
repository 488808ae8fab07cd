// Package export writes logo frames to image files.
package export

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultName is the file name used by the save action.
const DefaultName = "discube-logo.png"

// maxSuffix bounds the search for a free file name.
const maxSuffix = 9999

var ErrNoFreeName = errors.New("export: no free file name")

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	if img == nil || img.Bounds().Empty() {
		return errors.New("export: empty image")
	}
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	return enc.Encode(w, img)
}

// SavePNG writes img to path, creating parent directories as needed.
func SavePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export: %s: %w", path, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %s: %w", path, err)
	}
	bw := bufio.NewWriterSize(f, 64*1024)
	if err := Encode(bw, img); err != nil {
		f.Close()
		return fmt.Errorf("export: %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("export: %s: %w", path, err)
	}
	return f.Close()
}

// FreeName returns path if nothing exists there, otherwise the first "name (n).ext" that is
// free, the way browsers name repeated downloads.
func FreeName(path string) (string, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return path, nil
	} else if err != nil {
		return "", fmt.Errorf("export: %s: %w", path, err)
	}

	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	for n := 1; n <= maxSuffix; n++ {
		cand := fmt.Sprintf("%s (%d)%s", base, n, ext)
		if _, err := os.Stat(cand); errors.Is(err, fs.ErrNotExist) {
			return cand, nil
		}
	}
	return "", ErrNoFreeName
}

// Save writes img next to any earlier saves without overwriting them and returns the path used.
func Save(path string, img image.Image) (string, error) {
	if path == "" {
		path = DefaultName
	}
	name, err := FreeName(path)
	if err != nil {
		return "", err
	}
	if err := SavePNG(name, img); err != nil {
		return "", err
	}
	return name, nil
}
