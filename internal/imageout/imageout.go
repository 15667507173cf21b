// Package imageout writes rendered frames to image files.
package imageout

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an image encoding.
type Format uint8

const (
	None Format = iota
	PNG
	JPEG
	GIF
	BMP
	TIFF
)

var ErrUnknownFormat = errors.New("unknown image format")

var formatNames = [...]string{None: "none", PNG: "png", JPEG: "jpeg", GIF: "gif", BMP: "bmp", TIFF: "tiff"}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// FormatFromExt maps a file extension, with or without the leading dot, to a Format.
func FormatFromExt(ext string) (Format, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch ext {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	}
	return None, fmt.Errorf("%w: extension %q", ErrUnknownFormat, ext)
}

// FormatFromPath picks the Format from a file name's extension.
func FormatFromPath(path string) (Format, error) {
	return FormatFromExt(filepath.Ext(path))
}

// Encode writes im to w in format f.
func Encode(w io.Writer, im image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, im)
	case JPEG:
		return jpeg.Encode(w, im, &jpeg.Options{Quality: 90})
	case GIF:
		return gif.Encode(w, im, nil)
	case BMP:
		return bmp.Encode(w, im)
	case TIFF:
		return tiff.Encode(w, im, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}

// Save writes im to path, choosing the format from the extension.
func Save(path string, im image.Image) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(file)
	if err := Encode(bw, im, f); err != nil {
		file.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
