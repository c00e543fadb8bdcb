package dyespheres

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/spf13/afero"
)

// ErrPersist wraps any failure to write an icon file.
var ErrPersist = errors.New("failed to persist icon")

// Lossless formats only: GIF quantizes and JPEG is lossy.
var losslessFormats = map[string]imaging.Format{
	".png":  imaging.PNG,
	".tif":  imaging.TIFF,
	".tiff": imaging.TIFF,
	".bmp":  imaging.BMP,
}

func iconFormat(ext string) (imaging.Format, error) {
	f, ok := losslessFormats[strings.ToLower(ext)]
	if !ok {
		return 0, fmt.Errorf("unsupported output extension %q, want one of .png, .tif, .tiff, .bmp", ext)
	}
	return f, nil
}

// SaveIcon writes img as dir/<id><ext>, then one downscaled copy per entry of
// sizes as dir/<id>@<n><ext>. Sizes equal to the source size are skipped.
// It returns the written paths.
func SaveIcon(fsys afero.Fs, dir, id, ext string, img image.Image, sizes []int) ([]string, error) {
	format, err := iconFormat(ext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersist, err)
	}

	full := filepath.Join(dir, id+ext)
	if err := writeImage(fsys, full, img, format); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrPersist, full, err)
	}
	paths := []string{full}

	side := img.Bounds().Dx()
	for _, n := range sizes {
		if n <= 0 || n == side {
			continue
		}
		scaled := imaging.Resize(img, n, n, imaging.Lanczos)
		p := filepath.Join(dir, fmt.Sprintf("%s@%d%s", id, n, ext))
		if err := writeImage(fsys, p, scaled, format); err != nil {
			return paths, fmt.Errorf("%w: %s: %v", ErrPersist, p, err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func writeImage(fsys afero.Fs, path string, img image.Image, format imaging.Format) error {
	f, err := fsys.Create(path)
	if err != nil {
		return err
	}
	// still lossless
	if err := imaging.Encode(f, img, format, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
