// This file is part of mdoutput.
//
// mdoutput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mdoutput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mdoutput.  If not, see <https://www.gnu.org/licenses/>.

package screenshot

import (
	"bufio"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/jetsetilly/mdoutput/curated"
	"github.com/jetsetilly/mdoutput/logger"
	"github.com/jetsetilly/mdoutput/paths"
)

// Sentinal error patterns
const (
	UnsupportedFormat = "screenshot: unsupported format: %s"
	SaveError         = "screenshot: %v"
)

// Format of the saved file.
type Format string

// List of supported formats. The value is the filename extension.
const (
	PNG  Format = ".png"
	BMP  Format = ".bmp"
	WebP Format = ".webp"
	TGA  Format = ".tga"
)

// Formats lists all the supported formats.
var Formats = []Format{PNG, BMP, WebP, TGA}

// ParseFormat returns the Format for the name, which can be given with or
// without the leading dot.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !strings.HasPrefix(name, ".") {
		name = "." + name
	}
	for _, f := range Formats {
		if Format(name) == f {
			return f, nil
		}
	}
	return "", curated.Errorf(UnsupportedFormat, strings.TrimPrefix(name, "."))
}

// Encode the image to w in the Format.
func Encode(w io.Writer, img image.Image, format Format) error {
	var err error

	switch format {
	case PNG:
		err = png.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case WebP:
		err = nativewebp.Encode(w, img, nil)
	case TGA:
		err = tga.Encode(w, opaque(img))
	default:
		return curated.Errorf(UnsupportedFormat, format)
	}

	if err != nil {
		return curated.Errorf(SaveError, err)
	}

	return nil
}

// opaque returns an image without an alpha channel so that the TGA encoder
// writes 24 bit pixels
func opaque(img image.Image) image.Image {
	b := img.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, img, b.Min, draw.Src)

	// the TGA encoder writes an alpha channel for any image that is not
	// fully opaque. screenshots are always opaque so force the alpha
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}

	return dst
}

// Save the image to the file. The Format is decided by the filename extension.
func Save(img image.Image, filename string) error {
	format, err := ParseFormat(filepath.Ext(filename))
	if err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(SaveError, err)
	}

	w := bufio.NewWriter(f)

	err = Encode(w, img, format)
	if err == nil {
		err = w.Flush()
	}

	if cerr := f.Close(); err == nil && cerr != nil {
		err = cerr
	}

	if err != nil {
		_ = os.Remove(filename)
		if curated.IsAny(err) {
			return err
		}
		return curated.Errorf(SaveError, err)
	}

	logger.Logf(logger.Allow, "screenshot", "saved %s", filename)

	return nil
}

// SaveUnique saves the image to a uniquely named file in the screenshots
// resource directory. The name is included in the filename and may be empty.
// Returns the filename used.
func SaveUnique(img image.Image, name string, format Format) (string, error) {
	pth, err := paths.ResourcePath("screenshots", paths.UniqueFilename("screenshot", name)+string(format))
	if err != nil {
		return "", curated.Errorf(SaveError, err)
	}
	return pth, Save(img, pth)
}

// Thumbnail returns a copy of the image scaled to fit within width by height
// pixels, keeping the aspect ratio. Nearest neighbour scaling is used so that
// the pixels of the emulated screen remain sharp.
func Thumbnail(img image.Image, width, height int) *image.RGBA {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || width <= 0 || height <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}

	w := width
	h := b.Dy() * width / b.Dx()
	if h > height {
		h = height
		w = b.Dx() * height / b.Dy()
	}
	w = max(w, 1)
	h = max(h, 1)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	return dst
}
