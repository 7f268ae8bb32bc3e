// Package unbox removes uniform letterbox and pillarbox borders from
// images. Detection scans inward from each edge on a luminance view of
// the image until a non-uniform row or column is found; the crop is then
// taken from the original color data.
package unbox

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Unletterbox decodes an image from r, removes uniform borders at or below
// threshold, and returns the cropped image re-encoded in the source
// container format. Decode failures are returned as-is from the codec.
func Unletterbox(r io.Reader, threshold int) ([]byte, error) {
	if threshold < 0 || threshold > 255 {
		return nil, InvalidThresholdError(threshold)
	}
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	cropped, _, err := UnletterboxImage(src, threshold)
	if err != nil {
		return nil, err
	}
	return Encode(cropped, format)
}

// UnletterboxImage removes uniform borders from an already decoded image.
// Borders are measured on a luminance view; the returned image is cropped
// from src itself, so its pixel encoding is unchanged.
func UnletterboxImage(src image.Image, threshold int) (image.Image, Borders, error) {
	if threshold < 0 || threshold > 255 {
		return nil, Borders{}, InvalidThresholdError(threshold)
	}
	borders := DetectBorders(Luminance(src), threshold)
	out, err := Crop(src, borders)
	if err != nil {
		return nil, borders, err
	}
	return out, borders, nil
}

// Encode serializes img into the named container format. Supported formats
// are png, jpeg, gif, bmp and tiff. WebP sources decode fine but have no
// Go encoder, so they are rejected here.
func Encode(img image.Image, format string) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case "png":
		err = png.Encode(&buf, img)
	case "jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 92})
	case "gif":
		err = gif.Encode(&buf, img, nil)
	case "bmp":
		err = bmp.Encode(&buf, img)
	case "tiff":
		err = tiff.Encode(&buf, img, nil)
	default:
		return nil, fmt.Errorf("unsupported output format: %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("%s encode failed: %w", format, err)
	}
	return buf.Bytes(), nil
}
