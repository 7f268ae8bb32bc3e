package unbox

import "image"

// The border predicate has two variants. Grayscale pixels use a strict
// comparison (lum < threshold); color pixels use an inclusive one
// (every channel <= threshold). The two operators differ on purpose and
// the boundary value is pinned by tests.

// IsBorderGray reports whether a single luminance value counts as border.
func IsBorderGray(lum uint8, threshold int) bool {
	return int(lum) < threshold
}

// IsBorderColor reports whether an RGB triple counts as border.
func IsBorderColor(r, g, b uint8, threshold int) bool {
	return int(r) <= threshold && int(g) <= threshold && int(b) <= threshold
}

// pixelIsBorder applies the predicate matching the image's channel layout:
// the grayscale comparison for single-channel images, the color comparison
// for everything else.
func pixelIsBorder(img image.Image, x, y, threshold int) bool {
	switch src := img.(type) {
	case *image.Gray:
		return IsBorderGray(src.GrayAt(x, y).Y, threshold)
	default:
		r, g, b, _ := img.At(x, y).RGBA()
		return IsBorderColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), threshold)
	}
}

// Luminance returns a single-channel brightness view of src, used for
// border measurement only. Weights are ITU-R 601-2 with integer
// truncation: L = (299R + 587G + 114B) / 1000.
func Luminance(src image.Image) *image.Gray {
	if g, ok := src.(*image.Gray); ok {
		return g
	}
	b := src.Bounds()
	out := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, b_, _ := src.At(x, y).RGBA()
			lum := (299*uint32(r>>8) + 587*uint32(g>>8) + 114*uint32(b_>>8)) / 1000
			out.Pix[out.PixOffset(x, y)] = uint8(lum)
		}
	}
	return out
}
