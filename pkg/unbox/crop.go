package unbox

import (
	"image"
	"image/draw"
)

// subImager is implemented by all stdlib raster image types.
type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// Crop returns the sub-image that remains after removing the given border
// widths. Where the source type supports sub-images the result shares its
// pixel data and keeps the source color model; cropping never rewrites
// color values.
//
// The crop rectangle is built without canonicalization: if the borders
// consume the whole image along an axis the rectangle comes out empty or
// inverted, and Crop reports a *DegenerateGeometryError instead of
// silently swapping the corners.
func Crop(src image.Image, b Borders) (image.Image, error) {
	bounds := src.Bounds()
	rect := image.Rectangle{
		Min: image.Point{X: bounds.Min.X + b.Left, Y: bounds.Min.Y + b.Top},
		Max: image.Point{X: bounds.Max.X - b.Right, Y: bounds.Max.Y - b.Bottom},
	}
	if rect.Min.X >= rect.Max.X || rect.Min.Y >= rect.Max.Y {
		return nil, &DegenerateGeometryError{
			Width:   bounds.Dx(),
			Height:  bounds.Dy(),
			Borders: b,
		}
	}
	if si, ok := src.(subImager); ok {
		return si.SubImage(rect), nil
	}
	out := image.NewNRGBA(rect.Sub(rect.Min))
	draw.Draw(out, out.Bounds(), src, rect.Min, draw.Src)
	return out, nil
}
