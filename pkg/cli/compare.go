package cli

import (
	"bytes"
	"fmt"
	"image"

	"gopkg.in/gographics/imagick.v3/imagick"
)

// quantumRange is ImageMagick's sample range on the common Q16 builds.
// TrimImage takes the fuzz as an absolute distance in this range.
const quantumRange = 65535.0

// CompareResult summarizes how one crop diverges from ImageMagick's trim
// of the same input.
type CompareResult struct {
	OursWidth  int
	OursHeight int
	RefWidth   int
	RefHeight  int

	// PixelDiffs counts differing pixels over the overlapping region.
	PixelDiffs int

	// RefBlob is the ImageMagick result, encoded in the input's format.
	RefBlob []byte
}

// SizeMatch reports whether both crops produced the same dimensions.
func (r *CompareResult) SizeMatch() bool {
	return r.OursWidth == r.RefWidth && r.OursHeight == r.RefHeight
}

// CompareWithImagick trims original with ImageMagick, mapping threshold
// from the 8-bit scale onto the quantum range as the trim fuzz, and diffs
// the outcome against ours (an already cropped, encoded image).
// imagick.Initialize must have been called by the process.
func CompareWithImagick(original, ours []byte, threshold int) (*CompareResult, error) {
	mw := imagick.NewMagickWand()
	defer mw.Destroy()

	if err := mw.ReadImageBlob(original); err != nil {
		return nil, fmt.Errorf("imagick decode failed: %w", err)
	}
	fuzz := float64(threshold) / 255.0 * quantumRange
	if err := mw.TrimImage(fuzz); err != nil {
		return nil, fmt.Errorf("imagick trim failed: %w", err)
	}
	refBlob := mw.GetImageBlob()

	oursImg, _, err := image.Decode(bytes.NewReader(ours))
	if err != nil {
		return nil, fmt.Errorf("decoding our result: %w", err)
	}
	refImg, _, err := image.Decode(bytes.NewReader(refBlob))
	if err != nil {
		return nil, fmt.Errorf("decoding imagick result: %w", err)
	}

	result := &CompareResult{
		OursWidth:  oursImg.Bounds().Dx(),
		OursHeight: oursImg.Bounds().Dy(),
		RefWidth:   refImg.Bounds().Dx(),
		RefHeight:  refImg.Bounds().Dy(),
		RefBlob:    refBlob,
		PixelDiffs: countPixelDiffs(oursImg, refImg),
	}
	return result, nil
}

// countPixelDiffs compares the overlapping top-left region of two images
// at 8 bits per channel.
func countPixelDiffs(a, b image.Image) int {
	w := a.Bounds().Dx()
	if bw := b.Bounds().Dx(); bw < w {
		w = bw
	}
	h := a.Bounds().Dy()
	if bh := b.Bounds().Dy(); bh < h {
		h = bh
	}

	diffs := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ar, ag, ab, _ := a.At(a.Bounds().Min.X+x, a.Bounds().Min.Y+y).RGBA()
			br, bg, bb, _ := b.At(b.Bounds().Min.X+x, b.Bounds().Min.Y+y).RGBA()
			if ar>>8 != br>>8 || ag>>8 != bg>>8 || ab>>8 != bb>>8 {
				diffs++
			}
		}
	}
	return diffs
}
