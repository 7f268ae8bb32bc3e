package unbox

import (
	"image"
	"sync"
)

// Borders holds the number of fully uniform lines found at each edge.
type Borders struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

type axis int

const (
	axisRow axis = iota
	axisColumn
)

// lineIsBorder reports whether every pixel on the given row or column
// satisfies the border predicate. index is relative to the image bounds.
func lineIsBorder(img image.Image, ax axis, index, threshold int) bool {
	b := img.Bounds()
	if ax == axisRow {
		y := b.Min.Y + index
		for x := b.Min.X; x < b.Max.X; x++ {
			if !pixelIsBorder(img, x, y, threshold) {
				return false
			}
		}
		return true
	}
	x := b.Min.X + index
	for y := b.Min.Y; y < b.Max.Y; y++ {
		if !pixelIsBorder(img, x, y, threshold) {
			return false
		}
	}
	return true
}

// scanEdge walks rows or columns inward from one edge and returns the count
// of consecutive fully-border lines before the first line containing a
// non-border pixel. A fully uniform image yields the whole dimension along
// the scanned axis.
func scanEdge(img image.Image, ax axis, fromEnd bool, threshold int) int {
	b := img.Bounds()
	n := b.Dy()
	if ax == axisColumn {
		n = b.Dx()
	}
	for i := 0; i < n; i++ {
		index := i
		if fromEnd {
			index = n - 1 - i
		}
		if !lineIsBorder(img, ax, index, threshold) {
			return i
		}
	}
	return n
}

// DetectTopBorder returns the number of fully-border rows at the top edge.
func DetectTopBorder(img image.Image, threshold int) int {
	return scanEdge(img, axisRow, false, threshold)
}

// DetectBottomBorder returns the number of fully-border rows at the bottom edge.
func DetectBottomBorder(img image.Image, threshold int) int {
	return scanEdge(img, axisRow, true, threshold)
}

// DetectLeftBorder returns the number of fully-border columns at the left edge.
func DetectLeftBorder(img image.Image, threshold int) int {
	return scanEdge(img, axisColumn, false, threshold)
}

// DetectRightBorder returns the number of fully-border columns at the right edge.
func DetectRightBorder(img image.Image, threshold int) int {
	return scanEdge(img, axisColumn, true, threshold)
}

// DetectBorders runs the four directional scans. The scans are independent
// read-only passes over the same pixel grid, so they run concurrently; the
// result depends only on the image content and the threshold.
func DetectBorders(img image.Image, threshold int) Borders {
	var b Borders
	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		b.Top = DetectTopBorder(img, threshold)
	}()
	go func() {
		defer wg.Done()
		b.Bottom = DetectBottomBorder(img, threshold)
	}()
	go func() {
		defer wg.Done()
		b.Left = DetectLeftBorder(img, threshold)
	}()
	go func() {
		defer wg.Done()
		b.Right = DetectRightBorder(img, threshold)
	}()
	wg.Wait()
	return b
}
