package unbox

import "fmt"

// DegenerateGeometryError reports that the detected borders consume the
// entire image along at least one axis, leaving an empty or inverted crop
// rectangle.
type DegenerateGeometryError struct {
	Width   int
	Height  int
	Borders Borders
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("unbox: borders top=%d bottom=%d left=%d right=%d leave no pixels in a %dx%d image",
		e.Borders.Top, e.Borders.Bottom, e.Borders.Left, e.Borders.Right, e.Width, e.Height)
}

// InvalidThresholdError reports a threshold outside the [0,255] range.
type InvalidThresholdError int

func (e InvalidThresholdError) Error() string {
	return fmt.Sprintf("unbox: threshold %d outside [0,255]", int(e))
}
