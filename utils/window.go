// Package utils contains the raster window, numeric and concurrency helpers
// shared by the orthorectification core.
package utils

import "math"

// Window describes a rectangular sub-region of a raster. Offsets and extents
// may be fractional, as produced by sub-pixel georeferencing.
type Window struct {
	ColOff float64
	RowOff float64
	Width  float64
	Height float64
}

// IntWindow is a Window aligned to whole pixels.
type IntWindow struct {
	ColOff int
	RowOff int
	Width  int
	Height int
}

// ExpandWindowToGrid expands window extents to the nearest whole numbers, with
// an optional (rows, cols) padding on each side. Offsets are floored after
// subtracting the padding and extents are ceiled after adding the fractional
// offset remainder and twice the padding, so the returned window always
// contains the input window plus the requested padding.
func ExpandWindowToGrid(win Window, expandPixels [2]int) IntWindow {
	colOff := math.Floor(win.ColOff - float64(expandPixels[1]))
	colFrac := win.ColOff - float64(expandPixels[1]) - colOff
	rowOff := math.Floor(win.RowOff - float64(expandPixels[0]))
	rowFrac := win.RowOff - float64(expandPixels[0]) - rowOff
	width := math.Ceil(win.Width + 2*float64(expandPixels[1]) + colFrac)
	height := math.Ceil(win.Height + 2*float64(expandPixels[0]) + rowFrac)
	return IntWindow{
		ColOff: int(colOff),
		RowOff: int(rowOff),
		Width:  int(width),
		Height: int(height),
	}
}
