// Package oimage implements the in-memory raster buffer and the resampling
// machinery used by the orthorectification core.
package oimage

import (
	"image"

	"github.com/pkg/errors"
)

// Image is a raster of float64 samples, stored band sequential with row-major
// bands. The sample for band b at column x, row y lives at
// Pix[b*Width*Height + y*Width + x].
type Image struct {
	Width  int
	Height int
	Bands  int
	Pix    []float64
}

// NewImage returns a zero-filled image of the given size and band count.
func NewImage(width, height, bands int) (*Image, error) {
	if width <= 0 || height <= 0 || bands <= 0 {
		return nil, errors.Errorf("image dimensions should be positive, got (%d, %d) with %d band(s)", width, height, bands)
	}
	return &Image{
		Width:  width,
		Height: height,
		Bands:  bands,
		Pix:    make([]float64, bands*width*height),
	}, nil
}

// NewImageFilled returns an image of the given size with every sample set to v.
func NewImageFilled(width, height, bands int, v float64) (*Image, error) {
	img, err := NewImage(width, height, bands)
	if err != nil {
		return nil, err
	}
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img, nil
}

// Bounds returns the pixel extent of the image.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

// At returns the sample for band b at (x, y).
func (img *Image) At(b, x, y int) float64 {
	return img.Pix[b*img.Width*img.Height+y*img.Width+x]
}

// Set writes the sample for band b at (x, y).
func (img *Image) Set(b, x, y int, v float64) {
	img.Pix[b*img.Width*img.Height+y*img.Width+x] = v
}

// Clone returns a deep copy of the image.
func (img *Image) Clone() *Image {
	pix := make([]float64, len(img.Pix))
	copy(pix, img.Pix)
	return &Image{Width: img.Width, Height: img.Height, Bands: img.Bands, Pix: pix}
}
