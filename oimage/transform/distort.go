package transform

import (
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/leftfield-geospatial/simple-ortho/oimage"
	"github.com/leftfield-geospatial/simple-ortho/utils"
)

// DistortImage synthesizes the distorted image a camera would have captured,
// given an undistorted source image: for every distorted pixel, the camera's
// inverse distortion and the undistort camera matrix give the corresponding
// source coordinate, which is resampled with the requested interpolation
// method. Output pixels whose source lookup falls outside the image, or is
// non-finite, are filled with nodata.
func DistortImage(camera Camera, img *oimage.Image, nodata float64, interp oimage.Interp) (*oimage.Image, error) {
	if camera == nil {
		return nil, errors.New("camera is nil")
	}
	if img == nil {
		return nil, errors.New("input image is nil")
	}
	width, height := camera.ImageSize()
	if img.Width != width || img.Height != height {
		return nil, errors.Wrapf(ErrDimensionMismatch, "Image(%d,%d) != Camera(%d,%d)",
			img.Width, img.Height, width, height)
	}
	kernel, err := interp.RemapKernel()
	if err != nil {
		return nil, err
	}

	// Per-output-pixel source coordinates: distorted pixel grid -> camera
	// rays -> undistorted pixel plane.
	ji := utils.PixelGrid(width, height)
	rays, err := camera.PixelToCameraRay(ji)
	if err != nil {
		return nil, err
	}
	var undistJI mat.Dense
	undistJI.Mul(camera.UndistortCameraMatrix(), rays)

	distorted, err := oimage.NewImageFilled(width, height, img.Bands, nodata)
	if err != nil {
		return nil, err
	}
	utils.ParallelForEachRow(height, func(y int) {
		for x := 0; x < width; x++ {
			k := y*width + x
			src := r2.Point{X: undistJI.At(0, k), Y: undistJI.At(1, k)}
			for b := 0; b < img.Bands; b++ {
				if v, ok := kernel(img, b, src); ok {
					distorted.Set(b, x, y, v)
				}
			}
		}
	})
	return distorted, nil
}
