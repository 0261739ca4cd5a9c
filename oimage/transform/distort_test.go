package transform

import (
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"

	"github.com/leftfield-geospatial/simple-ortho/oimage"
	"github.com/leftfield-geospatial/simple-ortho/utils"
)

func smallIntrinsics() PinholeCameraIntrinsics {
	return PinholeCameraIntrinsics{Width: 32, Height: 24, Fx: 30, Fy: 30, Ppx: 16, Ppy: 12}
}

func TestDistortImageDimensionMismatch(t *testing.T) {
	camera, err := NewCamera(PinholeCameraType, smallIntrinsics(), nil)
	test.That(t, err, test.ShouldBeNil)

	img, err := oimage.NewImage(31, 24, 1)
	test.That(t, err, test.ShouldBeNil)
	_, err = DistortImage(camera, img, 0, oimage.InterpNearest)
	test.That(t, errors.Is(err, ErrDimensionMismatch), test.ShouldBeTrue)
}

func TestDistortImageUnsupportedMethod(t *testing.T) {
	camera, err := NewCamera(PinholeCameraType, smallIntrinsics(), nil)
	test.That(t, err, test.ShouldBeNil)

	img, err := oimage.NewImage(32, 24, 1)
	test.That(t, err, test.ShouldBeNil)
	_, err = DistortImage(camera, img, 0, oimage.Interp("sinc"))
	test.That(t, errors.Is(err, oimage.ErrUnsupportedMethod), test.ShouldBeTrue)
}

func TestDistortImagePinholeUniform(t *testing.T) {
	// a pinhole camera has no geometric displacement, so a uniform image
	// stays uniform: every in-bounds pixel keeps its value and any
	// out-of-bounds pixel is exactly nodata
	camera, err := NewCamera(PinholeCameraType, smallIntrinsics(), nil)
	test.That(t, err, test.ShouldBeNil)

	const v, nodata = 7.25, -999.0
	img, err := oimage.NewImageFilled(32, 24, 1, v)
	test.That(t, err, test.ShouldBeNil)

	for _, interp := range oimage.RemapInterps() {
		distorted, err := DistortImage(camera, img, nodata, interp)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, distorted.Width, test.ShouldEqual, img.Width)
		test.That(t, distorted.Height, test.ShouldEqual, img.Height)
		test.That(t, distorted.Bands, test.ShouldEqual, img.Bands)
		for _, sample := range distorted.Pix {
			test.That(t, sample == v || sample == nodata, test.ShouldBeTrue)
		}
	}
}

func TestDistortImagePinholeIdentity(t *testing.T) {
	// with nearest interpolation the pinhole remap is the identity
	camera, err := NewCamera(PinholeCameraType, smallIntrinsics(), nil)
	test.That(t, err, test.ShouldBeNil)

	img, err := oimage.NewImage(32, 24, 2)
	test.That(t, err, test.ShouldBeNil)
	for b := 0; b < 2; b++ {
		for y := 0; y < 24; y++ {
			for x := 0; x < 32; x++ {
				img.Set(b, x, y, float64(b*1000+y*32+x))
			}
		}
	}

	distorted, err := DistortImage(camera, img, -1, oimage.InterpNearest)
	test.That(t, err, test.ShouldBeNil)
	for i, sample := range distorted.Pix {
		test.That(t, sample, test.ShouldEqual, img.Pix[i])
	}
}

func TestDistortImageBrown(t *testing.T) {
	intrinsics := smallIntrinsics()
	camera, err := NewCamera(BrownCameraType, intrinsics, testDistortion(BrownCameraType))
	test.That(t, err, test.ShouldBeNil)

	const v, nodata = 3.5, -1.0
	img, err := oimage.NewImageFilled(32, 24, 3, v)
	test.That(t, err, test.ShouldBeNil)

	distorted, err := DistortImage(camera, img, nodata, oimage.InterpBilinear)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, distorted.Bands, test.ShouldEqual, 3)
	var valid int
	for _, sample := range distorted.Pix {
		test.That(t, sample == v || sample == nodata, test.ShouldBeTrue)
		if sample == v {
			valid++
		}
	}
	// the border-fit undistort matrix keeps most of the image in bounds
	test.That(t, valid, test.ShouldBeGreaterThan, len(distorted.Pix)/2)
}

func TestDistortImageNodataFill(t *testing.T) {
	// a camera whose undistort matrix shifts lookups off the image edge
	// must fill the uncovered pixels with exactly nodata
	intrinsics := smallIntrinsics()
	camera, err := newFrameCamera(intrinsics, &Pinhole{})
	test.That(t, err, test.ShouldBeNil)
	camera.kUndistort.Set(0, 2, camera.kUndistort.At(0, 2)+10)

	img, err := oimage.NewImage(32, 24, 1)
	test.That(t, err, test.ShouldBeNil)
	for y := 0; y < 24; y++ {
		for x := 0; x < 32; x++ {
			img.Set(0, x, y, float64(y*32+x))
		}
	}

	const nodata = -42.0
	distorted, err := DistortImage(camera, img, nodata, oimage.InterpNearest)
	test.That(t, err, test.ShouldBeNil)
	for y := 0; y < 24; y++ {
		for x := 0; x < 32; x++ {
			if x+10 < 32 {
				test.That(t, distorted.At(0, x, y), test.ShouldEqual, img.At(0, x+10, y))
			} else {
				test.That(t, distorted.At(0, x, y), test.ShouldEqual, nodata)
			}
		}
	}
}

func TestDistortImageGridConsistency(t *testing.T) {
	// the engine's source coordinates are the camera rays projected through
	// the undistort matrix, one per output pixel
	intrinsics := smallIntrinsics()
	camera, err := NewCamera(BrownCameraType, intrinsics, testDistortion(BrownCameraType))
	test.That(t, err, test.ShouldBeNil)

	rays, err := camera.PixelToCameraRay(utils.PixelGrid(intrinsics.Width, intrinsics.Height))
	test.That(t, err, test.ShouldBeNil)
	var undistJI mat.Dense
	undistJI.Mul(camera.UndistortCameraMatrix(), rays)
	_, n := undistJI.Dims()
	test.That(t, n, test.ShouldEqual, intrinsics.Width*intrinsics.Height)
}
