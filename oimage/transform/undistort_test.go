package transform

import (
	"math"
	"testing"

	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"

	"github.com/leftfield-geospatial/simple-ortho/utils"
)

func TestUndistortCameraMatrixPinhole(t *testing.T) {
	intrinsics := testIntrinsics()
	camera, err := NewCamera(PinholeCameraType, intrinsics, nil)
	test.That(t, err, test.ShouldBeNil)

	// with no distortion the undistort matrix reduces to the camera matrix
	kUndistort := camera.UndistortCameraMatrix()
	kCamera := intrinsics.GetCameraMatrix()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			test.That(t, kUndistort.At(r, c), test.ShouldAlmostEqual, kCamera.At(r, c), 1e-6)
		}
	}
}

func TestUndistortCameraMatrixInvertible(t *testing.T) {
	for _, cameraType := range []CameraType{PinholeCameraType, BrownCameraType, FisheyeCameraType, OpenCVCameraType} {
		camera, err := NewCamera(cameraType, testIntrinsics(), testDistortion(cameraType))
		test.That(t, err, test.ShouldBeNil)
		test.That(t, mat.Det(camera.UndistortCameraMatrix()), test.ShouldNotAlmostEqual, 0, 1e-9)
	}
}

func TestUndistortCameraMatrixCoversImage(t *testing.T) {
	// small enough that every border pixel is sampled by the matrix fit
	intrinsics := PinholeCameraIntrinsics{Width: 64, Height: 48, Fx: 60, Fy: 60, Ppx: 32, Ppy: 24}
	for _, cameraType := range []CameraType{BrownCameraType, FisheyeCameraType, OpenCVCameraType} {
		camera, err := NewCamera(cameraType, intrinsics, testDistortion(cameraType))
		test.That(t, err, test.ShouldBeNil)

		rays, err := camera.PixelToCameraRay(utils.PixelGrid(intrinsics.Width, intrinsics.Height))
		test.That(t, err, test.ShouldBeNil)
		var undistJI mat.Dense
		undistJI.Mul(camera.UndistortCameraMatrix(), rays)

		// every pixel projects to a finite undistorted coordinate, and the
		// border fit keeps the projections near the image extent
		_, n := undistJI.Dims()
		for k := 0; k < n; k++ {
			x, y := undistJI.At(0, k), undistJI.At(1, k)
			test.That(t, math.IsNaN(x) || math.IsInf(x, 0), test.ShouldBeFalse)
			test.That(t, math.IsNaN(y) || math.IsInf(y, 0), test.ShouldBeFalse)
			test.That(t, x, test.ShouldBeGreaterThanOrEqualTo, -1e-6)
			test.That(t, x, test.ShouldBeLessThanOrEqualTo, float64(intrinsics.Width-1)+1e-6)
			test.That(t, y, test.ShouldBeGreaterThanOrEqualTo, -1e-6)
			test.That(t, y, test.ShouldBeLessThanOrEqualTo, float64(intrinsics.Height-1)+1e-6)
		}
	}
}
