package transform

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// borderSamples is the upper bound on the number of border points sampled per
// image edge when fitting the undistort camera matrix.
const borderSamples = 101

// undistortCameraMatrix derives the intrinsic matrix of the equivalent ideal
// camera for the undistorted reference frame.
//
// Policy: the image border (corners, edge midpoints and intermediate border
// pixels) is pushed through the inverse distortion law to normalized camera
// coordinates; focal lengths and principal point are then fit so the bounding
// box of those points maps exactly onto pixel centers [0, w-1] x [0, h-1].
// Every source pixel's ray lands inside the undistorted frame, and for the
// pinhole law the construction reduces to the original camera matrix.
func undistortCameraMatrix(intrinsics PinholeCameraIntrinsics, model Distortion) (*mat.Dense, error) {
	w, h := intrinsics.Width, intrinsics.Height

	xMin, yMin := math.Inf(1), math.Inf(1)
	xMax, yMax := math.Inf(-1), math.Inf(-1)
	sample := func(j, i float64) {
		xd := (j - intrinsics.Ppx) / intrinsics.Fx
		yd := (i - intrinsics.Ppy) / intrinsics.Fy
		xu, yu := model.Undistort(xd, yd)
		if math.IsNaN(xu) || math.IsNaN(yu) || math.IsInf(xu, 0) || math.IsInf(yu, 0) {
			return
		}
		xMin = math.Min(xMin, xu)
		xMax = math.Max(xMax, xu)
		yMin = math.Min(yMin, yu)
		yMax = math.Max(yMax, yu)
	}

	for _, edge := range []struct {
		x0, y0, dx, dy, length float64
	}{
		{0, 0, 1, 0, float64(w - 1)},              // top
		{0, float64(h - 1), 1, 0, float64(w - 1)}, // bottom
		{0, 0, 0, 1, float64(h - 1)},              // left
		{float64(w - 1), 0, 0, 1, float64(h - 1)}, // right
	} {
		steps := int(edge.length)
		if steps > borderSamples-1 {
			steps = borderSamples - 1
		}
		if steps < 1 {
			steps = 1
		}
		for s := 0; s <= steps; s++ {
			t := edge.length * float64(s) / float64(steps)
			sample(edge.x0+edge.dx*t, edge.y0+edge.dy*t)
		}
	}

	if !(xMax > xMin) || !(yMax > yMin) {
		return nil, NewInvalidParameterError(
			"cannot derive an undistorted camera matrix for a degenerate %q model", model.ModelType())
	}

	fx := float64(w-1) / (xMax - xMin)
	fy := float64(h-1) / (yMax - yMin)
	kUndistort := mat.NewDense(3, 3, nil)
	kUndistort.Set(0, 0, fx)
	kUndistort.Set(1, 1, fy)
	kUndistort.Set(0, 2, -xMin*fx)
	kUndistort.Set(1, 2, -yMin*fy)
	kUndistort.Set(2, 2, 1)
	return kUndistort, nil
}
