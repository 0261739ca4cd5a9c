// Package transform implements the camera optical models and the distortion
// remapping engine of the orthorectification core.
package transform

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// CameraType is the name of the camera optical model.
type CameraType string

const (
	// PinholeCameraType is an ideal central projection with no distortion.
	PinholeCameraType = CameraType("pinhole")
	// BrownCameraType is the Brown-Conrady radial + tangential model,
	// compatible with ODM / OpenSfM "brown" estimates and the 4 & 5
	// coefficient form of the general OpenCV model.
	BrownCameraType = CameraType("brown")
	// FisheyeCameraType is the equidistant fisheye model for wide-angle
	// lenses, compatible with ODM / OpenSfM and OpenCV fisheye estimates.
	FisheyeCameraType = CameraType("fisheye")
	// OpenCVCameraType is the general OpenCV model with rational and
	// thin-prism terms, a superset of BrownCameraType.
	OpenCVCameraType = CameraType("opencv")
)

// ErrInvalidParameter is used when calibration input is malformed.
var ErrInvalidParameter = errors.New("invalid camera parameters")

// ErrDimensionMismatch is used when an image does not match the camera's
// declared image size.
var ErrDimensionMismatch = errors.New("image dimensions do not match the camera image size")

// ErrOutOfRange is used when a coordinate falls outside a model's valid
// numerical domain.
var ErrOutOfRange = errors.New("coordinate outside the camera model's valid domain")

// NewInvalidParameterError wraps ErrInvalidParameter with a description of the
// malformed input.
func NewInvalidParameterError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidParameter, format, args...)
}

// Distortion models a lens distortion law on the normalized image plane.
type Distortion interface {
	ModelType() CameraType
	Parameters() []float64
	// Distort maps undistorted normalized coordinates to distorted ones.
	Distort(x, y float64) (float64, float64)
	// Undistort inverts Distort. It returns NaN coordinates for points it
	// cannot invert; callers treat those as per-sample nodata.
	Undistort(x, y float64) (float64, float64)
}

// Camera is one camera's optics: fixed image size, intrinsics and a
// distortion law. Implementations are immutable and safe for concurrent use.
type Camera interface {
	Type() CameraType
	ImageSize() (width, height int)
	// PixelToCameraRay converts 2xN distorted pixel (column, row)
	// coordinates to 3xN normalized camera ray coordinates with z = 1,
	// applying the inverse distortion law. Non-finite outputs mark
	// per-sample failures and are not errors.
	PixelToCameraRay(ji *mat.Dense) (*mat.Dense, error)
	// UndistortCameraMatrix returns the 3x3 intrinsic matrix of the
	// equivalent ideal camera used as the undistorted reference frame.
	UndistortCameraMatrix() *mat.Dense
}

// NewCamera returns a Camera given a valid CameraType, intrinsics and the
// distortion coefficients the model expects.
func NewCamera(cameraType CameraType, intrinsics PinholeCameraIntrinsics, distortion []float64) (Camera, error) {
	if err := intrinsics.CheckValid(); err != nil {
		return nil, err
	}
	var model Distortion
	var err error
	switch cameraType {
	case PinholeCameraType:
		model, err = NewPinhole(distortion)
	case BrownCameraType:
		model, err = NewBrownConrady(distortion)
	case FisheyeCameraType:
		model, err = NewFisheye(distortion)
	case OpenCVCameraType:
		model, err = NewOpenCVGeneral(distortion)
	default:
		return nil, NewInvalidParameterError("do not know how to construct a %q camera model", cameraType)
	}
	if err != nil {
		return nil, err
	}
	return newFrameCamera(intrinsics, model)
}

// frameCamera composes intrinsics with a distortion law and the derived
// undistort camera matrix.
type frameCamera struct {
	intrinsics PinholeCameraIntrinsics
	model      Distortion
	kUndistort *mat.Dense
}

func newFrameCamera(intrinsics PinholeCameraIntrinsics, model Distortion) (*frameCamera, error) {
	kUndistort, err := undistortCameraMatrix(intrinsics, model)
	if err != nil {
		return nil, err
	}
	return &frameCamera{intrinsics: intrinsics, model: model, kUndistort: kUndistort}, nil
}

func (fc *frameCamera) Type() CameraType {
	return fc.model.ModelType()
}

func (fc *frameCamera) ImageSize() (int, int) {
	return fc.intrinsics.Width, fc.intrinsics.Height
}

func (fc *frameCamera) UndistortCameraMatrix() *mat.Dense {
	return mat.DenseCopyOf(fc.kUndistort)
}

func (fc *frameCamera) PixelToCameraRay(ji *mat.Dense) (*mat.Dense, error) {
	r, n := ji.Dims()
	if r != 2 {
		return nil, NewInvalidParameterError("pixel coordinates should be 2xN, got %dx%d", r, n)
	}
	rays := mat.NewDense(3, n, nil)
	for k := 0; k < n; k++ {
		xd := (ji.At(0, k) - fc.intrinsics.Ppx) / fc.intrinsics.Fx
		yd := (ji.At(1, k) - fc.intrinsics.Ppy) / fc.intrinsics.Fy
		xu, yu := fc.model.Undistort(xd, yd)
		rays.Set(0, k, xu)
		rays.Set(1, k, yu)
		rays.Set(2, k, 1)
	}
	return rays, nil
}
