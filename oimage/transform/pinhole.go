package transform

import (
	"gonum.org/v1/gonum/mat"
)

// PinholeCameraIntrinsics holds the parameters of a perspective projection
// from normalized camera rays to the 2D pixel plane.
type PinholeCameraIntrinsics struct {
	Width  int     `json:"width_px"`
	Height int     `json:"height_px"`
	Fx     float64 `json:"fx"`
	Fy     float64 `json:"fy"`
	Ppx    float64 `json:"ppx"`
	Ppy    float64 `json:"ppy"`
}

// CheckValid checks if the fields for PinholeCameraIntrinsics have valid inputs.
func (params *PinholeCameraIntrinsics) CheckValid() error {
	if params.Width <= 0 || params.Height <= 0 {
		return NewInvalidParameterError("invalid image size (%d, %d)", params.Width, params.Height)
	}
	if params.Fx <= 0 {
		return NewInvalidParameterError("invalid focal length Fx = %v", params.Fx)
	}
	if params.Fy <= 0 {
		return NewInvalidParameterError("invalid focal length Fy = %v", params.Fy)
	}
	if params.Ppx < 0 {
		return NewInvalidParameterError("invalid principal X point Ppx = %v", params.Ppx)
	}
	if params.Ppy < 0 {
		return NewInvalidParameterError("invalid principal Y point Ppy = %v", params.Ppy)
	}
	return nil
}

// GetCameraMatrix creates a new camera matrix and returns it.
// Camera matrix:
// [[fx 0 ppx],
//
//	[0 fy ppy],
//	[0 0  1]]
func (params *PinholeCameraIntrinsics) GetCameraMatrix() *mat.Dense {
	cameraMatrix := mat.NewDense(3, 3, nil)
	cameraMatrix.Set(0, 0, params.Fx)
	cameraMatrix.Set(1, 1, params.Fy)
	cameraMatrix.Set(0, 2, params.Ppx)
	cameraMatrix.Set(1, 2, params.Ppy)
	cameraMatrix.Set(2, 2, 1)
	return cameraMatrix
}

// Pinhole is the identity distortion law of an ideal pinhole camera.
type Pinhole struct{}

// NewPinhole returns the pinhole distortion law. The model takes no
// coefficients.
func NewPinhole(parameters []float64) (*Pinhole, error) {
	if len(parameters) != 0 {
		return nil, NewInvalidParameterError("pinhole model takes no distortion coefficients, got %d", len(parameters))
	}
	return &Pinhole{}, nil
}

// ModelType returns the type of camera model.
func (p *Pinhole) ModelType() CameraType {
	return PinholeCameraType
}

// Parameters returns the parameters of the distortion model as a list of floats.
func (p *Pinhole) Parameters() []float64 {
	return []float64{}
}

// Distort is the identity for a pinhole camera.
func (p *Pinhole) Distort(x, y float64) (float64, float64) {
	return x, y
}

// Undistort is the identity for a pinhole camera.
func (p *Pinhole) Undistort(x, y float64) (float64, float64) {
	return x, y
}
