package transform

import "math"

// OpenCVGeneral is the general OpenCV distortion law with radial, tangential,
// rational and thin-prism terms. Coefficients follow the OpenCV ordering
// k1, k2, p1, p2, k3, k4, k5, k6, s1, s2, s3, s4; the 4, 5 and 8 coefficient
// prefixes are accepted with the remaining terms zero.
type OpenCVGeneral struct {
	RadialK1     float64 `json:"rk1"`
	RadialK2     float64 `json:"rk2"`
	TangentialP1 float64 `json:"tp1"`
	TangentialP2 float64 `json:"tp2"`
	RadialK3     float64 `json:"rk3"`
	RationalK4   float64 `json:"rk4"`
	RationalK5   float64 `json:"rk5"`
	RationalK6   float64 `json:"rk6"`
	ThinPrismS1  float64 `json:"s1"`
	ThinPrismS2  float64 `json:"s2"`
	ThinPrismS3  float64 `json:"s3"`
	ThinPrismS4  float64 `json:"s4"`
}

// NewOpenCVGeneral takes 4, 5, 8 or 12 coefficients in OpenCV order and
// returns the distortion law.
func NewOpenCVGeneral(parameters []float64) (*OpenCVGeneral, error) {
	switch len(parameters) {
	case 4, 5, 8, 12:
	default:
		return nil, NewInvalidParameterError("opencv model expects 4, 5, 8 or 12 distortion coefficients, got %d", len(parameters))
	}
	padded := make([]float64, 12)
	copy(padded, parameters)
	return &OpenCVGeneral{
		RadialK1:     padded[0],
		RadialK2:     padded[1],
		TangentialP1: padded[2],
		TangentialP2: padded[3],
		RadialK3:     padded[4],
		RationalK4:   padded[5],
		RationalK5:   padded[6],
		RationalK6:   padded[7],
		ThinPrismS1:  padded[8],
		ThinPrismS2:  padded[9],
		ThinPrismS3:  padded[10],
		ThinPrismS4:  padded[11],
	}, nil
}

// ModelType returns the type of camera model.
func (cv *OpenCVGeneral) ModelType() CameraType {
	return OpenCVCameraType
}

// Parameters returns the parameters of the distortion model as a list of floats.
func (cv *OpenCVGeneral) Parameters() []float64 {
	return []float64{
		cv.RadialK1, cv.RadialK2, cv.TangentialP1, cv.TangentialP2, cv.RadialK3,
		cv.RationalK4, cv.RationalK5, cv.RationalK6,
		cv.ThinPrismS1, cv.ThinPrismS2, cv.ThinPrismS3, cv.ThinPrismS4,
	}
}

// Distort applies the forward general law:
//
//	rad  = (1 + k1*r² + k2*r⁴ + k3*r⁶) / (1 + k4*r² + k5*r⁴ + k6*r⁶)
//	x_d  = x_u*rad + 2*p1*x_u*y_u + p2*(r² + 2*x_u²) + s1*r² + s2*r⁴
//	y_d  = y_u*rad + p1*(r² + 2*y_u²) + 2*p2*x_u*y_u + s3*r² + s4*r⁴
func (cv *OpenCVGeneral) Distort(xu, yu float64) (float64, float64) {
	r2 := xu*xu + yu*yu
	r4 := r2 * r2
	r6 := r4 * r2
	rad := (1.0 + cv.RadialK1*r2 + cv.RadialK2*r4 + cv.RadialK3*r6) /
		(1.0 + cv.RationalK4*r2 + cv.RationalK5*r4 + cv.RationalK6*r6)
	xd := xu*rad + 2.0*cv.TangentialP1*xu*yu + cv.TangentialP2*(r2+2.0*xu*xu) +
		cv.ThinPrismS1*r2 + cv.ThinPrismS2*r4
	yd := yu*rad + cv.TangentialP1*(r2+2.0*yu*yu) + 2.0*cv.TangentialP2*xu*yu +
		cv.ThinPrismS3*r2 + cv.ThinPrismS4*r4
	return xd, yd
}

// Undistort inverts the general law with the compensation fixed-point
// iteration used by OpenCV's undistortPoints: the tangential and thin-prism
// deltas are subtracted and the radial factor divided out at each step.
// Points where the rational factor degenerates produce NaN coordinates.
func (cv *OpenCVGeneral) Undistort(xd, yd float64) (float64, float64) {
	xu, yu := xd, yd

	const maxIterations = 40
	const tolerance = 1e-12

	for i := 0; i < maxIterations; i++ {
		r2 := xu*xu + yu*yu
		r4 := r2 * r2
		r6 := r4 * r2
		num := 1.0 + cv.RationalK4*r2 + cv.RationalK5*r4 + cv.RationalK6*r6
		den := 1.0 + cv.RadialK1*r2 + cv.RadialK2*r4 + cv.RadialK3*r6
		if den == 0 || num/den <= 0 {
			return math.NaN(), math.NaN()
		}
		icdist := num / den
		deltaX := 2.0*cv.TangentialP1*xu*yu + cv.TangentialP2*(r2+2.0*xu*xu) +
			cv.ThinPrismS1*r2 + cv.ThinPrismS2*r4
		deltaY := cv.TangentialP1*(r2+2.0*yu*yu) + 2.0*cv.TangentialP2*xu*yu +
			cv.ThinPrismS3*r2 + cv.ThinPrismS4*r4

		xNext := (xd - deltaX) * icdist
		yNext := (yd - deltaY) * icdist
		dx := xNext - xu
		dy := yNext - yu
		xu, yu = xNext, yNext
		if dx*dx+dy*dy < tolerance*tolerance {
			break
		}
	}
	return xu, yu
}
