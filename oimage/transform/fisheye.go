package transform

import (
	"math"

	"github.com/pkg/errors"
)

// fisheyeThetaMax bounds the incidence angle the model inverts. Rays beyond
// pi/2 fall behind the image plane of the equivalent central projection.
const fisheyeThetaMax = math.Pi / 2

// Fisheye is the equidistant fisheye distortion law:
//
//	theta_d = theta * (1 + k1*theta² + k2*theta⁴ + k3*theta⁶ + k4*theta⁸)
//
// where theta is the angle between the incoming ray and the optical axis.
type Fisheye struct {
	K1 float64 `json:"k1"`
	K2 float64 `json:"k2"`
	K3 float64 `json:"k3"`
	K4 float64 `json:"k4"`
}

// NewFisheye takes the 4 coefficients k1..k4 and returns the distortion law.
func NewFisheye(parameters []float64) (*Fisheye, error) {
	if len(parameters) != 4 {
		return nil, NewInvalidParameterError("fisheye model expects 4 distortion coefficients, got %d", len(parameters))
	}
	return &Fisheye{parameters[0], parameters[1], parameters[2], parameters[3]}, nil
}

// ModelType returns the type of camera model.
func (f *Fisheye) ModelType() CameraType {
	return FisheyeCameraType
}

// Parameters returns the parameters of the distortion model as a list of floats.
func (f *Fisheye) Parameters() []float64 {
	return []float64{f.K1, f.K2, f.K3, f.K4}
}

func (f *Fisheye) distortedTheta(theta float64) float64 {
	t2 := theta * theta
	return theta * (1.0 + t2*(f.K1+t2*(f.K2+t2*(f.K3+t2*f.K4))))
}

// Distort applies the forward fisheye law to undistorted normalized
// coordinates of the equivalent central projection.
func (f *Fisheye) Distort(xu, yu float64) (float64, float64) {
	r := math.Hypot(xu, yu)
	theta := math.Atan(r)
	thetaD := f.distortedTheta(theta)
	if r < 1e-12 {
		return xu, yu
	}
	scale := thetaD / r
	return xu * scale, yu * scale
}

// UndistortPoint inverts the fisheye law for one distorted normalized point.
// It fails with ErrOutOfRange when the recovered incidence angle exceeds the
// model's field-of-view bound.
func (f *Fisheye) UndistortPoint(xd, yd float64) (float64, float64, error) {
	rd := math.Hypot(xd, yd)
	if rd < 1e-12 {
		return xd, yd, nil
	}

	// Newton iterations on theta, seeded with the distorted angle.
	theta := rd
	const maxIterations = 20
	const tolerance = 1e-12
	for i := 0; i < maxIterations; i++ {
		t2 := theta * theta
		poly := 1.0 + t2*(f.K1+t2*(f.K2+t2*(f.K3+t2*f.K4)))
		dPoly := 2.0 * theta * (f.K1 + t2*(2.0*f.K2+t2*(3.0*f.K3+t2*4.0*f.K4)))
		err := theta*poly - rd
		if math.Abs(err) < tolerance {
			break
		}
		deriv := poly + theta*dPoly
		if deriv == 0 {
			break
		}
		theta -= err / deriv
	}

	if !(theta >= 0 && theta <= fisheyeThetaMax) || math.IsNaN(theta) {
		return math.NaN(), math.NaN(),
			errors.Wrapf(ErrOutOfRange, "incidence angle %v exceeds the fisheye field of view", theta)
	}
	scale := math.Tan(theta) / rd
	return xd * scale, yd * scale, nil
}

// Undistort inverts the fisheye law, writing NaN coordinates for points
// outside the field-of-view bound so that remapping degrades them to nodata.
func (f *Fisheye) Undistort(xd, yd float64) (float64, float64) {
	xu, yu, err := f.UndistortPoint(xd, yd)
	if err != nil {
		return math.NaN(), math.NaN()
	}
	return xu, yu
}
