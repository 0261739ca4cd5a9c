package oimage

import (
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Interp is the name of an interpolation method.
type Interp string

const (
	// InterpAverage averages input pixels over the corresponding output pixel
	// area (suited to downsampling).
	InterpAverage = Interp("average")
	// InterpBilinear is bilinear interpolation.
	InterpBilinear = Interp("bilinear")
	// InterpCubic is bicubic (Catmull-Rom) interpolation.
	InterpCubic = Interp("cubic")
	// InterpLanczos is Lanczos windowed sinc interpolation.
	InterpLanczos = Interp("lanczos")
	// InterpNearest is nearest neighbor interpolation.
	InterpNearest = Interp("nearest")
)

// ErrUnsupportedMethod is used when a resampling backend has no equivalent for
// the requested interpolation method.
var ErrUnsupportedMethod = errors.New("unsupported interpolation method")

// NewUnsupportedMethodError wraps ErrUnsupportedMethod with the method and
// backend that rejected it.
func NewUnsupportedMethodError(interp Interp, backend string) error {
	return errors.Wrapf(ErrUnsupportedMethod, "%s backend has no equivalent for %q", backend, interp)
}

// AllInterps lists every member of the interpolation enumeration.
func AllInterps() []Interp {
	return []Interp{InterpAverage, InterpBilinear, InterpCubic, InterpLanczos, InterpNearest}
}

// RemapKernel converts the method to the point-sampling kernel used by the
// per-pixel remap backend. An area average has no meaning for a point lookup,
// so InterpAverage degrades to the bilinear kernel, matching the fallback
// OpenCV's remap applies for INTER_AREA.
func (i Interp) RemapKernel() (Kernel, error) {
	switch i {
	case InterpAverage, InterpBilinear:
		return BilinearKernel, nil
	case InterpCubic:
		return CubicKernel, nil
	case InterpLanczos:
		return LanczosKernel, nil
	case InterpNearest:
		return NearestKernel, nil
	default:
		return nil, NewUnsupportedMethodError(i, "remap")
	}
}

// ResampleFilter converts the method to the equivalent filter of the
// whole-raster resampling backend.
func (i Interp) ResampleFilter() (imaging.ResampleFilter, error) {
	switch i {
	case InterpAverage:
		return imaging.Box, nil
	case InterpBilinear:
		return imaging.Linear, nil
	case InterpCubic:
		return imaging.CatmullRom, nil
	case InterpLanczos:
		return imaging.Lanczos, nil
	case InterpNearest:
		return imaging.NearestNeighbor, nil
	default:
		return imaging.ResampleFilter{}, NewUnsupportedMethodError(i, "resample")
	}
}

// RemapInterps lists the methods the remap backend supports.
func RemapInterps() []Interp {
	var supported []Interp
	for _, interp := range AllInterps() {
		if _, err := interp.RemapKernel(); err == nil {
			supported = append(supported, interp)
		}
	}
	return supported
}

// ResampleInterps lists the methods the whole-raster resampling backend
// supports.
func ResampleInterps() []Interp {
	var supported []Interp
	for _, interp := range AllInterps() {
		if _, err := interp.ResampleFilter(); err == nil {
			supported = append(supported, interp)
		}
	}
	return supported
}
