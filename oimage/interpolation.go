package oimage

import (
	"math"

	"github.com/golang/geo/r2"
)

// Kernel samples one band of an image at a fractional pixel coordinate.
// It returns false when the coordinate is non-finite or outside the image
// support, in which case the caller substitutes its nodata value.
type Kernel func(img *Image, band int, pt r2.Point) (float64, bool)

func inSupport(img *Image, pt r2.Point) bool {
	if math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) {
		return false
	}
	return pt.X >= 0 && pt.X <= float64(img.Width-1) && pt.Y >= 0 && pt.Y <= float64(img.Height-1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NearestKernel samples the nearest pixel. The support extends half a pixel
// beyond the image so that any coordinate rounding into the image is valid.
func NearestKernel(img *Image, band int, pt r2.Point) (float64, bool) {
	if math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) {
		return 0, false
	}
	x := int(math.Round(pt.X))
	y := int(math.Round(pt.Y))
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return 0, false
	}
	return img.At(band, x, y), true
}

// BilinearKernel samples with bilinear interpolation over the 2x2 neighborhood.
func BilinearKernel(img *Image, band int, pt r2.Point) (float64, bool) {
	if !inSupport(img, pt) {
		return 0, false
	}
	x0 := int(math.Floor(pt.X))
	y0 := int(math.Floor(pt.Y))
	x1 := clampInt(x0+1, 0, img.Width-1)
	y1 := clampInt(y0+1, 0, img.Height-1)
	fx := pt.X - float64(x0)
	fy := pt.Y - float64(y0)

	top := img.At(band, x0, y0)*(1-fx) + img.At(band, x1, y0)*fx
	bottom := img.At(band, x0, y1)*(1-fx) + img.At(band, x1, y1)*fx
	return top*(1-fy) + bottom*fy, true
}

// catmullRom is the cardinal cubic weight with a = -0.5.
func catmullRom(t float64) float64 {
	t = math.Abs(t)
	switch {
	case t <= 1:
		return ((1.5*t-2.5)*t)*t + 1
	case t < 2:
		return ((-0.5*t+2.5)*t-4)*t + 2
	default:
		return 0
	}
}

// CubicKernel samples with Catmull-Rom bicubic interpolation over the 4x4
// neighborhood, replicating border pixels.
func CubicKernel(img *Image, band int, pt r2.Point) (float64, bool) {
	if !inSupport(img, pt) {
		return 0, false
	}
	x0 := int(math.Floor(pt.X))
	y0 := int(math.Floor(pt.Y))

	var sum float64
	for m := -1; m <= 2; m++ {
		y := clampInt(y0+m, 0, img.Height-1)
		wy := catmullRom(pt.Y - float64(y0+m))
		if wy == 0 {
			continue
		}
		var row float64
		for n := -1; n <= 2; n++ {
			x := clampInt(x0+n, 0, img.Width-1)
			row += img.At(band, x, y) * catmullRom(pt.X-float64(x0+n))
		}
		sum += row * wy
	}
	return sum, true
}

// lanczosA is the window half-width of the Lanczos kernel. 4 matches the
// windowed sinc used by the remap backend this module stands in for.
const lanczosA = 4

func lanczos(t float64) float64 {
	t = math.Abs(t)
	if t >= lanczosA {
		return 0
	}
	if t < 1e-12 {
		return 1
	}
	pt := math.Pi * t
	return lanczosA * math.Sin(pt) * math.Sin(pt/lanczosA) / (pt * pt)
}

// LanczosKernel samples with Lanczos windowed sinc interpolation over the 8x8
// neighborhood, replicating border pixels. Weights are renormalized so that a
// uniform image is reproduced exactly.
func LanczosKernel(img *Image, band int, pt r2.Point) (float64, bool) {
	if !inSupport(img, pt) {
		return 0, false
	}
	x0 := int(math.Floor(pt.X))
	y0 := int(math.Floor(pt.Y))

	var sum, weight float64
	for m := -lanczosA + 1; m <= lanczosA; m++ {
		wy := lanczos(pt.Y - float64(y0+m))
		if wy == 0 {
			continue
		}
		y := clampInt(y0+m, 0, img.Height-1)
		for n := -lanczosA + 1; n <= lanczosA; n++ {
			wx := lanczos(pt.X - float64(x0+n))
			if wx == 0 {
				continue
			}
			x := clampInt(x0+n, 0, img.Width-1)
			sum += img.At(band, x, y) * wx * wy
			weight += wx * wy
		}
	}
	if weight == 0 {
		return 0, false
	}
	return sum / weight, true
}
