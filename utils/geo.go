package utils

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// UTMZoneFromLatLon returns the UTM longitudinal zone (1-60) containing the
// given geographic coordinates in degrees. Zone boundaries follow the floor
// convention, so a longitude on a boundary belongs to the zone east of it.
func UTMZoneFromLatLon(lat, lon float64) (int, error) {
	if lat < -90 || lat > 90 {
		return 0, errors.Errorf("latitude should be in [-90, 90], got %v", lat)
	}
	if lon < -180 || lon > 180 {
		return 0, errors.Errorf("longitude should be in [-180, 180], got %v", lon)
	}
	zone := int(math.Floor((lon+180)/6))%60 + 1
	return zone, nil
}

// UTMCRSFromLatLon returns the EPSG code of the UTM CRS covering the given
// geographic coordinates in degrees. A latitude of exactly zero selects the
// northern hemisphere.
func UTMCRSFromLatLon(lat, lon float64) (int, error) {
	zone, err := UTMZoneFromLatLon(lat, lon)
	if err != nil {
		return 0, err
	}
	if lat >= 0 {
		return 32600 + zone, nil
	}
	return 32700 + zone, nil
}

// UTMCRSFromPoint returns the EPSG code of the UTM CRS covering the given
// geographic point. orb points are (lon, lat) ordered.
func UTMCRSFromPoint(pt orb.Point) (int, error) {
	return UTMCRSFromLatLon(pt.Lat(), pt.Lon())
}
