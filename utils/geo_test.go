package utils

import (
	"testing"

	"github.com/paulmach/orb"
	"go.viam.com/test"
)

func TestUTMCRSFromLatLon(t *testing.T) {
	// Cape Town
	epsg, err := UTMCRSFromLatLon(-33.9, 18.4)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, epsg, test.ShouldEqual, 32734)

	// London
	epsg, err = UTMCRSFromLatLon(51.5, -0.1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, epsg, test.ShouldEqual, 32630)

	// the equator belongs to the northern hemisphere
	epsg, err = UTMCRSFromLatLon(0, 18.4)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, epsg, test.ShouldEqual, 32634)
}

func TestUTMZoneBoundaries(t *testing.T) {
	// a longitude on a zone boundary belongs to the zone east of it
	zone, err := UTMZoneFromLatLon(0, -174)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, zone, test.ShouldEqual, 2)

	zone, err = UTMZoneFromLatLon(0, -180)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, zone, test.ShouldEqual, 1)

	// the antimeridian wraps back to zone 1
	zone, err = UTMZoneFromLatLon(0, 180)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, zone, test.ShouldEqual, 1)
}

func TestUTMCRSRangeChecks(t *testing.T) {
	_, err := UTMCRSFromLatLon(91, 0)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = UTMCRSFromLatLon(-91, 0)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = UTMCRSFromLatLon(0, 181)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = UTMCRSFromLatLon(0, -181)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestUTMCRSFromPoint(t *testing.T) {
	epsg, err := UTMCRSFromPoint(orb.Point{18.4, -33.9})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, epsg, test.ShouldEqual, 32734)
}
