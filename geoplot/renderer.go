// Package geoplot filters one state's accident locations and renders them as
// a scatter against a base map.
package geoplot

import "math"

// Point is one accident location as (longitude, latitude). A nil coordinate
// was a FARS sentinel: the point stays in the set but is skipped by the
// extent computation and by renderers.
type Point struct {
	Lon *float64
	Lat *float64
}

// Missing reports whether either coordinate is absent.
func (p Point) Missing() bool {
	return p.Lon == nil || p.Lat == nil
}

// Extent is the bounding box of a point set's non-missing coordinates.
type Extent struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// MarkerStyle controls how a renderer draws each point.
type MarkerStyle struct {
	Glyph string
	Color string // ANSI 256 color code
}

// DefaultMarker is a small dot, mirroring the tiny pch used in the original
// state plots.
var DefaultMarker = MarkerStyle{Glyph: ".", Color: "196"}

// Renderer is the external drawing collaborator. The mapper first draws the
// base map at an extent, then overlays the point set as small markers.
type Renderer interface {
	RenderBaseMap(region string, latRange, lonRange [2]float64) error
	OverlayPoints(points []Point, style MarkerStyle) error
}

// ExtentOf computes the bounding extent of the non-missing coordinates in a
// point set. Latitude and longitude ranges accumulate independently, so a
// point with one sentinel coordinate still widens the other axis. The second
// return value is false when either axis has no recorded value at all.
func ExtentOf(points []Point) (Extent, bool) {
	ext := Extent{
		MinLat: math.Inf(1), MaxLat: math.Inf(-1),
		MinLon: math.Inf(1), MaxLon: math.Inf(-1),
	}
	latFound, lonFound := false, false
	for _, p := range points {
		if p.Lat != nil {
			latFound = true
			ext.MinLat = math.Min(ext.MinLat, *p.Lat)
			ext.MaxLat = math.Max(ext.MaxLat, *p.Lat)
		}
		if p.Lon != nil {
			lonFound = true
			ext.MinLon = math.Min(ext.MinLon, *p.Lon)
			ext.MaxLon = math.Max(ext.MaxLon, *p.Lon)
		}
	}
	if !latFound || !lonFound {
		return Extent{}, false
	}
	return ext, true
}
