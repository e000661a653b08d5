package geoplot

import (
	"fmt"
	"log/slog"

	"github.com/couchcryptid/fars-analysis/accident"
	"github.com/couchcryptid/fars-analysis/dataset"
	"github.com/couchcryptid/fars-analysis/observability"
)

// BaseMapRegion is the fixed base-map identifier handed to the renderer.
const BaseMapRegion = "state boundaries"

// Mapper loads one year's accidents, filters them to a single state, and
// hands the resulting point set to a Renderer.
type Mapper struct {
	store    *dataset.Store
	renderer Renderer
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// NewMapper creates a Mapper drawing through the given renderer.
func NewMapper(store *dataset.Store, renderer Renderer, logger *slog.Logger, metrics *observability.Metrics) *Mapper {
	return &Mapper{store: store, renderer: renderer, logger: logger, metrics: metrics}
}

// MapState renders the accident locations for one state and year and returns
// the point set, in file order. State and year may be numeric or strings.
//
// Failure modes: a year that cannot be coerced or whose file is missing
// terminates the call; a state code that cannot be coerced fails with
// accident.InvalidStateError; a code absent from the year's data fails with
// accident.UnknownStateError. A state with rows but no plottable coordinates
// is informational, not an error: the point set is returned and nothing is
// rendered.
func (m *Mapper) MapState(state, year any) ([]Point, error) {
	filename, err := dataset.BuildFilename(year)
	if err != nil {
		return nil, err
	}
	table, err := m.store.LoadYearTable(filename)
	if err != nil {
		return nil, err
	}

	code, err := accident.CoerceState(state)
	if err != nil {
		return nil, err
	}
	if !table.HasState(code) {
		return nil, accident.UnknownStateError{Code: code, Year: table.Year}
	}

	points := make([]Point, 0)
	for _, rec := range table.Records {
		if rec.State != code {
			continue
		}
		lat, lon := rec.SanitizedCoordinates()
		points = append(points, Point{Lon: lon, Lat: lat})
	}

	if len(points) == 0 {
		m.logger.Info("no accidents to plot", "state", code, "year", table.Year)
		return points, nil
	}

	ext, ok := ExtentOf(points)
	if !ok {
		m.logger.Info("no plottable coordinates for state", "state", code, "year", table.Year)
		return points, nil
	}

	latRange := [2]float64{ext.MinLat, ext.MaxLat}
	lonRange := [2]float64{ext.MinLon, ext.MaxLon}
	if err := m.renderer.RenderBaseMap(BaseMapRegion, latRange, lonRange); err != nil {
		return nil, fmt.Errorf("render base map: %w", err)
	}
	if err := m.renderer.OverlayPoints(points, DefaultMarker); err != nil {
		return nil, fmt.Errorf("overlay points: %w", err)
	}

	m.metrics.MapsRendered.Inc()
	m.metrics.PointsPlotted.Observe(float64(len(points)))

	m.logger.Debug("state map rendered",
		"state", code,
		"year", table.Year,
		"points", len(points),
	)
	return points, nil
}
