package stlouisfed

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"time"
)

// GeoFRED is a client for the GeoFRED web service, which serves regional
// data and shape files hosted by the Economic Research Division of the
// Federal Reserve Bank of St. Louis.
//
// https://geofred.stlouisfed.org/
// https://geofred.stlouisfed.org/docs/api/geofred/
type GeoFRED struct {
	api *apiClient
}

// NewGeoFRED returns a client authenticated with the given API key. The key
// must be a 32 character alphanumeric string; it is lowercased before use.
func NewGeoFRED(apiKey string, opts ...APIOption) (*GeoFRED, error) {
	api, err := newAPIClient(normalizeAPIKey(apiKey), opts...)
	if err != nil {
		return nil, err
	}
	return &GeoFRED{api: api}, nil
}

func normalizeAPIKey(key string) string {
	b := []byte(key)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

// Shapes returns shape files from GeoFRED in Well-known text (WKT) format.
//
// https://geofred.stlouisfed.org/docs/api/geofred/shapes.html
func (g *GeoFRED) Shapes(shape ShapeType) ([]Shape, error) {
	if !shapeTypes[shape] {
		return nil, fmt.Errorf("stlouisfed: unknown shape type %q", shape)
	}
	params := url.Values{}
	params.Set("shape", string(shape))

	// The response object is keyed by the requested shape type.
	var payload map[string][]Shape
	if err := g.api.get("/geofred/shapes/file", params, &payload); err != nil {
		return nil, err
	}
	return payload[string(shape)], nil
}

// SeriesGroup returns the meta information needed to make requests for
// GeoFRED data, including the available date range.
//
// https://geofred.stlouisfed.org/docs/api/geofred/series_group.html
func (g *GeoFRED) SeriesGroup(seriesID string) (SeriesGroup, error) {
	params := url.Values{}
	params.Set("series_id", seriesID)

	var payload struct {
		SeriesGroup []SeriesGroup `json:"series_group"`
	}
	if err := g.api.get("/geofred/series/group", params, &payload); err != nil {
		return SeriesGroup{}, err
	}
	if len(payload.SeriesGroup) == 0 {
		return SeriesGroup{}, fmt.Errorf("stlouisfed: no series group for %s", seriesID)
	}
	return payload.SeriesGroup[0], nil
}

// SeriesData returns a cross section of regional data for a specified
// release date. A zero date requests the most recent data available.
//
// https://geofred.stlouisfed.org/docs/api/geofred/series_data.html
func (g *GeoFRED) SeriesData(seriesID string, date, startDate time.Time) ([]Observation, error) {
	if date.IsZero() {
		date = time.Now()
	}
	if startDate.IsZero() {
		startDate = time.Now()
	}
	params := url.Values{}
	params.Set("series_id", seriesID)
	params.Set("date", date.Format("2006-01-02"))
	params.Set("start_date", startDate.Format("2006-01-02"))

	return g.getObservations("/geofred/series/data", params)
}

// RegionalDataRequest selects a cross section of regional data.
type RegionalDataRequest struct {
	// SeriesGroup is the ID for a group of series found in GeoFRED.
	SeriesGroup string
	// RegionType of the regions to pull data for.
	RegionType RegionType
	// Date of the cross section.
	Date time.Time
	// Season of the series group.
	Season Seasonality
	// Units of the series, e.g. "Dollars". Defaults to "Dollars", the
	// upstream documentation is missing here.
	Units string
	// StartDate allows pulling a range of data. Defaults to today.
	StartDate time.Time
	// Frequency optionally aggregates values to a lower frequency.
	Frequency Frequency
	// Transformation of the data values. Defaults to UnitLin.
	Transformation Unit
	// AggregationMethod used with Frequency. Defaults to
	// AggregationAverage.
	AggregationMethod AggregationMethod
}

// RegionalData returns a cross section of regional data.
//
// https://geofred.stlouisfed.org/docs/api/geofred/regional_data.html
func (g *GeoFRED) RegionalData(req RegionalDataRequest) ([]Observation, error) {
	if req.Units == "" {
		req.Units = "Dollars"
	}
	if req.Transformation == "" {
		req.Transformation = UnitLin
	}
	if req.AggregationMethod == "" {
		req.AggregationMethod = AggregationAverage
	}
	if req.StartDate.IsZero() {
		req.StartDate = time.Now()
	}
	if !regionTypes[req.RegionType] {
		return nil, fmt.Errorf("stlouisfed: unknown region type %q", req.RegionType)
	}
	if req.Frequency != "" && !frequencies[req.Frequency] {
		return nil, fmt.Errorf("stlouisfed: unknown frequency %q", req.Frequency)
	}
	if !units[req.Transformation] {
		return nil, fmt.Errorf("stlouisfed: unknown transformation %q", req.Transformation)
	}
	if !aggregationMethods[req.AggregationMethod] {
		return nil, fmt.Errorf("stlouisfed: unknown aggregation method %q", req.AggregationMethod)
	}

	params := url.Values{}
	params.Set("series_group", req.SeriesGroup)
	params.Set("region_type", string(req.RegionType))
	params.Set("date", req.Date.Format("2006-01-02"))
	params.Set("season", string(req.Season))
	params.Set("units", req.Units)
	params.Set("start_date", req.StartDate.Format("2006-01-02"))
	params.Set("transformation", string(req.Transformation))
	params.Set("aggregation_method", string(req.AggregationMethod))
	if req.Frequency != "" {
		params.Set("frequency", string(req.Frequency))
	}

	return g.getObservations("/geofred/regional/data", params)
}

// observationRow is the wire form of a single regional value; observed
// values come back as strings, missing ones as ".".
type observationRow struct {
	Region   string `json:"region"`
	Code     string `json:"code"`
	Value    string `json:"value"`
	SeriesID string `json:"series_id"`
}

// getObservations flattens the date-keyed rows of a data response into one
// slice, ordered by date.
func (g *GeoFRED) getObservations(path string, params url.Values) ([]Observation, error) {
	var payload struct {
		Meta struct {
			Data map[string][]observationRow `json:"data"`
		} `json:"meta"`
	}
	if err := g.api.get(path, params, &payload); err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(payload.Meta.Data))
	for d := range payload.Meta.Data {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	var obs []Observation
	for _, d := range dates {
		t, err := time.Parse("2006-01-02", d)
		if err != nil {
			return nil, fmt.Errorf("stlouisfed: bad date key %q: %w", d, err)
		}
		for _, row := range payload.Meta.Data[d] {
			o := Observation{
				Region:   row.Region,
				Code:     row.Code,
				SeriesID: row.SeriesID,
				Date:     t,
			}
			if row.Value != "" && row.Value != "." {
				v, err := strconv.ParseFloat(row.Value, 64)
				if err != nil {
					return nil, fmt.Errorf("stlouisfed: bad value %q: %w", row.Value, err)
				}
				o.Value = &v
			}
			obs = append(obs, o)
		}
	}
	return obs, nil
}
