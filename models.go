package stlouisfed

import (
	"fmt"
	"strings"
	"time"
)

// Date is a calendar day as the API serializes it, e.g. "2013-01-01".
type Date struct {
	time.Time
}

// UnmarshalJSON parses a quoted YYYY-MM-DD string. Empty values decode to
// the zero Date.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("stlouisfed: bad date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// MarshalJSON renders the date back as a quoted YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.Format("2006-01-02"))), nil
}

// Shape is one region outline in Well-known text (WKT) format. The geometry
// is passed through verbatim.
type Shape struct {
	Name       string `json:"name"`
	Code       string `json:"code"`
	Centroid   string `json:"centroid"`
	Geometry   string `json:"geometry"`
	ReportName string `json:"report name,omitempty"`
}

// SeriesGroup is the meta information needed to make requests for regional
// data, including the available date range.
type SeriesGroup struct {
	Title       string      `json:"title"`
	RegionType  RegionType  `json:"region_type"`
	SeriesGroup string      `json:"series_group"`
	Season      Seasonality `json:"season"`
	Units       string      `json:"units"`
	Frequency   Frequency   `json:"frequency"`
	MinDate     Date        `json:"min_date"`
	MaxDate     Date        `json:"max_date"`
}

// Observation is one regional value of a cross section. Value is nil when
// the API reports the observation as missing (".").
type Observation struct {
	Region   string
	Code     string
	SeriesID string
	Date     time.Time
	Value    *float64
}
