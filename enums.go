package stlouisfed

// ShapeType selects the shape file collection to fetch.
type ShapeType string

const (
	ShapeBEA            ShapeType = "bea"
	ShapeMSA            ShapeType = "msa"
	ShapeFRB            ShapeType = "frb"
	ShapeNECTA          ShapeType = "necta"
	ShapeState          ShapeType = "state"
	ShapeCountry        ShapeType = "country"
	ShapeCounty         ShapeType = "county"
	ShapeCensusRegion   ShapeType = "censusregion"
	ShapeCensusDivision ShapeType = "censusdivision"
)

var shapeTypes = map[ShapeType]bool{
	ShapeBEA:            true,
	ShapeMSA:            true,
	ShapeFRB:            true,
	ShapeNECTA:          true,
	ShapeState:          true,
	ShapeCountry:        true,
	ShapeCounty:         true,
	ShapeCensusRegion:   true,
	ShapeCensusDivision: true,
}

// RegionType names the kind of region a series group covers.
type RegionType string

const (
	RegionBEA            RegionType = "bea"
	RegionMSA            RegionType = "msa"
	RegionFRB            RegionType = "frb"
	RegionNECTA          RegionType = "necta"
	RegionState          RegionType = "state"
	RegionCountry        RegionType = "country"
	RegionCounty         RegionType = "county"
	RegionCensusRegion   RegionType = "censusregion"
	RegionCensusDivision RegionType = "censusdivision"
)

var regionTypes = map[RegionType]bool{
	RegionBEA:            true,
	RegionMSA:            true,
	RegionFRB:            true,
	RegionNECTA:          true,
	RegionState:          true,
	RegionCountry:        true,
	RegionCounty:         true,
	RegionCensusRegion:   true,
	RegionCensusDivision: true,
}

// Seasonality of a series group.
type Seasonality string

const (
	SeasonallyAdjusted         Seasonality = "SA"
	NotSeasonallyAdjusted      Seasonality = "NSA"
	SmoothedSeasonallyAdjusted Seasonality = "SSA"
)

// Frequency aggregates higher frequency data series into lower frequency
// ones, e.g. a monthly series into an annual one.
type Frequency string

const (
	FrequencyDaily             Frequency = "d"
	FrequencyWeekly            Frequency = "w"
	FrequencyBiweekly          Frequency = "bw"
	FrequencyMonthly           Frequency = "m"
	FrequencyQuarterly         Frequency = "q"
	FrequencySemiannual        Frequency = "sa"
	FrequencyAnnual            Frequency = "a"
	FrequencyWeeklyFriday      Frequency = "wef"
	FrequencyWeeklyThursday    Frequency = "weth"
	FrequencyWeeklyWednesday   Frequency = "wew"
	FrequencyWeeklyTuesday     Frequency = "wetu"
	FrequencyWeeklyMonday      Frequency = "wem"
	FrequencyWeeklySunday      Frequency = "wesu"
	FrequencyWeeklySaturday    Frequency = "wesa"
	FrequencyBiweeklyWednesday Frequency = "bwew"
	FrequencyBiweeklyMonday    Frequency = "bwem"
)

var frequencies = map[Frequency]bool{
	FrequencyDaily:             true,
	FrequencyWeekly:            true,
	FrequencyBiweekly:          true,
	FrequencyMonthly:           true,
	FrequencyQuarterly:         true,
	FrequencySemiannual:        true,
	FrequencyAnnual:            true,
	FrequencyWeeklyFriday:      true,
	FrequencyWeeklyThursday:    true,
	FrequencyWeeklyWednesday:   true,
	FrequencyWeeklyTuesday:     true,
	FrequencyWeeklyMonday:      true,
	FrequencyWeeklySunday:      true,
	FrequencyWeeklySaturday:    true,
	FrequencyBiweeklyWednesday: true,
	FrequencyBiweeklyMonday:    true,
}

// Unit is a data value transformation.
type Unit string

const (
	UnitLin Unit = "lin"
	UnitChg Unit = "chg"
	UnitCh1 Unit = "ch1"
	UnitPch Unit = "pch"
	UnitPc1 Unit = "pc1"
	UnitPca Unit = "pca"
	UnitCch Unit = "cch"
	UnitCca Unit = "cca"
	UnitLog Unit = "log"
)

var units = map[Unit]bool{
	UnitLin: true,
	UnitChg: true,
	UnitCh1: true,
	UnitPch: true,
	UnitPc1: true,
	UnitPca: true,
	UnitCch: true,
	UnitCca: true,
	UnitLog: true,
}

// AggregationMethod converts high frequency values into one low frequency
// value.
type AggregationMethod string

const (
	AggregationAverage     AggregationMethod = "avg"
	AggregationSum         AggregationMethod = "sum"
	AggregationEndOfPeriod AggregationMethod = "eop"
)

var aggregationMethods = map[AggregationMethod]bool{
	AggregationAverage:     true,
	AggregationSum:         true,
	AggregationEndOfPeriod: true,
}
