package insights

import "github.com/kirankarlapati/fruitanalyser/internal/prediction"

// Overview holds the headline numbers of one snapshot.
// LabelCounts, LabelPercentages and AvgConfidence are sparse: a label
// with no scans never appears as a key.
type Overview struct {
	TotalScans       int                `json:"totalScans"`
	RecentScans      int                `json:"recentScans"`
	LabelCounts      map[string]int     `json:"labelCounts"`
	LabelPercentages map[string]float64 `json:"labelPercentages"`
	AvgConfidence    map[string]float64 `json:"avgConfidence"`
}

// TimeSeriesBucket is one calendar day (UTC) of the 30-day series.
// All three labels are always present so chart consumers can plot
// fixed series without key checks.
type TimeSeriesBucket struct {
	Date        string `json:"date"`
	Fresh       int    `json:"Fresh"`
	SemiSpoiled int    `json:"Semi-Spoiled"`
	Spoiled     int    `json:"Spoiled"`
}

// Snapshot is the full analytics result of one aggregation call.
// It is derived on demand and never persisted.
type Snapshot struct {
	Overview         Overview           `json:"overview"`
	TimeSeries       []TimeSeriesBucket `json:"timeSeries"`
	HourDistribution map[int]int        `json:"hourDistribution"`
}

// Summary is the dense counterpart of Overview: every fixed label is
// present with a zero default.
type Summary struct {
	TotalScans       int                    `json:"totalScans"`
	FreshCount       int                    `json:"freshCount"`
	SemiSpoiledCount int                    `json:"semiSpoiledCount"`
	SpoiledCount     int                    `json:"spoiledCount"`
	LatestScan       *prediction.Prediction `json:"latestScan"`
}
