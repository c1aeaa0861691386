package insights

import (
	"math"
	"sort"
	"time"

	"github.com/kirankarlapati/fruitanalyser/internal/prediction"
)

const (
	recentWindowDays     = 7
	timeSeriesWindowDays = 30
)

// ComputeInsights turns a raw, unordered set of predictions into a
// snapshot. It is a pure function of (events, now): no I/O, no state,
// total over any input including the empty slice.
//
// Date and hour buckets use the UTC components of the timestamp.
func ComputeInsights(events []prediction.Prediction, now time.Time) Snapshot {
	snap := Snapshot{
		Overview: Overview{
			TotalScans:       len(events),
			LabelCounts:      map[string]int{},
			LabelPercentages: map[string]float64{},
			AvgConfidence:    map[string]float64{},
		},
		TimeSeries:       []TimeSeriesBucket{},
		HourDistribution: map[int]int{},
	}

	weekAgo := now.AddDate(0, 0, -recentWindowDays)
	monthAgo := now.AddDate(0, 0, -timeSeriesWindowDays)

	confidenceSums := map[string]float64{}
	daily := map[string]*TimeSeriesBucket{}

	for _, ev := range events {
		snap.Overview.LabelCounts[ev.Label]++
		confidenceSums[ev.Label] += ev.Confidence

		// boundary timestamps are inside the window
		if !ev.Timestamp.Before(weekAgo) {
			snap.Overview.RecentScans++
		}

		if !ev.Timestamp.Before(monthAgo) {
			date := ev.Timestamp.UTC().Format("2006-01-02")
			bucket, ok := daily[date]
			if !ok {
				bucket = &TimeSeriesBucket{Date: date}
				daily[date] = bucket
			}
			switch ev.Label {
			case prediction.LabelFresh:
				bucket.Fresh++
			case prediction.LabelSemiSpoiled:
				bucket.SemiSpoiled++
			case prediction.LabelSpoiled:
				bucket.Spoiled++
			default:
				// unknown labels have no fixed column; skip
			}
		}

		snap.HourDistribution[ev.Timestamp.UTC().Hour()]++
	}

	if snap.Overview.TotalScans > 0 {
		total := float64(snap.Overview.TotalScans)
		for label, count := range snap.Overview.LabelCounts {
			snap.Overview.LabelPercentages[label] = round2(float64(count) / total * 100)
			snap.Overview.AvgConfidence[label] = round2(confidenceSums[label] / float64(count))
		}
	}

	// ISO dates sort lexicographically
	dates := make([]string, 0, len(daily))
	for date := range daily {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	for _, date := range dates {
		snap.TimeSeries = append(snap.TimeSeries, *daily[date])
	}

	return snap
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
