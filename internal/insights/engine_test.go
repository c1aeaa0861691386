package insights

import (
	"testing"
	"time"

	"github.com/kirankarlapati/fruitanalyser/internal/prediction"
)

var now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func event(label string, confidence float64, ts time.Time) prediction.Prediction {
	return prediction.Prediction{
		ID:         "id-" + ts.Format(time.RFC3339Nano),
		ImageURL:   "https://cdn.example.com/x.jpg",
		Label:      label,
		Confidence: confidence,
		Timestamp:  ts,
	}
}

// --------------------------------------------------
// Empty input
// --------------------------------------------------

func TestComputeInsights_Empty(t *testing.T) {
	snap := ComputeInsights(nil, now)

	if snap.Overview.TotalScans != 0 {
		t.Errorf("expected 0 total scans, got %d", snap.Overview.TotalScans)
	}
	if snap.Overview.RecentScans != 0 {
		t.Errorf("expected 0 recent scans, got %d", snap.Overview.RecentScans)
	}
	if len(snap.Overview.LabelCounts) != 0 {
		t.Errorf("expected empty label counts, got %v", snap.Overview.LabelCounts)
	}
	if len(snap.Overview.LabelPercentages) != 0 {
		t.Errorf("expected empty percentages, got %v", snap.Overview.LabelPercentages)
	}
	if len(snap.Overview.AvgConfidence) != 0 {
		t.Errorf("expected empty avg confidence, got %v", snap.Overview.AvgConfidence)
	}
	if len(snap.TimeSeries) != 0 {
		t.Errorf("expected empty time series, got %v", snap.TimeSeries)
	}
	if len(snap.HourDistribution) != 0 {
		t.Errorf("expected empty hour distribution, got %v", snap.HourDistribution)
	}

	// empty collections must still marshal as {} / [], not null
	if snap.Overview.LabelCounts == nil || snap.TimeSeries == nil || snap.HourDistribution == nil {
		t.Error("empty snapshot fields must be initialized")
	}
}

// --------------------------------------------------
// Counts and percentages
// --------------------------------------------------

func TestComputeInsights_CountsSumToTotal(t *testing.T) {
	events := []prediction.Prediction{
		event(prediction.LabelFresh, 90, now.Add(-time.Hour)),
		event(prediction.LabelFresh, 80, now.Add(-2*time.Hour)),
		event(prediction.LabelSpoiled, 70, now.Add(-3*time.Hour)),
	}

	snap := ComputeInsights(events, now)

	if snap.Overview.TotalScans != 3 {
		t.Fatalf("expected 3 total scans, got %d", snap.Overview.TotalScans)
	}

	sum := 0
	for _, n := range snap.Overview.LabelCounts {
		sum += n
	}
	if sum != snap.Overview.TotalScans {
		t.Errorf("label counts sum %d != total %d", sum, snap.Overview.TotalScans)
	}
}

func TestComputeInsights_LabelCountsAreSparse(t *testing.T) {
	events := []prediction.Prediction{
		event(prediction.LabelFresh, 90, now.Add(-time.Hour)),
	}

	snap := ComputeInsights(events, now)

	if _, ok := snap.Overview.LabelCounts[prediction.LabelSpoiled]; ok {
		t.Error("labels with zero occurrences must not appear in labelCounts")
	}
	if _, ok := snap.Overview.LabelCounts[prediction.LabelSemiSpoiled]; ok {
		t.Error("labels with zero occurrences must not appear in labelCounts")
	}
}

func TestComputeInsights_Percentages(t *testing.T) {
	events := []prediction.Prediction{
		event(prediction.LabelFresh, 90, now.Add(-time.Hour)),
		event(prediction.LabelFresh, 80, now.Add(-2*time.Hour)),
		event(prediction.LabelSpoiled, 70, now.Add(-3*time.Hour)),
	}

	snap := ComputeInsights(events, now)

	if got := snap.Overview.LabelPercentages[prediction.LabelFresh]; got != 66.67 {
		t.Errorf("expected Fresh 66.67, got %v", got)
	}
	if got := snap.Overview.LabelPercentages[prediction.LabelSpoiled]; got != 33.33 {
		t.Errorf("expected Spoiled 33.33, got %v", got)
	}

	var sum float64
	for _, pct := range snap.Overview.LabelPercentages {
		sum += pct
	}
	if sum < 99.99 || sum > 100.01 {
		t.Errorf("percentages should sum to ~100, got %v", sum)
	}
}

func TestComputeInsights_AvgConfidence(t *testing.T) {
	events := []prediction.Prediction{
		event(prediction.LabelFresh, 80, now.Add(-time.Hour)),
		event(prediction.LabelFresh, 90, now.Add(-2*time.Hour)),
	}

	snap := ComputeInsights(events, now)

	if got := snap.Overview.AvgConfidence[prediction.LabelFresh]; got != 85.00 {
		t.Errorf("expected average 85.00, got %v", got)
	}
}

// --------------------------------------------------
// Recent 7-day window (inclusive lower bound)
// --------------------------------------------------

func TestComputeInsights_RecentWindowBoundaries(t *testing.T) {
	weekAgo := now.AddDate(0, 0, -7)

	events := []prediction.Prediction{
		event(prediction.LabelFresh, 90, now),                       // included
		event(prediction.LabelFresh, 90, weekAgo),                   // exactly on boundary: included
		event(prediction.LabelFresh, 90, weekAgo.Add(-time.Second)), // excluded
	}

	snap := ComputeInsights(events, now)

	if snap.Overview.RecentScans != 2 {
		t.Errorf("expected 2 recent scans, got %d", snap.Overview.RecentScans)
	}
}

// --------------------------------------------------
// Daily time series (30-day window, dense per-day labels)
// --------------------------------------------------

func TestComputeInsights_TimeSeriesBucket(t *testing.T) {
	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	events := []prediction.Prediction{
		event(prediction.LabelFresh, 90, day),
		event(prediction.LabelFresh, 85, day.Add(2*time.Hour)),
		event(prediction.LabelSpoiled, 70, day.Add(5*time.Hour)),
	}

	snap := ComputeInsights(events, now)

	if len(snap.TimeSeries) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(snap.TimeSeries))
	}

	bucket := snap.TimeSeries[0]
	if bucket.Date != "2026-03-10" {
		t.Errorf("expected date 2026-03-10, got %s", bucket.Date)
	}
	if bucket.Fresh != 2 || bucket.SemiSpoiled != 0 || bucket.Spoiled != 1 {
		t.Errorf("expected {Fresh:2, Semi-Spoiled:0, Spoiled:1}, got %+v", bucket)
	}
}

func TestComputeInsights_TimeSeriesWindowAndOrder(t *testing.T) {
	monthAgo := now.AddDate(0, 0, -30)

	events := []prediction.Prediction{
		event(prediction.LabelFresh, 90, now.AddDate(0, 0, -1)),
		event(prediction.LabelFresh, 90, now.AddDate(0, 0, -10)),
		event(prediction.LabelFresh, 90, monthAgo),                   // boundary: included
		event(prediction.LabelFresh, 90, monthAgo.Add(-time.Minute)), // outside window
	}

	snap := ComputeInsights(events, now)

	if len(snap.TimeSeries) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(snap.TimeSeries))
	}

	for i := 1; i < len(snap.TimeSeries); i++ {
		if snap.TimeSeries[i-1].Date >= snap.TimeSeries[i].Date {
			t.Errorf("time series not in ascending date order: %s before %s",
				snap.TimeSeries[i-1].Date, snap.TimeSeries[i].Date)
		}
	}

	// events outside the 30-day window still count everywhere else
	if snap.Overview.TotalScans != 4 {
		t.Errorf("expected 4 total scans, got %d", snap.Overview.TotalScans)
	}
}

// --------------------------------------------------
// Hour-of-day histogram (all events, UTC hour)
// --------------------------------------------------

func TestComputeInsights_HourDistribution(t *testing.T) {
	events := []prediction.Prediction{
		event(prediction.LabelFresh, 90, time.Date(2026, 3, 14, 9, 15, 0, 0, time.UTC)),
		event(prediction.LabelFresh, 90, time.Date(2026, 3, 14, 9, 45, 0, 0, time.UTC)),
		event(prediction.LabelSpoiled, 70, time.Date(2026, 3, 13, 22, 5, 0, 0, time.UTC)),
	}

	snap := ComputeInsights(events, now)

	if snap.HourDistribution[9] != 2 {
		t.Errorf("expected 2 scans at hour 9, got %d", snap.HourDistribution[9])
	}
	if snap.HourDistribution[22] != 1 {
		t.Errorf("expected 1 scan at hour 22, got %d", snap.HourDistribution[22])
	}
	if len(snap.HourDistribution) != 2 {
		t.Errorf("hours without scans must not appear, got %v", snap.HourDistribution)
	}
}

func TestComputeInsights_HourDistributionUsesUTC(t *testing.T) {
	zone := time.FixedZone("UTC+5", 5*3600)
	events := []prediction.Prediction{
		event(prediction.LabelFresh, 90, time.Date(2026, 3, 14, 3, 0, 0, 0, zone)),
	}

	snap := ComputeInsights(events, now)

	// 03:00 UTC+5 is 22:00 UTC of the previous day
	if snap.HourDistribution[22] != 1 {
		t.Errorf("expected the UTC hour bucket, got %v", snap.HourDistribution)
	}
	if snap.TimeSeries[0].Date != "2026-03-13" {
		t.Errorf("expected the UTC calendar date, got %s", snap.TimeSeries[0].Date)
	}
}

// --------------------------------------------------
// Determinism and defensiveness
// --------------------------------------------------

func TestComputeInsights_Deterministic(t *testing.T) {
	events := []prediction.Prediction{
		event(prediction.LabelFresh, 91.7, now.Add(-time.Hour)),
		event(prediction.LabelSpoiled, 33.3, now.AddDate(0, 0, -3)),
		event(prediction.LabelSemiSpoiled, 57.1, now.AddDate(0, 0, -12)),
	}

	first := ComputeInsights(events, now)

	// reversed input must yield the identical snapshot
	reversed := make([]prediction.Prediction, len(events))
	for i, ev := range events {
		reversed[len(events)-1-i] = ev
	}
	second := ComputeInsights(reversed, now)

	if first.Overview.TotalScans != second.Overview.TotalScans ||
		len(first.TimeSeries) != len(second.TimeSeries) {
		t.Fatal("snapshot depends on input order")
	}
	for label, pct := range first.Overview.LabelPercentages {
		if second.Overview.LabelPercentages[label] != pct {
			t.Errorf("percentage for %s differs across orderings", label)
		}
	}
	for i := range first.TimeSeries {
		if first.TimeSeries[i] != second.TimeSeries[i] {
			t.Errorf("time series bucket %d differs across orderings", i)
		}
	}
}

func TestComputeInsights_UnknownLabelSkippedInSeries(t *testing.T) {
	events := []prediction.Prediction{
		event("Rotten", 50, now.Add(-time.Hour)),
		event(prediction.LabelFresh, 90, now.Add(-time.Hour)),
	}

	snap := ComputeInsights(events, now)

	// the malformed record is not attributable to a fixed series column
	if len(snap.TimeSeries) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(snap.TimeSeries))
	}
	bucket := snap.TimeSeries[0]
	if bucket.Fresh != 1 || bucket.SemiSpoiled != 0 || bucket.Spoiled != 0 {
		t.Errorf("unexpected bucket %+v", bucket)
	}
}
