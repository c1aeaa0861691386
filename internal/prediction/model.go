package prediction

import (
	"errors"
	"fmt"
	"time"
)

// Fixed freshness classes returned by the ML service.
const (
	LabelFresh       = "Fresh"
	LabelSemiSpoiled = "Semi-Spoiled"
	LabelSpoiled     = "Spoiled"
)

var Labels = []string{LabelFresh, LabelSemiSpoiled, LabelSpoiled}

var (
	ErrNotFound     = errors.New("prediction not found")
	ErrInvalidLabel = errors.New("invalid label")
	ErrInvalidScore = errors.New("confidence must be between 0 and 100")
	ErrMissingImage = errors.New("image_url is required")
)

// Prediction is one stored classification result.
// Records are immutable after creation; deletion is the only mutation.
type Prediction struct {
	ID             string             `json:"id"`
	ImageURL       string             `json:"image_url"`
	Label          string             `json:"label"`
	Confidence     float64            `json:"confidence"`
	AllPredictions map[string]float64 `json:"all_predictions"`
	Timestamp      time.Time          `json:"timestamp"`
}

func ValidLabel(label string) bool {
	for _, l := range Labels {
		if l == label {
			return true
		}
	}
	return false
}

// Validate enforces the write-path invariants before a record
// reaches the store.
func (p *Prediction) Validate() error {
	if p.ImageURL == "" {
		return ErrMissingImage
	}
	if !ValidLabel(p.Label) {
		return fmt.Errorf("%w: %q", ErrInvalidLabel, p.Label)
	}
	if p.Confidence < 0 || p.Confidence > 100 {
		return ErrInvalidScore
	}
	for key := range p.AllPredictions {
		if !ValidLabel(key) {
			return fmt.Errorf("%w: unknown score key %q", ErrInvalidLabel, key)
		}
	}
	return nil
}
