package insights

import (
	"context"
	"time"

	"github.com/kirankarlapati/fruitanalyser/internal/prediction"
)

// Store is the slice of the prediction repository the insights layer
// reads from. It never writes.
type Store interface {
	ListAll(ctx context.Context) ([]prediction.Prediction, error)
	Count(ctx context.Context) (int, error)
	CountByLabel(ctx context.Context, label string) (int, error)
	Latest(ctx context.Context) (*prediction.Prediction, error)
}

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// Snapshot recomputes the full analytics view from scratch.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	events, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	snap := ComputeInsights(events, s.now())
	return &snap, nil
}

// Summary returns the dense quick counts plus the most recent scan.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, err
	}

	fresh, err := s.store.CountByLabel(ctx, prediction.LabelFresh)
	if err != nil {
		return nil, err
	}

	semi, err := s.store.CountByLabel(ctx, prediction.LabelSemiSpoiled)
	if err != nil {
		return nil, err
	}

	spoiled, err := s.store.CountByLabel(ctx, prediction.LabelSpoiled)
	if err != nil {
		return nil, err
	}

	latest, err := s.store.Latest(ctx)
	if err != nil {
		return nil, err
	}

	return &Summary{
		TotalScans:       total,
		FreshCount:       fresh,
		SemiSpoiledCount: semi,
		SpoiledCount:     spoiled,
		LatestScan:       latest,
	}, nil
}
