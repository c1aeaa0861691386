package prediction

import (
	"context"
	"fmt"
)

const defaultLimit = 50

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Record a classification result
// --------------------------------------------------
func (s *Service) Record(
	ctx context.Context,
	imageURL string,
	label string,
	confidence float64,
	allPredictions map[string]float64,
) (*Prediction, error) {

	if allPredictions == nil {
		allPredictions = map[string]float64{}
	}

	p := &Prediction{
		ImageURL:       imageURL,
		Label:          label,
		Confidence:     confidence,
		AllPredictions: allPredictions,
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// --------------------------------------------------
// Paginated history
// --------------------------------------------------

type Page struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Skip    int  `json:"skip"`
	HasMore bool `json:"hasMore"`
}

func (s *Service) History(
	ctx context.Context,
	label string,
	limit, skip int,
) ([]*Prediction, *Page, error) {

	if label != "" && !ValidLabel(label) {
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if skip < 0 {
		skip = 0
	}

	predictions, err := s.repo.List(ctx, label, limit, skip)
	if err != nil {
		return nil, nil, err
	}

	total, err := s.repo.CountFiltered(ctx, label)
	if err != nil {
		return nil, nil, err
	}

	page := &Page{
		Total:   total,
		Limit:   limit,
		Skip:    skip,
		HasMore: total > skip+len(predictions),
	}

	return predictions, page, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Prediction, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete removes one record by id. Deleting an unknown or already
// deleted id returns ErrNotFound.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
