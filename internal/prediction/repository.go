package prediction

import "context"

type Repository interface {
	Create(ctx context.Context, p *Prediction) error

	// List returns predictions ordered by timestamp descending.
	// An empty label means no filter.
	List(ctx context.Context, label string, limit, skip int) ([]*Prediction, error)
	CountFiltered(ctx context.Context, label string) (int, error)

	// ListAll feeds the insights engine; ordering is not guaranteed.
	ListAll(ctx context.Context) ([]Prediction, error)

	Count(ctx context.Context) (int, error)
	CountByLabel(ctx context.Context, label string) (int, error)
	Latest(ctx context.Context) (*Prediction, error)

	GetByID(ctx context.Context, id string) (*Prediction, error)
	Delete(ctx context.Context, id string) error
}
