package prediction

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory store used by tests.
type MemoryRepository struct {
	mu          sync.RWMutex
	predictions []Prediction
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (m *MemoryRepository) Create(ctx context.Context, p *Prediction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p.ID = uuid.New().String()
	if p.Timestamp.IsZero() {
		p.Timestamp = time.Now().UTC()
	}
	if p.AllPredictions == nil {
		p.AllPredictions = map[string]float64{}
	}

	m.predictions = append(m.predictions, *p)
	return nil
}

func (m *MemoryRepository) List(
	ctx context.Context,
	label string,
	limit, skip int,
) ([]*Prediction, error) {

	m.mu.RLock()
	defer m.mu.RUnlock()

	filtered := m.filter(label)
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Timestamp.After(filtered[j].Timestamp)
	})

	if skip >= len(filtered) {
		return nil, nil
	}
	filtered = filtered[skip:]
	if limit < len(filtered) {
		filtered = filtered[:limit]
	}

	out := make([]*Prediction, len(filtered))
	for i := range filtered {
		p := filtered[i]
		out[i] = &p
	}
	return out, nil
}

func (m *MemoryRepository) CountFiltered(
	ctx context.Context,
	label string,
) (int, error) {

	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.filter(label)), nil
}

func (m *MemoryRepository) ListAll(ctx context.Context) ([]Prediction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Prediction, len(m.predictions))
	copy(out, m.predictions)
	return out, nil
}

func (m *MemoryRepository) Count(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.predictions), nil
}

func (m *MemoryRepository) CountByLabel(
	ctx context.Context,
	label string,
) (int, error) {

	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.filter(label)), nil
}

func (m *MemoryRepository) Latest(ctx context.Context) (*Prediction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var latest *Prediction
	for i := range m.predictions {
		p := m.predictions[i]
		if latest == nil || p.Timestamp.After(latest.Timestamp) {
			latest = &p
		}
	}
	return latest, nil
}

func (m *MemoryRepository) GetByID(
	ctx context.Context,
	id string,
) (*Prediction, error) {

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.predictions {
		if m.predictions[i].ID == id {
			p := m.predictions[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.predictions {
		if m.predictions[i].ID == id {
			m.predictions = append(m.predictions[:i], m.predictions[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryRepository) filter(label string) []Prediction {
	if label == "" {
		out := make([]Prediction, len(m.predictions))
		copy(out, m.predictions)
		return out
	}

	var out []Prediction
	for _, p := range m.predictions {
		if p.Label == label {
			out = append(out, p)
		}
	}
	return out
}
