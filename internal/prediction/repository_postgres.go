package prediction

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Create a new prediction record
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, p *Prediction) error {
	p.ID = uuid.New().String()

	scores, err := json.Marshal(p.AllPredictions)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO predictions (
			id,
			image_url,
			label,
			confidence,
			all_predictions
		)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING timestamp
	`

	return r.db.QueryRow(
		ctx,
		query,
		p.ID,
		p.ImageURL,
		p.Label,
		p.Confidence,
		scores,
	).Scan(&p.Timestamp)
}

// --------------------------------------------------
// Paginated history listing (newest first)
// --------------------------------------------------
func (r *PostgresRepository) List(
	ctx context.Context,
	label string,
	limit, skip int,
) ([]*Prediction, error) {

	query := `
		SELECT id, image_url, label, confidence, all_predictions, timestamp
		FROM predictions
		ORDER BY timestamp DESC
		LIMIT $1 OFFSET $2
	`
	args := []any{limit, skip}

	if label != "" {
		query = `
			SELECT id, image_url, label, confidence, all_predictions, timestamp
			FROM predictions
			WHERE label = $1
			ORDER BY timestamp DESC
			LIMIT $2 OFFSET $3
		`
		args = []any{label, limit, skip}
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var predictions []*Prediction

	for rows.Next() {
		p, err := scanPrediction(rows)
		if err != nil {
			return nil, err
		}
		predictions = append(predictions, p)
	}

	return predictions, rows.Err()
}

func (r *PostgresRepository) CountFiltered(
	ctx context.Context,
	label string,
) (int, error) {

	if label == "" {
		return r.Count(ctx)
	}
	return r.CountByLabel(ctx, label)
}

// --------------------------------------------------
// Bulk read for the insights engine
// --------------------------------------------------
func (r *PostgresRepository) ListAll(ctx context.Context) ([]Prediction, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, image_url, label, confidence, all_predictions, timestamp
		FROM predictions
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var predictions []Prediction

	for rows.Next() {
		p, err := scanPrediction(rows)
		if err != nil {
			return nil, err
		}
		predictions = append(predictions, *p)
	}

	return predictions, rows.Err()
}

// --------------------------------------------------
// Count accessors
// --------------------------------------------------
func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM predictions`).Scan(&n)
	return n, err
}

func (r *PostgresRepository) CountByLabel(
	ctx context.Context,
	label string,
) (int, error) {

	var n int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM predictions WHERE label = $1
	`, label).Scan(&n)
	return n, err
}

// --------------------------------------------------
// Most recent record (nil when the store is empty)
// --------------------------------------------------
func (r *PostgresRepository) Latest(ctx context.Context) (*Prediction, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, image_url, label, confidence, all_predictions, timestamp
		FROM predictions
		ORDER BY timestamp DESC
		LIMIT 1
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanPrediction(rows)
}

// --------------------------------------------------
// Lookup / delete by id
// --------------------------------------------------
func (r *PostgresRepository) GetByID(
	ctx context.Context,
	id string,
) (*Prediction, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, image_url, label, confidence, all_predictions, timestamp
		FROM predictions
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrNotFound
	}
	return scanPrediction(rows)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM predictions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Row scanning
// --------------------------------------------------
func scanPrediction(rows pgx.Rows) (*Prediction, error) {
	var (
		p      Prediction
		scores []byte
	)

	if err := rows.Scan(
		&p.ID,
		&p.ImageURL,
		&p.Label,
		&p.Confidence,
		&scores,
		&p.Timestamp,
	); err != nil {
		return nil, err
	}

	p.AllPredictions = map[string]float64{}
	if len(scores) > 0 {
		if err := json.Unmarshal(scores, &p.AllPredictions); err != nil {
			return nil, errors.New("corrupt all_predictions payload")
		}
	}

	return &p, nil
}
