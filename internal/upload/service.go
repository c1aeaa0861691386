package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/kirankarlapati/fruitanalyser/internal/classifier"
	"github.com/kirankarlapati/fruitanalyser/internal/logger"
	"github.com/kirankarlapati/fruitanalyser/internal/prediction"
)

type Classifier interface {
	Predict(ctx context.Context, filename string, image io.Reader) (*classifier.Result, error)
}

type Storage interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type Recorder interface {
	Record(
		ctx context.Context,
		imageURL string,
		label string,
		confidence float64,
		allPredictions map[string]float64,
	) (*prediction.Prediction, error)
}

type Service struct {
	classifier Classifier
	storage    Storage
	recorder   Recorder
	log        *logger.Logger
}

func NewService(
	classifier Classifier,
	storage Storage,
	recorder Recorder,
	log *logger.Logger,
) *Service {
	return &Service{
		classifier: classifier,
		storage:    storage,
		recorder:   recorder,
		log:        log,
	}
}

// Process classifies one uploaded image and persists the result.
// The image is classified before it is stored so a failed inference
// leaves no orphan object behind.
func (s *Service) Process(
	ctx context.Context,
	file io.Reader,
	filename string,
	contentType string,
) (*prediction.Prediction, error) {

	data, err := io.ReadAll(io.LimitReader(file, MaxFileSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxFileSize {
		return nil, fmt.Errorf("file exceeds %d byte limit", MaxFileSize)
	}

	result, err := s.classifier.Predict(ctx, filename, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf(
		"uploads/%s%s",
		uuid.New().String(),
		strings.ToLower(filepath.Ext(filename)),
	)

	imageURL, err := s.storage.Upload(ctx, key, bytes.NewReader(data), contentType)
	if err != nil {
		return nil, err
	}

	p, err := s.recorder.Record(
		ctx,
		imageURL,
		result.Label,
		result.Confidence,
		result.AllPredictions,
	)
	if err != nil {
		return nil, err
	}

	s.log.Infow("image classified",
		"id", p.ID,
		"label", p.Label,
		"confidence", p.Confidence,
	)

	return p, nil
}
