package sentiment

import (
	"encoding/gob"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"sentiment-service/internal/models"
)

const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
)

// ErrModelNotLoaded is returned by Predict when no artifact was loaded at startup.
var ErrModelNotLoaded = errors.New("model not loaded")

// ErrInference is returned when the loaded model fails to produce a prediction.
var ErrInference = errors.New("inference failed")

// Model is the serialized classifier bundle: the vectorization transform plus
// the trained binary classifier. It is read-only after load.
type Model struct {
	Vectorizer *Vectorizer
	Classifier *Classifier
	TrainedAt  time.Time
}

// SaveModel gob-encodes the bundle to path, creating or truncating the file.
func SaveModel(m *Model, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create model file: %w", err)
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(m); err != nil {
		return fmt.Errorf("failed to encode model: %w", err)
	}
	return nil
}

// LoadModel reads a gob-encoded bundle from path. A missing artifact is
// reported via os.IsNotExist on the returned error so the caller can choose to
// start without a model.
func LoadModel(path string) (*Model, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var m Model
	if err := gob.NewDecoder(file).Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode model file %s: %w", path, err)
	}
	if m.Vectorizer == nil || m.Classifier == nil {
		return nil, fmt.Errorf("model file %s is incomplete", path)
	}
	return &m, nil
}

// Holder owns the process-wide model handle. It is populated once at startup
// and never mutated afterwards, so concurrent Predict calls need no locking.
type Holder struct {
	model *Model
	path  string
}

// NewHolder wraps a loaded model. A nil model produces an empty holder whose
// Predict always fails with ErrModelNotLoaded.
func NewHolder(model *Model, path string) *Holder {
	return &Holder{model: model, path: path}
}

// Loaded reports whether a model artifact was loaded.
func (h *Holder) Loaded() bool {
	return h.model != nil
}

// Predict classifies text. The sentiment is positive when the positive-class
// probability is at least 0.5; the confidence is the larger class probability,
// so it always lies in [0.5, 1].
func (h *Holder) Predict(text string) (*models.PredictionResponse, error) {
	if h.model == nil {
		return nil, ErrModelNotLoaded
	}

	features := h.model.Vectorizer.Transform(text)
	p := h.model.Classifier.PositiveProbability(features)
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: probability %v out of range", ErrInference, p)
	}

	resp := &models.PredictionResponse{Text: text}
	if p >= 0.5 {
		resp.Sentiment = SentimentPositive
		resp.Confidence = p
	} else {
		resp.Sentiment = SentimentNegative
		resp.Confidence = 1 - p
	}
	return resp, nil
}

// Info describes the holder's state for the model-info endpoint.
type Info struct {
	Loaded         bool      `json:"loaded"`
	Path           string    `json:"path"`
	VocabularySize int       `json:"vocabulary_size,omitempty"`
	Classes        []string  `json:"classes,omitempty"`
	TrainedAt      time.Time `json:"trained_at,omitempty"`
}

func (h *Holder) Info() Info {
	info := Info{Loaded: h.model != nil, Path: h.path}
	if h.model != nil {
		info.VocabularySize = len(h.model.Vectorizer.Vocabulary)
		info.Classes = []string{SentimentNegative, SentimentPositive}
		info.TrainedAt = h.model.TrainedAt
	}
	return info
}
