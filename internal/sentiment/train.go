package sentiment

import (
	"fmt"
	"time"
)

const (
	defaultMaxFeatures = 100
	trainIterations    = 1000
	learningRate       = 0.5
	l2Penalty          = 0.01
)

// Train fits a TF-IDF vectorizer and a logistic-regression classifier on the
// labeled corpus. Labels are 1 for positive and 0 for negative. Training is
// full-batch gradient descent with a fixed iteration count, so the result is
// deterministic for a fixed corpus.
func Train(texts []string, labels []int) (*Model, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("training corpus is empty")
	}
	if len(texts) != len(labels) {
		return nil, fmt.Errorf("got %d texts but %d labels", len(texts), len(labels))
	}
	for i, label := range labels {
		if label != 0 && label != 1 {
			return nil, fmt.Errorf("label %d at index %d must be 0 or 1", label, i)
		}
	}

	vec := fitVectorizer(texts, defaultMaxFeatures)
	features := make([]map[int]float64, len(texts))
	for i, text := range texts {
		features[i] = vec.Transform(text)
	}

	clf := &Classifier{Weights: make([]float64, len(vec.IDF))}
	n := float64(len(texts))
	for iter := 0; iter < trainIterations; iter++ {
		gradW := make([]float64, len(clf.Weights))
		var gradB float64
		for i, fv := range features {
			err := sigmoid(clf.score(fv)) - float64(labels[i])
			for idx, w := range fv {
				gradW[idx] += err * w
			}
			gradB += err
		}
		for idx := range clf.Weights {
			clf.Weights[idx] -= learningRate * (gradW[idx]/n + l2Penalty*clf.Weights[idx]/n)
		}
		clf.Bias -= learningRate * gradB / n
	}

	return &Model{Vectorizer: vec, Classifier: clf, TrainedAt: time.Now().UTC()}, nil
}
