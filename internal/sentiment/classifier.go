package sentiment

import "math"

// Classifier is a binary logistic-regression model over the vectorizer's
// feature space. The sigmoid of the linear score is the positive-class
// probability.
type Classifier struct {
	Weights []float64
	Bias    float64
}

// PositiveProbability returns P(positive) for a feature vector.
func (c *Classifier) PositiveProbability(features map[int]float64) float64 {
	return sigmoid(c.score(features))
}

func (c *Classifier) score(features map[int]float64) float64 {
	s := c.Bias
	for idx, w := range features {
		s += c.Weights[idx] * w
	}
	return s
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
