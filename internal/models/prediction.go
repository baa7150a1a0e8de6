package models

// PredictionRequest is the payload for the predict endpoint.
type PredictionRequest struct {
	Text string `json:"text" binding:"required"`
}

// PredictionResponse is the classification result returned to the client.
type PredictionResponse struct {
	Text       string  `json:"text"`
	Sentiment  string  `json:"sentiment"` // "positive" or "negative"
	Confidence float64 `json:"confidence"`
}
