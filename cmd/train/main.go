package main

import (
	"flag"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"sentiment-service/internal/sentiment"
)

// Labeled sentiment corpus: 25 positive and 25 negative product reviews.
var trainingTexts = []string{
	// Positive reviews
	"This product is amazing and works great",
	"Excellent quality and fast shipping",
	"Best purchase I've made this year",
	"Wonderful experience, highly recommend",
	"Outstanding product, exceeded expectations",
	"Love it, very satisfied with my purchase",
	"Fantastic service and great product",
	"Highly recommended, worth every penny",
	"Absolutely perfect, couldn't be happier",
	"Superb quality, exactly what I needed",
	"Great value for money, very pleased",
	"Impressive performance, works flawlessly",
	"Delighted with this purchase, five stars",
	"Exceptional product, highly satisfied",
	"Amazing quality, will buy again",
	"Perfect condition, fast delivery",
	"Brilliant product, exceeded my expectations",
	"Very happy with this, great buy",
	"Excellent customer service and product",
	"Top quality, highly recommend to everyone",
	"Fantastic, works better than expected",
	"Really good product, very satisfied",
	"Great purchase, no complaints at all",
	"Wonderful item, exactly as described",
	"Very impressed, excellent quality",

	// Negative reviews
	"Terrible product, waste of money",
	"Poor quality and broke after one use",
	"Very disappointed with this purchase",
	"Awful experience, do not buy",
	"Complete garbage, total waste",
	"Worst product ever, very unhappy",
	"Bad quality, not worth the price",
	"Horrible, returned immediately",
	"Defective item, doesn't work at all",
	"Cheap materials, fell apart quickly",
	"Not as described, very misleading",
	"Useless product, complete disappointment",
	"Waste of time and money, avoid",
	"Poor craftsmanship, broke easily",
	"Terrible quality, do not recommend",
	"Disappointing purchase, not worth it",
	"Faulty product, stopped working",
	"Very poor quality, regret buying",
	"Awful, nothing like the description",
	"Substandard quality, very unhappy",
	"Broken on arrival, terrible service",
	"Not good at all, very disappointed",
	"Cheap and nasty, avoid this",
	"Rubbish product, complete waste",
	"Very bad quality, don't buy",
}

func trainingLabels() []int {
	labels := make([]int, len(trainingTexts))
	for i := 0; i < 25; i++ {
		labels[i] = 1
	}
	return labels
}

func main() {
	out := flag.String("out", "models/sentiment_model.gob", "output path for the model artifact")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("Training sentiment classifier",
		zap.Int("examples", len(trainingTexts)))

	model, err := sentiment.Train(trainingTexts, trainingLabels())
	if err != nil {
		logger.Fatal("Training failed", zap.Error(err))
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		logger.Fatal("Failed to create output directory", zap.Error(err))
	}
	if err := sentiment.SaveModel(model, *out); err != nil {
		logger.Fatal("Failed to save model", zap.Error(err))
	}
	logger.Info("Model saved", zap.String("path", *out))

	// Smoke predictions against the freshly trained model.
	holder := sentiment.NewHolder(model, *out)
	for _, text := range []string{"This is great!", "This is terrible!"} {
		pred, err := holder.Predict(text)
		if err != nil {
			logger.Fatal("Smoke prediction failed", zap.Error(err))
		}
		logger.Info("Test prediction",
			zap.String("text", text),
			zap.String("sentiment", pred.Sentiment),
			zap.Float64("confidence", pred.Confidence))
	}
}
