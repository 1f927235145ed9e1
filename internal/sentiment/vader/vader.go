// Package vader is a lexicon-based classifier backend built on VADER.
// It needs no model artifact and is the default backend.
package vader

import (
	"github.com/jonreiter/govader"

	"github.com/sentiboard/sentiboard/internal/entities"
)

// Compound score cutoffs for the three labels.
const (
	positiveThreshold = 0.20
	negativeThreshold = -0.20
)

// Classifier scores text with VADER polarity scores.
type Classifier struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// New creates a VADER classifier.
func New() *Classifier {
	return &Classifier{
		analyzer: govader.NewSentimentIntensityAnalyzer(),
	}
}

// Predict labels text by its compound score. The positive/neutral/negative
// proportions VADER reports sum to one, so the largest of them serves as the
// confidence.
func (c *Classifier) Predict(cleaned string) (entities.Sentiment, float64, error) {
	scores := c.analyzer.PolarityScores(cleaned)

	var s entities.Sentiment
	switch {
	case scores.Compound >= positiveThreshold:
		s = entities.SentimentPositive
	case scores.Compound <= negativeThreshold:
		s = entities.SentimentNegative
	default:
		s = entities.SentimentNeutral
	}

	confidence := scores.Positive
	if scores.Neutral > confidence {
		confidence = scores.Neutral
	}
	if scores.Negative > confidence {
		confidence = scores.Negative
	}

	return s, confidence, nil
}
