// Package sentiment contains the sentiment classification and aggregation
// logic of the service.
package sentiment

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/sentiboard/sentiboard/internal/entities"
)

//go:generate mockgen -destination=./mock/sentiment.go -package=mock -source=sentiment.go

// ErrModelNotLoaded is reported by health checks when the analyzer runs
// without a classifier backend.
var ErrModelNotLoaded = errors.New("sentiment model is not loaded")

// Classifier predicts the sentiment of already cleaned text.
// Confidence is the classifier's self-reported certainty in [0, 1].
type Classifier interface {
	Predict(cleaned string) (entities.Sentiment, float64, error)
}

// Analyzer wraps an optional Classifier with the text cleaning step and the
// degradation rules: without a backend every prediction is Unknown, and a
// backend failure is confined to the single input instead of aborting a batch.
type Analyzer struct {
	c Classifier
}

// NewAnalyzer creates an Analyzer. c may be nil.
func NewAnalyzer(c Classifier) *Analyzer {
	return &Analyzer{c: c}
}

// Ready reports whether a classifier backend is loaded.
func (a *Analyzer) Ready() bool {
	return a.c != nil
}

// Ping implements the health check contract.
func (a *Analyzer) Ping(_ context.Context) error {
	if a.c == nil {
		return ErrModelNotLoaded
	}

	return nil
}

// Predict classifies a single text. It never fails: a missing backend yields
// (Unknown, 0) and a backend error yields (Error, 0).
func (a *Analyzer) Predict(text string) (entities.Sentiment, float64) {
	if a.c == nil {
		return entities.SentimentUnknown, 0
	}

	s, confidence, err := a.c.Predict(CleanText(text))
	if err != nil {
		logrus.WithError(err).Warn("sentiment prediction failed")
		return entities.SentimentError, 0
	}

	return s, confidence
}

// AnalyzeAll classifies every post independently, preserving input order.
func (a *Analyzer) AnalyzeAll(posts []entities.Post) []entities.AnalyzedPost {
	out := make([]entities.AnalyzedPost, len(posts))

	for i, p := range posts {
		s, confidence := a.Predict(p.Text)

		out[i] = entities.AnalyzedPost{
			Post:        p,
			Sentiment:   s,
			Confidence:  confidence,
			CleanedText: CleanText(p.Text),
		}
	}

	return out
}

// AnalyzeReplies produces the full sentiment breakdown of a tweet's replies.
// At most 50 analyzed replies are echoed back.
func (a *Analyzer) AnalyzeReplies(replies []entities.Post) entities.ReplyAnalysis {
	analyzed := a.AnalyzeAll(replies)

	kept := analyzed
	if len(kept) > 50 {
		kept = kept[:50]
	}

	return entities.ReplyAnalysis{
		TotalReplies:       len(replies),
		SentimentStats:     Stats(analyzed),
		CategorizedReplies: Categorize(analyzed),
		AnalyzedReplies:    kept,
	}
}
