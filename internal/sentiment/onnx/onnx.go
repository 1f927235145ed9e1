// Package onnx is a classifier backend that runs a pre-trained ONNX
// text-classification model from disk through hugot.
package onnx

import (
	"fmt"
	"strings"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"

	"github.com/sentiboard/sentiboard/internal/entities"
)

// Model label strings mapped to sentiments. Covers both bare class indices
// and the conventional names; anything else becomes Unknown.
// nolint:gochecknoglobals
var labelMap = map[string]entities.Sentiment{
	"label_0":  entities.SentimentNegative,
	"label_1":  entities.SentimentNeutral,
	"label_2":  entities.SentimentPositive,
	"negative": entities.SentimentNegative,
	"neutral":  entities.SentimentNeutral,
	"positive": entities.SentimentPositive,
}

// Classifier owns a hugot ONNX runtime session and a text-classification
// pipeline. Safe for concurrent use: the pipeline is read-only after New.
type Classifier struct {
	session  *hugot.Session
	pipeline *pipelines.TextClassificationPipeline
}

// New loads the model at modelPath into an ONNX runtime session.
func New(modelPath string) (*Classifier, error) {
	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, fmt.Errorf("failed to create onnx session: %w", err)
	}

	pipeline, err := hugot.NewPipeline(session, hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      "sentimentClassificationPipeline",
	})
	if err != nil {
		_ = session.Destroy()
		return nil, fmt.Errorf("failed to create classification pipeline: %w", err)
	}

	return &Classifier{
		session:  session,
		pipeline: pipeline,
	}, nil
}

// Predict runs the pipeline over a single text. The pipeline reports the
// winning class with its softmax score, which serves as the confidence.
func (c *Classifier) Predict(cleaned string) (entities.Sentiment, float64, error) {
	output, err := c.pipeline.RunPipeline([]string{cleaned})
	if err != nil {
		return "", 0, fmt.Errorf("failed to run classification pipeline: %w", err)
	}

	if len(output.ClassificationOutputs) == 0 || len(output.ClassificationOutputs[0]) == 0 {
		return "", 0, fmt.Errorf("classification pipeline returned no output")
	}

	best := output.ClassificationOutputs[0][0]

	s, ok := labelMap[strings.ToLower(best.Label)]
	if !ok {
		s = entities.SentimentUnknown
	}

	return s, float64(best.Score), nil
}

// Close releases the ONNX runtime session.
func (c *Classifier) Close() error {
	return c.session.Destroy()
}
