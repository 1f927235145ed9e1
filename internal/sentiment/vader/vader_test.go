package vader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentiboard/sentiboard/internal/entities"
)

func Test_Predict(t *testing.T) {
	c := New()

	tt := []struct {
		text string
		want entities.Sentiment
	}{
		{"i love this so much it is amazing", entities.SentimentPositive},
		{"i hate this it is horrible", entities.SentimentNegative},
		{"the sky is blue today", entities.SentimentNeutral},
	}

	for _, tc := range tt {
		t.Run(tc.text, func(t *testing.T) {
			s, confidence, err := c.Predict(tc.text)
			require.NoError(t, err)

			assert.Equal(t, tc.want, s)
			assert.GreaterOrEqual(t, confidence, 0.0)
			assert.LessOrEqual(t, confidence, 1.0)
		})
	}
}
