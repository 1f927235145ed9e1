package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentiboard/sentiboard/internal/entities"
)

func analyzed(s entities.Sentiment, confidence float64, likes, retweets int) entities.AnalyzedPost {
	return entities.AnalyzedPost{
		Post:       entities.Post{Likes: likes, Retweets: retweets},
		Sentiment:  s,
		Confidence: confidence,
	}
}

func Test_Stats(t *testing.T) {
	posts := []entities.AnalyzedPost{
		analyzed(entities.SentimentPositive, 0.9, 10, 5),
		analyzed(entities.SentimentNegative, 0.8, 1, 0),
		analyzed(entities.SentimentPositive, 0.7, 3, 2),
	}

	stats := Stats(posts)
	require.NotNil(t, stats)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Positive)
	assert.Equal(t, 0, stats.Neutral)
	assert.Equal(t, 1, stats.Negative)
	assert.Equal(t, 66.67, stats.PositivePct)
	assert.Equal(t, 0.0, stats.NeutralPct)
	assert.Equal(t, 33.33, stats.NegativePct)
	assert.Equal(t, 0.8, stats.AvgConfidence)
}

func Test_Stats_empty(t *testing.T) {
	assert.Nil(t, Stats(nil))
	assert.Nil(t, Stats([]entities.AnalyzedPost{}))
}

func Test_Stats_sentinelsCountTowardTotalOnly(t *testing.T) {
	posts := []entities.AnalyzedPost{
		analyzed(entities.SentimentPositive, 1, 0, 0),
		analyzed(entities.SentimentUnknown, 0, 0, 0),
		analyzed(entities.SentimentError, 0, 0, 0),
		analyzed(entities.SentimentNegative, 1, 0, 0),
	}

	stats := Stats(posts)
	require.NotNil(t, stats)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Positive)
	assert.Equal(t, 0, stats.Neutral)
	assert.Equal(t, 1, stats.Negative)
	assert.Equal(t, 25.0, stats.PositivePct)
	assert.Equal(t, 25.0, stats.NegativePct)
	assert.Equal(t, 0.5, stats.AvgConfidence)
}

func Test_Categorize(t *testing.T) {
	low := analyzed(entities.SentimentPositive, 1, 1, 0)
	high := analyzed(entities.SentimentPositive, 1, 10, 5)
	neutral := analyzed(entities.SentimentNeutral, 1, 0, 0)
	negative := analyzed(entities.SentimentNegative, 1, 2, 2)
	unknown := analyzed(entities.SentimentUnknown, 0, 100, 100)

	out := Categorize([]entities.AnalyzedPost{low, high, neutral, negative, unknown})

	require.Len(t, out.Positive, 2)
	assert.Equal(t, high, out.Positive[0])
	assert.Equal(t, low, out.Positive[1])
	assert.Equal(t, []entities.AnalyzedPost{neutral}, out.Neutral)
	assert.Equal(t, []entities.AnalyzedPost{negative}, out.Negative)
}

func Test_Categorize_stableTies(t *testing.T) {
	first := entities.AnalyzedPost{
		Post:      entities.Post{ID: "1", Likes: 3},
		Sentiment: entities.SentimentPositive,
	}
	second := entities.AnalyzedPost{
		Post:      entities.Post{ID: "2", Likes: 2, Retweets: 1},
		Sentiment: entities.SentimentPositive,
	}

	out := Categorize([]entities.AnalyzedPost{first, second})

	require.Len(t, out.Positive, 2)
	assert.Equal(t, "1", out.Positive[0].ID)
	assert.Equal(t, "2", out.Positive[1].ID)
}

func Test_Compare(t *testing.T) {
	a := []entities.AnalyzedPost{
		analyzed(entities.SentimentPositive, 0.9, 0, 0),
		analyzed(entities.SentimentPositive, 0.7, 0, 0),
	}
	b := []entities.AnalyzedPost{
		analyzed(entities.SentimentPositive, 0.5, 0, 0),
		analyzed(entities.SentimentNegative, 0.5, 0, 0),
	}

	out := Compare(a, b)
	require.NotNil(t, out)

	statsA, statsB := Stats(a), Stats(b)
	assert.Equal(t, *statsA, out.Dataset1)
	assert.Equal(t, *statsB, out.Dataset2)
	assert.Equal(t, statsA.PositivePct-statsB.PositivePct, out.Differences.PositiveDiff)
	assert.Equal(t, statsA.NeutralPct-statsB.NeutralPct, out.Differences.NeutralDiff)
	assert.Equal(t, statsA.NegativePct-statsB.NegativePct, out.Differences.NegativeDiff)
	assert.Equal(t, statsA.AvgConfidence-statsB.AvgConfidence, out.Differences.ConfidenceDiff)
}

func Test_Compare_emptySide(t *testing.T) {
	a := []entities.AnalyzedPost{analyzed(entities.SentimentPositive, 1, 0, 0)}

	assert.Nil(t, Compare(a, nil))
	assert.Nil(t, Compare(nil, a))
	assert.Nil(t, Compare(nil, nil))
}

func Test_TopPosts(t *testing.T) {
	p1 := analyzed(entities.SentimentPositive, 0.3, 10, 0)
	p2 := analyzed(entities.SentimentNeutral, 0.9, 1, 1)
	p3 := analyzed(entities.SentimentNegative, 0.5, 4, 4)
	posts := []entities.AnalyzedPost{p1, p2, p3}

	assert.Equal(t, []entities.AnalyzedPost{p1, p3}, TopPosts(posts, 2, SortByEngagement))
	assert.Equal(t, []entities.AnalyzedPost{p2, p3, p1}, TopPosts(posts, 10, SortByConfidence))
	assert.Equal(t, []entities.AnalyzedPost{p1, p3, p2}, TopPosts(posts, 10, SortByLikes))

	// unrecognized keys rank everything equally, so input order survives
	assert.Equal(t, posts, TopPosts(posts, 10, "unheard-of"))

	assert.Nil(t, TopPosts(nil, 10, SortByEngagement))
}

func Test_WordFrequencies(t *testing.T) {
	posts := []entities.AnalyzedPost{
		{Sentiment: entities.SentimentPositive, CleanedText: "the cat sat"},
		{Sentiment: entities.SentimentNegative, CleanedText: "the dog sat"},
	}

	out := WordFrequencies(posts, "")

	assert.Equal(t, []entities.WordCount{
		{Word: "sat", Count: 2},
		{Word: "cat", Count: 1},
		{Word: "dog", Count: 1},
	}, out)
}

func Test_WordFrequencies_sentimentFilter(t *testing.T) {
	posts := []entities.AnalyzedPost{
		{Sentiment: entities.SentimentPositive, CleanedText: "wonderful launch"},
		{Sentiment: entities.SentimentNegative, CleanedText: "horrible launch"},
	}

	out := WordFrequencies(posts, "POSITIVE")

	assert.Equal(t, []entities.WordCount{
		{Word: "wonderful", Count: 1},
		{Word: "launch", Count: 1},
	}, out)
}

func Test_WordFrequencies_dropsShortAndStopWords(t *testing.T) {
	posts := []entities.AnalyzedPost{
		{Sentiment: entities.SentimentNeutral, CleanedText: "it is an ok day to go"},
	}

	out := WordFrequencies(posts, "")

	assert.Equal(t, []entities.WordCount{{Word: "day", Count: 1}}, out)
}
