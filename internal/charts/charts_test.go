package charts

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentiboard/sentiboard/internal/entities"
)

func Test_SentimentPie(t *testing.T) {
	out := SentimentPie(&entities.SentimentStats{
		Total:       4,
		Positive:    2,
		Neutral:     1,
		Negative:    1,
		PositivePct: 50,
		NeutralPct:  25,
		NegativePct: 25,
	})
	require.NotNil(t, out)

	assert.Equal(t, []string{"Positive", "Neutral", "Negative"}, out.Labels)
	assert.Equal(t, []int{2, 1, 1}, out.Data)
	assert.Equal(t, []float64{50, 25, 25}, out.Percentages)
	assert.Len(t, out.Colors, 3)

	assert.Nil(t, SentimentPie(nil))
}

func Test_SentimentBar(t *testing.T) {
	out := SentimentBar(&entities.SentimentStats{Positive: 3, Neutral: 2, Negative: 1})
	require.NotNil(t, out)
	require.Len(t, out.Datasets, 1)

	assert.Equal(t, "Tweet Count", out.Datasets[0].Label)
	assert.Equal(t, []int{3, 2, 1}, out.Datasets[0].Data)

	assert.Nil(t, SentimentBar(nil))
}

func Test_SentimentComparison(t *testing.T) {
	cmp := &entities.ComparisonResult{
		Dataset1: entities.SentimentStats{PositivePct: 60, NeutralPct: 30, NegativePct: 10},
		Dataset2: entities.SentimentStats{PositivePct: 20, NeutralPct: 30, NegativePct: 50},
	}

	out := SentimentComparison(cmp, "alice", "bob")
	require.NotNil(t, out)
	require.Len(t, out.Datasets, 2)

	assert.Equal(t, "alice", out.Datasets[0].Label)
	assert.Equal(t, []float64{60, 30, 10}, out.Datasets[0].Data)
	assert.Equal(t, "bob", out.Datasets[1].Label)
	assert.Equal(t, []float64{20, 30, 50}, out.Datasets[1].Data)

	assert.Nil(t, SentimentComparison(nil, "a", "b"))
}

func at(day, hour int, s entities.Sentiment) entities.AnalyzedPost {
	return entities.AnalyzedPost{
		Post: entities.Post{
			CreatedAt: time.Date(2024, 3, day, hour, 30, 0, 0, time.UTC),
		},
		Sentiment: s,
	}
}

func Test_Timeline(t *testing.T) {
	posts := []entities.AnalyzedPost{
		at(2, 10, entities.SentimentNegative),
		at(1, 9, entities.SentimentPositive),
		at(1, 12, entities.SentimentPositive),
		at(1, 15, entities.SentimentNeutral),
	}

	out := Timeline(posts)
	require.NotNil(t, out)

	assert.Equal(t, []string{"2024-03-01", "2024-03-02"}, out.Labels)
	require.Len(t, out.Datasets, 3)
	assert.Equal(t, "Positive", out.Datasets[0].Label)
	assert.Equal(t, []int{2, 0}, out.Datasets[0].Data)
	assert.Equal(t, []int{1, 0}, out.Datasets[1].Data)
	assert.Equal(t, []int{0, 1}, out.Datasets[2].Data)

	assert.Nil(t, Timeline(nil))
}

func Test_EngagementChart(t *testing.T) {
	long := strings.Repeat("x", 60)
	posts := []entities.AnalyzedPost{
		{Post: entities.Post{Text: "small", Likes: 1, Retweets: 1, Replies: 1}},
		{Post: entities.Post{Text: long, Likes: 10, Retweets: 5, Replies: 3}},
		{Post: entities.Post{Text: "mid", Likes: 5, Retweets: 0, Replies: 2}},
	}

	out := EngagementChart(posts, 2)
	require.NotNil(t, out)

	assert.Equal(t, []string{"Tweet 1", "Tweet 2"}, out.Labels)
	require.Len(t, out.Datasets, 3)
	assert.Equal(t, []int{10, 5}, out.Datasets[0].Data)
	assert.Equal(t, []int{5, 0}, out.Datasets[1].Data)
	assert.Equal(t, []int{3, 2}, out.Datasets[2].Data)

	require.Len(t, out.TweetTexts, 2)
	assert.Equal(t, strings.Repeat("x", 50)+"...", out.TweetTexts[0])
	assert.Equal(t, "mid", out.TweetTexts[1])

	assert.Nil(t, EngagementChart(nil, 10))
}

func Test_ConfidenceDistribution(t *testing.T) {
	confidences := []float64{0.15, 0.35, 0.55, 0.75, 0.95, 0.99}

	posts := make([]entities.AnalyzedPost, len(confidences))
	for i, c := range confidences {
		posts[i] = entities.AnalyzedPost{Confidence: c}
	}

	out := ConfidenceDistribution(posts)
	require.NotNil(t, out)

	assert.Equal(t, []string{"0-20%", "20-40%", "40-60%", "60-80%", "80-100%"}, out.Labels)
	assert.Equal(t, []int{1, 1, 1, 1, 2}, out.Data)

	assert.Nil(t, ConfidenceDistribution(nil))
}

func Test_TopHashtags(t *testing.T) {
	posts := []entities.AnalyzedPost{
		{Post: entities.Post{Hashtags: []string{"golang", "ai"}}},
		{Post: entities.Post{Hashtags: []string{"golang"}}},
		{Post: entities.Post{Hashtags: []string{"cloud"}}},
	}

	out := TopHashtags(posts, 2)
	require.NotNil(t, out)

	assert.Equal(t, []string{"#golang", "#ai"}, out.Labels)
	assert.Equal(t, []int{2, 1}, out.Data)
}

func Test_TopHashtags_none(t *testing.T) {
	posts := []entities.AnalyzedPost{
		{Post: entities.Post{Text: "no tags here"}},
	}

	assert.Nil(t, TopHashtags(posts, 10))
	assert.Nil(t, TopHashtags(nil, 10))
}

func Test_SentimentByHour(t *testing.T) {
	posts := []entities.AnalyzedPost{
		at(1, 9, entities.SentimentPositive),
		at(2, 9, entities.SentimentPositive),
		at(1, 23, entities.SentimentNegative),
	}

	out := SentimentByHour(posts)
	require.NotNil(t, out)

	require.Len(t, out.Labels, 24)
	assert.Equal(t, "00:00", out.Labels[0])
	assert.Equal(t, "23:00", out.Labels[23])

	assert.Equal(t, 2, out.Datasets[0].Data[9])
	assert.Equal(t, 1, out.Datasets[2].Data[23])

	assert.Nil(t, SentimentByHour(nil))
}

func Test_UserComparisonChart(t *testing.T) {
	u1 := &entities.UserInfo{Username: "alice", FollowersCount: 100, FollowingCount: 50, TweetCount: 1000}
	u2 := &entities.UserInfo{Username: "bob", FollowersCount: 200, FollowingCount: 10, TweetCount: 42}

	out := UserComparisonChart(u1, u2)
	require.NotNil(t, out)

	assert.Equal(t, []string{"Followers", "Following", "Total Tweets"}, out.Labels)
	assert.Equal(t, []int{100, 50, 1000}, out.Datasets[0].Data)
	assert.Equal(t, []int{200, 10, 42}, out.Datasets[1].Data)

	assert.Nil(t, UserComparisonChart(u1, nil))
	assert.Nil(t, UserComparisonChart(nil, u2))
}
