package sentiment

import (
	"math"
	"sort"
	"strings"

	"github.com/sentiboard/sentiboard/internal/entities"
)

// Sort keys accepted by TopPosts.
const (
	SortByEngagement = "engagement"
	SortByConfidence = "confidence"
	SortByLikes      = "likes"
	SortByRetweets   = "retweets"
	SortByReplies    = "replies"
)

// Stats aggregates a collection of analyzed posts. Returns nil for an empty
// collection. Unknown/Error labels count toward Total only; percentages are
// rounded to two decimals each on its own, so their sum may drift from 100.
func Stats(posts []entities.AnalyzedPost) *entities.SentimentStats {
	if len(posts) == 0 {
		return nil
	}

	out := entities.SentimentStats{
		Total: len(posts),
	}

	var confidenceSum float64
	for _, p := range posts {
		switch p.Sentiment {
		case entities.SentimentPositive:
			out.Positive++
		case entities.SentimentNeutral:
			out.Neutral++
		case entities.SentimentNegative:
			out.Negative++
		}
		confidenceSum += p.Confidence
	}

	total := float64(out.Total)
	out.PositivePct = round2(float64(out.Positive) / total * 100)
	out.NeutralPct = round2(float64(out.Neutral) / total * 100)
	out.NegativePct = round2(float64(out.Negative) / total * 100)
	out.AvgConfidence = round4(confidenceSum / total)

	return &out
}

// Categorize buckets posts by label (case-insensitive); posts outside the
// three buckets are dropped. Every bucket is sorted descending by engagement,
// ties keeping input order.
func Categorize(posts []entities.AnalyzedPost) entities.CategorizedPosts {
	var out entities.CategorizedPosts

	for _, p := range posts {
		switch strings.ToLower(string(p.Sentiment)) {
		case "positive":
			out.Positive = append(out.Positive, p)
		case "neutral":
			out.Neutral = append(out.Neutral, p)
		case "negative":
			out.Negative = append(out.Negative, p)
		}
	}

	for _, bucket := range [][]entities.AnalyzedPost{out.Positive, out.Neutral, out.Negative} {
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Engagement() > bucket[j].Engagement()
		})
	}

	return out
}

// Compare computes dataset1 minus dataset2 for every percentage and for the
// average confidence. Returns nil when either side is empty.
func Compare(a, b []entities.AnalyzedPost) *entities.ComparisonResult {
	stats1, stats2 := Stats(a), Stats(b)
	if stats1 == nil || stats2 == nil {
		return nil
	}

	return &entities.ComparisonResult{
		Dataset1: *stats1,
		Dataset2: *stats2,
		Differences: entities.StatsDifferences{
			PositiveDiff:   stats1.PositivePct - stats2.PositivePct,
			NeutralDiff:    stats1.NeutralPct - stats2.NeutralPct,
			NegativeDiff:   stats1.NegativePct - stats2.NegativePct,
			ConfidenceDiff: stats1.AvgConfidence - stats2.AvgConfidence,
		},
	}
}

// TopPosts returns at most n posts sorted descending by the given key.
// Unrecognized keys rank every post equally, which keeps input order.
func TopPosts(posts []entities.AnalyzedPost, n int, sortBy string) []entities.AnalyzedPost {
	if len(posts) == 0 {
		return nil
	}

	var value func(p entities.AnalyzedPost) float64
	switch sortBy {
	case SortByEngagement:
		value = func(p entities.AnalyzedPost) float64 { return float64(p.Engagement()) }
	case SortByConfidence:
		value = func(p entities.AnalyzedPost) float64 { return p.Confidence }
	case SortByLikes:
		value = func(p entities.AnalyzedPost) float64 { return float64(p.Likes) }
	case SortByRetweets:
		value = func(p entities.AnalyzedPost) float64 { return float64(p.Retweets) }
	case SortByReplies:
		value = func(p entities.AnalyzedPost) float64 { return float64(p.Replies) }
	default:
		value = func(entities.AnalyzedPost) float64 { return 0 }
	}

	sorted := make([]entities.AnalyzedPost, len(posts))
	copy(sorted, posts)

	sort.SliceStable(sorted, func(i, j int) bool {
		return value(sorted[i]) > value(sorted[j])
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}

	return sorted
}

// nolint:gochecknoglobals
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(
		"the a an and or but in on at to for of is was are were been be have has had " +
			"do does did will would could should may might must can this that these those " +
			"i you he she it we they what which who when where why how") {
		stopWords[w] = struct{}{}
	}
}

// WordFrequencies counts words over the cleaned text of posts, optionally
// restricted to a single sentiment label (case-insensitive). Words of length
// two or less and stop words are dropped. The top 50 words are returned in
// descending count order; ties keep first-seen order.
func WordFrequencies(posts []entities.AnalyzedPost, sentimentFilter string) []entities.WordCount {
	counts := make(map[string]int)
	var order []string

	for _, p := range posts {
		if sentimentFilter != "" && !strings.EqualFold(string(p.Sentiment), sentimentFilter) {
			continue
		}

		for _, word := range strings.Fields(p.CleanedText) {
			if len(word) <= 2 {
				continue
			}
			if _, ok := stopWords[word]; ok {
				continue
			}

			if _, seen := counts[word]; !seen {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	out := make([]entities.WordCount, len(order))
	for i, word := range order {
		out[i] = entities.WordCount{Word: word, Count: counts[word]}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	if len(out) > 50 {
		out = out[:50]
	}

	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
