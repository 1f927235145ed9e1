// Package entities contains main entities of service.
package entities

import "time"

// Sentiment is a label assigned to a post by the classifier.
type Sentiment string

// The three real labels plus two sentinels: Unknown means no model was
// available, Error means prediction failed for that single post.
const (
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentNegative Sentiment = "Negative"
	SentimentUnknown  Sentiment = "Unknown"
	SentimentError    Sentiment = "Error"
)

// Post is a single tweet with its engagement metrics. Immutable once fetched.
type Post struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"created_at"`
	AuthorID    string    `json:"author_id,omitempty"`
	Likes       int       `json:"likes"`
	Retweets    int       `json:"retweets"`
	Replies     int       `json:"replies"`
	Impressions int       `json:"impressions,omitempty"`
	Hashtags    []string  `json:"hashtags,omitempty"`
}

// Engagement is the default ranking key.
func (p Post) Engagement() int {
	return p.Likes + p.Retweets
}

// UserInfo ...
type UserInfo struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	Verified       bool      `json:"verified"`
	FollowersCount int       `json:"followers_count"`
	FollowingCount int       `json:"following_count"`
	TweetCount     int       `json:"tweet_count"`
	ListedCount    int       `json:"listed_count"`
}

// AnalyzedPost is a Post with the classifier's verdict attached.
type AnalyzedPost struct {
	Post
	Sentiment   Sentiment `json:"sentiment"`
	Confidence  float64   `json:"confidence"`
	CleanedText string    `json:"cleaned_text"`
}

// SentimentStats is an aggregate over a collection of analyzed posts.
// Posts with the Unknown or Error label count toward Total only. The three
// percentage fields are rounded independently and are not normalized to sum
// to exactly 100.
type SentimentStats struct {
	Total         int     `json:"total"`
	Positive      int     `json:"positive"`
	Neutral       int     `json:"neutral"`
	Negative      int     `json:"negative"`
	PositivePct   float64 `json:"positive_pct"`
	NeutralPct    float64 `json:"neutral_pct"`
	NegativePct   float64 `json:"negative_pct"`
	AvgConfidence float64 `json:"avg_confidence"`
}

// CategorizedPosts partitions analyzed posts by label, each bucket sorted
// descending by engagement.
type CategorizedPosts struct {
	Positive []AnalyzedPost `json:"positive"`
	Neutral  []AnalyzedPost `json:"neutral"`
	Negative []AnalyzedPost `json:"negative"`
}

// StatsDifferences holds dataset1's values minus dataset2's.
type StatsDifferences struct {
	PositiveDiff   float64 `json:"positive_diff"`
	NeutralDiff    float64 `json:"neutral_diff"`
	NegativeDiff   float64 `json:"negative_diff"`
	ConfidenceDiff float64 `json:"confidence_diff"`
}

// ComparisonResult ...
type ComparisonResult struct {
	Dataset1    SentimentStats   `json:"dataset1"`
	Dataset2    SentimentStats   `json:"dataset2"`
	Differences StatsDifferences `json:"differences"`
}

// ReplyAnalysis is the full sentiment breakdown of a tweet's replies.
type ReplyAnalysis struct {
	TotalReplies       int              `json:"total_replies"`
	SentimentStats     *SentimentStats  `json:"sentiment_stats"`
	CategorizedReplies CategorizedPosts `json:"categorized_replies"`
	AnalyzedReplies    []AnalyzedPost   `json:"analyzed_replies"`
}

// WordCount is one entry of a word-frequency ranking.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}
