package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/sirupsen/logrus"

	"github.com/sentiboard/sentiboard/internal/charts"
	"github.com/sentiboard/sentiboard/internal/entities"
)

const (
	defaultUserTweets = 50
	defaultSearch     = 100
)

// Error ...
type Error struct {
	Error string `json:"error"`
}

// UserInfoRequest ...
type UserInfoRequest struct {
	Username string `json:"username"`
}

// UserInfoResponse ...
type UserInfoResponse struct {
	UserInfo *entities.UserInfo `json:"user_info"`
}

// UserTweetsRequest ...
type UserTweetsRequest struct {
	Username   string `json:"username"`
	MaxResults int    `json:"max_results"`
}

// AnalysisCharts bundles the charts built for an analyzed tweet collection.
// Search fills every field; the user-tweets flow fills the first four.
type AnalysisCharts struct {
	Pie        *charts.Pie        `json:"pie_chart"`
	Bar        *charts.Bar        `json:"bar_chart"`
	Timeline   *charts.Line       `json:"timeline"`
	Engagement *charts.Engagement `json:"engagement"`
	Hashtags   *charts.Hashtags   `json:"hashtags,omitempty"`
	Hourly     *charts.Line       `json:"hourly,omitempty"`
	Confidence *charts.Histogram  `json:"confidence,omitempty"`
}

// UserTweetsResponse ...
type UserTweetsResponse struct {
	Stats       *entities.SentimentStats  `json:"stats"`
	Categorized entities.CategorizedPosts `json:"categorized"`
	Tweets      []entities.AnalyzedPost   `json:"tweets"`
	Charts      AnalysisCharts            `json:"charts"`
}

// TweetRepliesRequest ...
type TweetRepliesRequest struct {
	TweetID string `json:"tweet_id"`
}

// RepliesCharts ...
type RepliesCharts struct {
	SentimentDistribution *charts.Pie `json:"sentiment_distribution"`
}

// TweetRepliesResponse ...
type TweetRepliesResponse struct {
	Tweet         *entities.Post         `json:"tweet"`
	ReplyAnalysis entities.ReplyAnalysis `json:"reply_analysis"`
	Charts        *RepliesCharts         `json:"charts"`
}

// CompareUsersRequest ...
type CompareUsersRequest struct {
	Username1 string `json:"username1"`
	Username2 string `json:"username2"`
	MaxTweets int    `json:"max_tweets"`
}

// ComparedUser ...
type ComparedUser struct {
	Info   *entities.UserInfo       `json:"info"`
	Tweets []entities.AnalyzedPost  `json:"tweets"`
	Stats  *entities.SentimentStats `json:"stats"`
}

// CompareUsersCharts ...
type CompareUsersCharts struct {
	ProfileComparison   *charts.UserComparison `json:"profile_comparison"`
	SentimentComparison *charts.Comparison     `json:"sentiment_comparison"`
}

// CompareUsersResponse ...
type CompareUsersResponse struct {
	User1      ComparedUser               `json:"user1"`
	User2      ComparedUser               `json:"user2"`
	Comparison *entities.ComparisonResult `json:"comparison"`
	Charts     CompareUsersCharts         `json:"charts"`
}

// CompareTweetsRequest ...
type CompareTweetsRequest struct {
	TweetID1 string `json:"tweet_id1"`
	TweetID2 string `json:"tweet_id2"`
}

// ComparedTweet ...
type ComparedTweet struct {
	Details *entities.Post           `json:"details"`
	Stats   *entities.SentimentStats `json:"stats"`
	Replies []entities.AnalyzedPost  `json:"replies"`
}

// CompareTweetsCharts ...
type CompareTweetsCharts struct {
	Comparison *charts.Comparison `json:"comparison"`
}

// CompareTweetsResponse ...
type CompareTweetsResponse struct {
	Tweet1     ComparedTweet              `json:"tweet1"`
	Tweet2     ComparedTweet              `json:"tweet2"`
	Comparison *entities.ComparisonResult `json:"comparison"`
	Charts     CompareTweetsCharts        `json:"charts"`
}

// SearchRequest ...
type SearchRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

// SearchResponse ...
type SearchResponse struct {
	Query           string                    `json:"query"`
	Stats           *entities.SentimentStats  `json:"stats"`
	Categorized     entities.CategorizedPosts `json:"categorized"`
	Tweets          []entities.AnalyzedPost   `json:"tweets"`
	WordFrequencies []entities.WordCount      `json:"word_frequencies"`
	Charts          AnalysisCharts            `json:"charts"`
}

// TestSentimentRequest ...
type TestSentimentRequest struct {
	Text string `json:"text"`
}

// TestSentimentResponse carries the verdict for a single text; Confidence is
// a percentage here, rounded to two decimals.
type TestSentimentResponse struct {
	Text        string             `json:"text"`
	CleanedText string             `json:"cleaned_text"`
	Sentiment   entities.Sentiment `json:"sentiment"`
	Confidence  float64            `json:"confidence"`
}

func writeOK(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeOK(w, status, Error{Error: message})
}

// writeInternalError logs the details and responds with a generic message so
// upstream failures never leak into the payload.
func writeInternalError(r *http.Request, w http.ResponseWriter, message string) {
	logrus.WithField("request_id", middleware.GetReqID(r.Context())).Error(message)
	writeError(w, http.StatusInternalServerError, "internal error")
}

// readBody decodes a JSON request body into out, enforcing the body limit.
// On failure it has already written the 400 response.
func (s server) readBody(w http.ResponseWriter, r *http.Request, out interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodySize)

	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	return true
}
