package server

import (
	"context"
	"errors"
	"math"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/sentiboard/sentiboard/internal/charts"
	"github.com/sentiboard/sentiboard/internal/entities"
	"github.com/sentiboard/sentiboard/internal/sentiment"
	"github.com/sentiboard/sentiboard/internal/twitter"
)

func (s server) getUserInfo(w http.ResponseWriter, r *http.Request) {
	var req UserInfoRequest
	if !s.readBody(w, r, &req) {
		return
	}

	if req.Username == "" {
		writeError(w, http.StatusBadRequest, "username is required")
		return
	}

	info, err := s.tw.GetUserInfo(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, twitter.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user @"+req.Username+" not found")
			return
		}
		writeInternalError(r, w, "failed to get user info: "+err.Error())
		return
	}

	writeOK(w, http.StatusOK, UserInfoResponse{UserInfo: info})
}

func (s server) getUserTweets(w http.ResponseWriter, r *http.Request) {
	var req UserTweetsRequest
	if !s.readBody(w, r, &req) {
		return
	}

	if req.Username == "" {
		writeError(w, http.StatusBadRequest, "username is required")
		return
	}
	if req.MaxResults <= 0 {
		req.MaxResults = defaultUserTweets
	}

	info, err := s.tw.GetUserInfo(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, twitter.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user @"+req.Username+" not found")
			return
		}
		writeInternalError(r, w, "failed to get user info: "+err.Error())
		return
	}

	tweets, err := s.tw.GetUserTweets(r.Context(), info.ID, req.MaxResults)
	if err != nil {
		writeInternalError(r, w, "failed to fetch tweets: "+err.Error())
		return
	}
	if len(tweets) == 0 {
		writeError(w, http.StatusNotFound, "no tweets found")
		return
	}

	analyzed := s.an.AnalyzeAll(tweets)
	stats := sentiment.Stats(analyzed)

	writeOK(w, http.StatusOK, UserTweetsResponse{
		Stats:       stats,
		Categorized: sentiment.Categorize(analyzed),
		Tweets:      analyzed,
		Charts: AnalysisCharts{
			Pie:        charts.SentimentPie(stats),
			Bar:        charts.SentimentBar(stats),
			Timeline:   charts.Timeline(analyzed),
			Engagement: charts.EngagementChart(analyzed, 10),
		},
	})
}

func (s server) getTweetReplies(w http.ResponseWriter, r *http.Request) {
	var req TweetRepliesRequest
	if !s.readBody(w, r, &req) {
		return
	}

	if req.TweetID == "" {
		writeError(w, http.StatusBadRequest, "tweet_id is required")
		return
	}

	tweet, err := s.tw.GetSingleTweet(r.Context(), req.TweetID)
	if err != nil {
		if errors.Is(err, twitter.ErrNotFound) {
			writeError(w, http.StatusNotFound, "tweet not found")
			return
		}
		writeInternalError(r, w, "failed to get tweet: "+err.Error())
		return
	}

	replies, err := s.tw.GetTweetReplies(r.Context(), req.TweetID, twitter.MaxResultsLimit)
	if err != nil {
		writeInternalError(r, w, "failed to fetch replies: "+err.Error())
		return
	}

	analysis := s.an.AnalyzeReplies(replies)

	var replyCharts *RepliesCharts
	if len(analysis.AnalyzedReplies) > 0 {
		replyCharts = &RepliesCharts{
			SentimentDistribution: charts.SentimentPie(analysis.SentimentStats),
		}
	}

	writeOK(w, http.StatusOK, TweetRepliesResponse{
		Tweet:         tweet,
		ReplyAnalysis: analysis,
		Charts:        replyCharts,
	})
}

func (s server) compareUsers(w http.ResponseWriter, r *http.Request) {
	var req CompareUsersRequest
	if !s.readBody(w, r, &req) {
		return
	}

	if req.Username1 == "" || req.Username2 == "" {
		writeError(w, http.StatusBadRequest, "username1 and username2 are required")
		return
	}
	if req.MaxTweets <= 0 {
		req.MaxTweets = defaultUserTweets
	}

	var (
		info1, info2     *entities.UserInfo
		tweets1, tweets2 []entities.Post
	)

	// Both sides are independent round-trips, fetch them concurrently.
	gr, ctx := errgroup.WithContext(r.Context())
	gr.Go(func() (err error) {
		info1, tweets1, err = s.fetchUserWithTweets(ctx, req.Username1, req.MaxTweets)
		return
	})
	gr.Go(func() (err error) {
		info2, tweets2, err = s.fetchUserWithTweets(ctx, req.Username2, req.MaxTweets)
		return
	})

	if err := gr.Wait(); err != nil {
		if errors.Is(err, twitter.ErrNotFound) {
			writeError(w, http.StatusNotFound, "one or both users not found")
			return
		}
		writeInternalError(r, w, "failed to compare users: "+err.Error())
		return
	}

	analyzed1 := s.an.AnalyzeAll(tweets1)
	analyzed2 := s.an.AnalyzeAll(tweets2)
	comparison := sentiment.Compare(analyzed1, analyzed2)

	writeOK(w, http.StatusOK, CompareUsersResponse{
		User1: ComparedUser{
			Info:   info1,
			Tweets: analyzed1,
			Stats:  sentiment.Stats(analyzed1),
		},
		User2: ComparedUser{
			Info:   info2,
			Tweets: analyzed2,
			Stats:  sentiment.Stats(analyzed2),
		},
		Comparison: comparison,
		Charts: CompareUsersCharts{
			ProfileComparison:   charts.UserComparisonChart(info1, info2),
			SentimentComparison: charts.SentimentComparison(comparison, req.Username1, req.Username2),
		},
	})
}

func (s server) fetchUserWithTweets(ctx context.Context, username string, maxTweets int) (*entities.UserInfo, []entities.Post, error) {
	info, err := s.tw.GetUserInfo(ctx, username)
	if err != nil {
		return nil, nil, err
	}

	tweets, err := s.tw.GetUserTweets(ctx, info.ID, maxTweets)
	if err != nil {
		return nil, nil, err
	}

	return info, tweets, nil
}

func (s server) compareTweets(w http.ResponseWriter, r *http.Request) {
	var req CompareTweetsRequest
	if !s.readBody(w, r, &req) {
		return
	}

	if req.TweetID1 == "" || req.TweetID2 == "" {
		writeError(w, http.StatusBadRequest, "tweet_id1 and tweet_id2 are required")
		return
	}

	tweet1, err := s.tw.GetSingleTweet(r.Context(), req.TweetID1)
	if err != nil {
		s.writeTweetError(w, r, err)
		return
	}

	tweet2, err := s.tw.GetSingleTweet(r.Context(), req.TweetID2)
	if err != nil {
		s.writeTweetError(w, r, err)
		return
	}

	replies1, err := s.tw.GetTweetReplies(r.Context(), req.TweetID1, twitter.MaxResultsLimit)
	if err != nil {
		writeInternalError(r, w, "failed to fetch replies: "+err.Error())
		return
	}

	replies2, err := s.tw.GetTweetReplies(r.Context(), req.TweetID2, twitter.MaxResultsLimit)
	if err != nil {
		writeInternalError(r, w, "failed to fetch replies: "+err.Error())
		return
	}

	analyzed1 := s.an.AnalyzeAll(replies1)
	analyzed2 := s.an.AnalyzeAll(replies2)
	comparison := sentiment.Compare(analyzed1, analyzed2)

	writeOK(w, http.StatusOK, CompareTweetsResponse{
		Tweet1: ComparedTweet{
			Details: tweet1,
			Stats:   sentiment.Stats(analyzed1),
			Replies: analyzed1,
		},
		Tweet2: ComparedTweet{
			Details: tweet2,
			Stats:   sentiment.Stats(analyzed2),
			Replies: analyzed2,
		},
		Comparison: comparison,
		Charts: CompareTweetsCharts{
			Comparison: charts.SentimentComparison(comparison, "Tweet 1 Replies", "Tweet 2 Replies"),
		},
	})
}

func (s server) writeTweetError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, twitter.ErrNotFound) {
		writeError(w, http.StatusNotFound, "one or both tweets not found")
		return
	}
	writeInternalError(r, w, "failed to get tweets: "+err.Error())
}

func (s server) searchAndAnalyze(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if !s.readBody(w, r, &req) {
		return
	}

	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}
	if req.MaxResults <= 0 {
		req.MaxResults = defaultSearch
	}

	tweets, err := s.tw.SearchTweets(r.Context(), req.Query, req.MaxResults)
	if err != nil {
		writeInternalError(r, w, "failed to search tweets: "+err.Error())
		return
	}
	if len(tweets) == 0 {
		writeError(w, http.StatusNotFound, "no tweets found")
		return
	}

	analyzed := s.an.AnalyzeAll(tweets)
	stats := sentiment.Stats(analyzed)

	kept := analyzed
	if len(kept) > 50 {
		kept = kept[:50]
	}

	writeOK(w, http.StatusOK, SearchResponse{
		Query:           req.Query,
		Stats:           stats,
		Categorized:     sentiment.Categorize(analyzed),
		Tweets:          kept,
		WordFrequencies: sentiment.WordFrequencies(analyzed, ""),
		Charts: AnalysisCharts{
			Pie:        charts.SentimentPie(stats),
			Bar:        charts.SentimentBar(stats),
			Timeline:   charts.Timeline(analyzed),
			Engagement: charts.EngagementChart(analyzed, 10),
			Hashtags:   charts.TopHashtags(analyzed, 10),
			Hourly:     charts.SentimentByHour(analyzed),
			Confidence: charts.ConfidenceDistribution(analyzed),
		},
	})
}

func (s server) testSentiment(w http.ResponseWriter, r *http.Request) {
	var req TestSentimentRequest
	if !s.readBody(w, r, &req) {
		return
	}

	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	label, confidence := s.an.Predict(req.Text)

	writeOK(w, http.StatusOK, TestSentimentResponse{
		Text:        req.Text,
		CleanedText: sentiment.CleanText(req.Text),
		Sentiment:   label,
		Confidence:  math.Round(confidence*100*100) / 100,
	})
}
