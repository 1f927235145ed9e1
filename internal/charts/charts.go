// Package charts shapes analyzed data into the fixed payloads the dashboard
// frontend renders. Every builder is a pure projection and returns nil for an
// empty input instead of an empty chart.
package charts

import (
	"fmt"
	"sort"

	"github.com/sentiboard/sentiboard/internal/entities"
)

// Dashboard palette.
const (
	colorPositive = "#48bb78"
	colorNeutral  = "#4299e1"
	colorNegative = "#f56565"
	colorHashtag  = "#667eea"

	colorDataset1       = "rgba(102, 126, 234, 0.7)"
	colorDataset1Border = "rgba(102, 126, 234, 1)"
	colorDataset2       = "rgba(237, 100, 166, 0.7)"
	colorDataset2Border = "rgba(237, 100, 166, 1)"
)

// nolint:gochecknoglobals
var sentimentLabels = []string{"Positive", "Neutral", "Negative"}

// Pie is a sentiment distribution pie chart.
type Pie struct {
	Labels      []string  `json:"labels"`
	Data        []int     `json:"data"`
	Colors      []string  `json:"colors"`
	Percentages []float64 `json:"percentages"`
}

// Bar is a single-series bar chart with per-bar colors.
type Bar struct {
	Labels   []string     `json:"labels"`
	Datasets []BarDataset `json:"datasets"`
}

// BarDataset ...
type BarDataset struct {
	Label           string   `json:"label"`
	Data            []int    `json:"data"`
	BackgroundColor []string `json:"backgroundColor"`
}

// Comparison is a grouped bar chart of two percentage series.
type Comparison struct {
	Labels   []string            `json:"labels"`
	Datasets []ComparisonDataset `json:"datasets"`
}

// ComparisonDataset ...
type ComparisonDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor string    `json:"backgroundColor"`
	BorderColor     string    `json:"borderColor"`
	BorderWidth     int       `json:"borderWidth"`
}

// Line is a multi-series line chart (timeline, hourly distribution).
type Line struct {
	Labels   []string      `json:"labels"`
	Datasets []LineDataset `json:"datasets"`
}

// LineDataset ...
type LineDataset struct {
	Label           string `json:"label"`
	Data            []int  `json:"data"`
	BorderColor     string `json:"borderColor"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	Fill            bool   `json:"fill"`
}

// Engagement is a top-N engagement bar chart; TweetTexts carries truncated
// tweet previews for tooltips.
type Engagement struct {
	Labels     []string     `json:"labels"`
	Datasets   []BarDataset `json:"datasets"`
	TweetTexts []string     `json:"tweet_texts"`
}

// Histogram is a fixed-bin distribution chart.
type Histogram struct {
	Labels          []string `json:"labels"`
	Data            []int    `json:"data"`
	BackgroundColor []string `json:"backgroundColor"`
}

// Hashtags is a top-N hashtag frequency chart.
type Hashtags struct {
	Labels          []string `json:"labels"`
	Data            []int    `json:"data"`
	BackgroundColor string   `json:"backgroundColor"`
}

// UserComparison is a side-by-side profile metrics chart.
type UserComparison struct {
	Labels   []string                `json:"labels"`
	Datasets []UserComparisonDataset `json:"datasets"`
}

// UserComparisonDataset ...
type UserComparisonDataset struct {
	Label           string `json:"label"`
	Data            []int  `json:"data"`
	BackgroundColor string `json:"backgroundColor"`
}

// SentimentPie builds the sentiment distribution pie chart.
func SentimentPie(stats *entities.SentimentStats) *Pie {
	if stats == nil {
		return nil
	}

	return &Pie{
		Labels:      sentimentLabels,
		Data:        []int{stats.Positive, stats.Neutral, stats.Negative},
		Colors:      []string{colorPositive, colorNeutral, colorNegative},
		Percentages: []float64{stats.PositivePct, stats.NeutralPct, stats.NegativePct},
	}
}

// SentimentBar builds the sentiment count bar chart.
func SentimentBar(stats *entities.SentimentStats) *Bar {
	if stats == nil {
		return nil
	}

	return &Bar{
		Labels: sentimentLabels,
		Datasets: []BarDataset{{
			Label:           "Tweet Count",
			Data:            []int{stats.Positive, stats.Neutral, stats.Negative},
			BackgroundColor: []string{colorPositive, colorNeutral, colorNegative},
		}},
	}
}

// SentimentComparison builds a two-dataset percentage comparison chart.
func SentimentComparison(cmp *entities.ComparisonResult, label1, label2 string) *Comparison {
	if cmp == nil {
		return nil
	}

	return &Comparison{
		Labels: sentimentLabels,
		Datasets: []ComparisonDataset{
			{
				Label:           label1,
				Data:            []float64{cmp.Dataset1.PositivePct, cmp.Dataset1.NeutralPct, cmp.Dataset1.NegativePct},
				BackgroundColor: colorDataset1,
				BorderColor:     colorDataset1Border,
				BorderWidth:     2,
			},
			{
				Label:           label2,
				Data:            []float64{cmp.Dataset2.PositivePct, cmp.Dataset2.NeutralPct, cmp.Dataset2.NegativePct},
				BackgroundColor: colorDataset2,
				BorderColor:     colorDataset2Border,
				BorderWidth:     2,
			},
		},
	}
}

// Timeline buckets posts by UTC calendar day and builds one filled line
// dataset per sentiment, dates ascending.
func Timeline(posts []entities.AnalyzedPost) *Line {
	if len(posts) == 0 {
		return nil
	}

	type dayCounts struct {
		positive, neutral, negative int
	}

	daily := make(map[string]*dayCounts)
	for _, p := range posts {
		date := p.CreatedAt.UTC().Format("2006-01-02")
		d, ok := daily[date]
		if !ok {
			d = &dayCounts{}
			daily[date] = d
		}

		switch p.Sentiment {
		case entities.SentimentPositive:
			d.positive++
		case entities.SentimentNeutral:
			d.neutral++
		case entities.SentimentNegative:
			d.negative++
		}
	}

	dates := make([]string, 0, len(daily))
	for date := range daily {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	positive := make([]int, len(dates))
	neutral := make([]int, len(dates))
	negative := make([]int, len(dates))
	for i, date := range dates {
		positive[i] = daily[date].positive
		neutral[i] = daily[date].neutral
		negative[i] = daily[date].negative
	}

	return &Line{
		Labels: dates,
		Datasets: []LineDataset{
			{Label: "Positive", Data: positive, BorderColor: colorPositive, BackgroundColor: "rgba(72, 187, 120, 0.2)", Fill: true},
			{Label: "Neutral", Data: neutral, BorderColor: colorNeutral, BackgroundColor: "rgba(66, 153, 225, 0.2)", Fill: true},
			{Label: "Negative", Data: negative, BorderColor: colorNegative, BackgroundColor: "rgba(245, 101, 101, 0.2)", Fill: true},
		},
	}
}

// EngagementChart picks the topN posts by engagement and charts their
// likes/retweets/replies. Tweet texts are truncated to 50 runes.
func EngagementChart(posts []entities.AnalyzedPost, topN int) *Engagement {
	if len(posts) == 0 {
		return nil
	}

	sorted := make([]entities.AnalyzedPost, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Engagement() > sorted[j].Engagement()
	})

	if len(sorted) > topN {
		sorted = sorted[:topN]
	}

	labels := make([]string, len(sorted))
	likes := make([]int, len(sorted))
	retweets := make([]int, len(sorted))
	replies := make([]int, len(sorted))
	texts := make([]string, len(sorted))

	for i, p := range sorted {
		labels[i] = fmt.Sprintf("Tweet %d", i+1)
		likes[i] = p.Likes
		retweets[i] = p.Retweets
		replies[i] = p.Replies
		texts[i] = truncate(p.Text, 50)
	}

	return &Engagement{
		Labels: labels,
		Datasets: []BarDataset{
			{Label: "Likes", Data: likes, BackgroundColor: []string{colorNegative}},
			{Label: "Retweets", Data: retweets, BackgroundColor: []string{colorPositive}},
			{Label: "Replies", Data: replies, BackgroundColor: []string{colorNeutral}},
		},
		TweetTexts: texts,
	}
}

// ConfidenceDistribution buckets confidences into five fixed 20-point bins.
func ConfidenceDistribution(posts []entities.AnalyzedPost) *Histogram {
	if len(posts) == 0 {
		return nil
	}

	bins := make([]int, 5)
	for _, p := range posts {
		confidence := p.Confidence * 100
		switch {
		case confidence <= 20:
			bins[0]++
		case confidence <= 40:
			bins[1]++
		case confidence <= 60:
			bins[2]++
		case confidence <= 80:
			bins[3]++
		default:
			bins[4]++
		}
	}

	return &Histogram{
		Labels:          []string{"0-20%", "20-40%", "40-60%", "60-80%", "80-100%"},
		Data:            bins,
		BackgroundColor: []string{"#f56565", "#ed8936", "#ecc94b", "#48bb78", "#38a169"},
	}
}

// TopHashtags counts hashtags across posts and charts the topN. Returns nil
// when no post carries a hashtag.
func TopHashtags(posts []entities.AnalyzedPost, topN int) *Hashtags {
	if len(posts) == 0 {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for _, p := range posts {
		for _, tag := range p.Hashtags {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	if len(order) == 0 {
		return nil
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > topN {
		order = order[:topN]
	}

	labels := make([]string, len(order))
	data := make([]int, len(order))
	for i, tag := range order {
		labels[i] = "#" + tag
		data[i] = counts[tag]
	}

	return &Hashtags{
		Labels:          labels,
		Data:            data,
		BackgroundColor: colorHashtag,
	}
}

// SentimentByHour builds the 24-bucket hourly sentiment distribution keyed by
// the UTC hour of each post's timestamp.
func SentimentByHour(posts []entities.AnalyzedPost) *Line {
	if len(posts) == 0 {
		return nil
	}

	positive := make([]int, 24)
	neutral := make([]int, 24)
	negative := make([]int, 24)

	for _, p := range posts {
		hour := p.CreatedAt.UTC().Hour()
		switch p.Sentiment {
		case entities.SentimentPositive:
			positive[hour]++
		case entities.SentimentNeutral:
			neutral[hour]++
		case entities.SentimentNegative:
			negative[hour]++
		}
	}

	labels := make([]string, 24)
	for h := range labels {
		labels[h] = fmt.Sprintf("%02d:00", h)
	}

	return &Line{
		Labels: labels,
		Datasets: []LineDataset{
			{Label: "Positive", Data: positive, BorderColor: colorPositive},
			{Label: "Neutral", Data: neutral, BorderColor: colorNeutral},
			{Label: "Negative", Data: negative, BorderColor: colorNegative},
		},
	}
}

// UserComparisonChart charts followers/following/tweets side by side.
func UserComparisonChart(user1, user2 *entities.UserInfo) *UserComparison {
	if user1 == nil || user2 == nil {
		return nil
	}

	return &UserComparison{
		Labels: []string{"Followers", "Following", "Total Tweets"},
		Datasets: []UserComparisonDataset{
			{
				Label:           user1.Username,
				Data:            []int{user1.FollowersCount, user1.FollowingCount, user1.TweetCount},
				BackgroundColor: colorDataset1,
			},
			{
				Label:           user2.Username,
				Data:            []int{user2.FollowersCount, user2.FollowingCount, user2.TweetCount},
				BackgroundColor: colorDataset2,
			},
		},
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n]) + "..."
}
