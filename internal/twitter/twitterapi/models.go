package twitterapi

import (
	"time"

	"github.com/sentiboard/sentiboard/internal/entities"
)

// Wire shapes of the Twitter API v2 responses, limited to the fields the
// service requests.

type userResponse struct {
	Data *userData `json:"data"`
}

type userData struct {
	ID            string            `json:"id"`
	Username      string            `json:"username"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	CreatedAt     time.Time         `json:"created_at"`
	Verified      bool              `json:"verified"`
	PublicMetrics userPublicMetrics `json:"public_metrics"`
}

type userPublicMetrics struct {
	FollowersCount int `json:"followers_count"`
	FollowingCount int `json:"following_count"`
	TweetCount     int `json:"tweet_count"`
	ListedCount    int `json:"listed_count"`
}

func (d *userData) toUserInfo() *entities.UserInfo {
	return &entities.UserInfo{
		ID:             d.ID,
		Username:       d.Username,
		Name:           d.Name,
		Description:    d.Description,
		CreatedAt:      d.CreatedAt,
		Verified:       d.Verified,
		FollowersCount: d.PublicMetrics.FollowersCount,
		FollowingCount: d.PublicMetrics.FollowingCount,
		TweetCount:     d.PublicMetrics.TweetCount,
		ListedCount:    d.PublicMetrics.ListedCount,
	}
}

type tweetsResponse struct {
	Data []tweetData `json:"data"`
}

type tweetResponse struct {
	Data *tweetData `json:"data"`
}

type tweetData struct {
	ID               string             `json:"id"`
	Text             string             `json:"text"`
	AuthorID         string             `json:"author_id"`
	CreatedAt        time.Time          `json:"created_at"`
	PublicMetrics    tweetPublicMetrics `json:"public_metrics"`
	Entities         *tweetEntities     `json:"entities"`
	ReferencedTweets []referencedTweet  `json:"referenced_tweets"`
}

type tweetPublicMetrics struct {
	LikeCount       int `json:"like_count"`
	RetweetCount    int `json:"retweet_count"`
	ReplyCount      int `json:"reply_count"`
	ImpressionCount int `json:"impression_count"`
}

type tweetEntities struct {
	Hashtags []hashtagEntity `json:"hashtags"`
}

type hashtagEntity struct {
	Tag string `json:"tag"`
}

type referencedTweet struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

func (t tweetData) toPost() entities.Post {
	var hashtags []string
	if t.Entities != nil {
		for _, h := range t.Entities.Hashtags {
			hashtags = append(hashtags, h.Tag)
		}
	}

	return entities.Post{
		ID:          t.ID,
		Text:        t.Text,
		CreatedAt:   t.CreatedAt,
		AuthorID:    t.AuthorID,
		Likes:       t.PublicMetrics.LikeCount,
		Retweets:    t.PublicMetrics.RetweetCount,
		Replies:     t.PublicMetrics.ReplyCount,
		Impressions: t.PublicMetrics.ImpressionCount,
		Hashtags:    hashtags,
	}
}

func toPosts(data []tweetData) []entities.Post {
	out := make([]entities.Post, len(data))
	for i, t := range data {
		out[i] = t.toPost()
	}

	return out
}
