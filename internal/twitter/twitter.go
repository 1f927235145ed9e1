// Package twitter contains the social-media data source interface.
package twitter

import (
	"context"
	"fmt"

	"github.com/sentiboard/sentiboard/internal/entities"
)

//go:generate mockgen -destination=./mock/twitter.go -package=mock -source=twitter.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// MaxResultsLimit is the upper bound the API accepts per request.
const MaxResultsLimit = 100

// Client provides methods for fetching users, tweets and replies.
// Not-found targets surface as ErrNotFound; an empty slice means the target
// exists but yielded no data.
type Client interface {
	GetUserInfo(ctx context.Context, username string) (*entities.UserInfo, error)
	GetUserTweets(ctx context.Context, userID string, maxResults int) ([]entities.Post, error)
	SearchTweets(ctx context.Context, query string, maxResults int) ([]entities.Post, error)
	GetTweetReplies(ctx context.Context, tweetID string, maxResults int) ([]entities.Post, error)
	GetSingleTweet(ctx context.Context, tweetID string) (*entities.Post, error)

	Ping(ctx context.Context) error
}
