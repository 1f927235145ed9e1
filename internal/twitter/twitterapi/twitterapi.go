// Package twitterapi implements the twitter.Client interface on top of the
// Twitter API v2 recent endpoints.
package twitterapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/sentiboard/sentiboard/internal/entities"
	"github.com/sentiboard/sentiboard/internal/twitter"
)

const defaultBaseURL = "https://api.twitter.com"

const (
	maxRetries     = 3
	initialBackoff = 500 * time.Millisecond
)

// searchWindow is how far back recent search reaches on the standard tier.
const searchWindow = 7 * 24 * time.Hour

// Option configures the client.
type Option func(c *Client)

// WithBaseURL overrides the API base URL. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// Client is a twitter.Client backed by the real API.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
}

// New creates a client authorized with the given bearer token.
func New(bearerToken string, timeout time.Duration, opts ...Option) *Client {
	hc := oauth2.NewClient(context.Background(), oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: bearerToken,
		TokenType:   "Bearer",
	}))
	hc.Timeout = timeout

	c := &Client{
		http:    hc,
		baseURL: defaultBaseURL,
		token:   bearerToken,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Ping reports whether the client is usable.
func (c *Client) Ping(_ context.Context) error {
	if c.token == "" {
		return fmt.Errorf("bearer token is not configured")
	}

	return nil
}

// GetUserInfo returns the user's profile with public metrics. The leading @
// is accepted and stripped.
func (c *Client) GetUserInfo(ctx context.Context, username string) (*entities.UserInfo, error) {
	username = strings.TrimPrefix(username, "@")

	q := url.Values{}
	q.Set("user.fields", "created_at,description,public_metrics,verified")

	var resp userResponse
	if err := c.get(ctx, "/2/users/by/username/"+url.PathEscape(username), q, &resp); err != nil {
		return nil, err
	}

	if resp.Data == nil {
		return nil, twitter.ErrNotFound
	}

	return resp.Data.toUserInfo(), nil
}

// GetUserTweets returns the user's recent original tweets, newest first.
func (c *Client) GetUserTweets(ctx context.Context, userID string, maxResults int) ([]entities.Post, error) {
	q := url.Values{}
	q.Set("max_results", strconv.Itoa(clampMaxResults(maxResults)))
	q.Set("tweet.fields", "created_at,public_metrics")
	q.Set("exclude", "retweets")

	var resp tweetsResponse
	if err := c.get(ctx, "/2/users/"+url.PathEscape(userID)+"/tweets", q, &resp); err != nil {
		return nil, err
	}

	return toPosts(resp.Data), nil
}

// SearchTweets searches tweets from the last seven days.
func (c *Client) SearchTweets(ctx context.Context, query string, maxResults int) ([]entities.Post, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("max_results", strconv.Itoa(clampMaxResults(maxResults)))
	q.Set("start_time", time.Now().Add(-searchWindow).UTC().Format(time.RFC3339))
	q.Set("tweet.fields", "created_at,public_metrics,author_id,entities")

	var resp tweetsResponse
	if err := c.get(ctx, "/2/tweets/search/recent", q, &resp); err != nil {
		return nil, err
	}

	return toPosts(resp.Data), nil
}

// GetTweetReplies returns replies within the tweet's conversation. Search
// matches everything in the conversation, so only tweets actually referencing
// the parent as replied_to are kept.
func (c *Client) GetTweetReplies(ctx context.Context, tweetID string, maxResults int) ([]entities.Post, error) {
	q := url.Values{}
	q.Set("query", "conversation_id:"+tweetID)
	q.Set("max_results", strconv.Itoa(clampMaxResults(maxResults)))
	q.Set("tweet.fields", "created_at,public_metrics,author_id,referenced_tweets")

	var resp tweetsResponse
	if err := c.get(ctx, "/2/tweets/search/recent", q, &resp); err != nil {
		return nil, err
	}

	replies := make([]entities.Post, 0, len(resp.Data))
	for _, t := range resp.Data {
		for _, ref := range t.ReferencedTweets {
			if ref.Type == "replied_to" {
				replies = append(replies, t.toPost())
				break
			}
		}
	}

	return replies, nil
}

// GetSingleTweet returns one tweet by id.
func (c *Client) GetSingleTweet(ctx context.Context, tweetID string) (*entities.Post, error) {
	q := url.Values{}
	q.Set("tweet.fields", "created_at,public_metrics,author_id")

	var resp tweetResponse
	if err := c.get(ctx, "/2/tweets/"+url.PathEscape(tweetID), q, &resp); err != nil {
		return nil, err
	}

	if resp.Data == nil {
		return nil, twitter.ErrNotFound
	}

	p := resp.Data.toPost()

	return &p, nil
}

// get performs a GET with retries: request errors, 5xx and 429 are retried
// with a doubling backoff.
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var (
		resp    *http.Response
		err     error
		backoff = initialBackoff
	)

	for attempt := 0; attempt < maxRetries; attempt++ {
		var req *http.Request
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}

		resp, err = c.http.Do(req)
		if err == nil && resp.StatusCode < http.StatusInternalServerError && resp.StatusCode != http.StatusTooManyRequests {
			break
		}

		if resp != nil {
			resp.Body.Close()
			resp = nil
		}

		logrus.WithError(err).WithField("path", path).WithField("attempt", attempt+1).
			Warn("twitter request failed, retrying")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	if resp == nil {
		if err != nil {
			return fmt.Errorf("request failed after retries: %w", err)
		}
		return fmt.Errorf("request failed after %d attempts", maxRetries)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return twitter.ErrNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from twitter api", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}

func clampMaxResults(v int) int {
	if v <= 0 || v > twitter.MaxResultsLimit {
		return twitter.MaxResultsLimit
	}

	return v
}
