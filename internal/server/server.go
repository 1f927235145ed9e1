// Package server Sentiboard
//
// Sentiboard is a backend which fetches tweets, scores their sentiment with a
// pre-trained classifier and shapes the results for the dashboard frontend.
//
//	Schemes: https
//	BasePath: /v1
//
//	Produces:
//	- application/json
//	Consumes:
//	- application/json
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
	"github.com/tomasen/realip"

	"github.com/sentiboard/sentiboard/internal/sentiment"
	"github.com/sentiboard/sentiboard/internal/twitter"
)

const defaultMaxBodySize = 4096

type server struct {
	tw          twitter.Client
	an          *sentiment.Analyzer
	maxBodySize int64
}

// SetupRouter setups handlers to chi router.
func SetupRouter(tw twitter.Client, an *sentiment.Analyzer, r chi.Router, timeout time.Duration) {
	r.Use(
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		middleware.RequestID,
		loggerMiddleware,
		middleware.Recoverer,
		middleware.Timeout(timeout),
	)

	srv := server{
		tw:          tw,
		an:          an,
		maxBodySize: defaultMaxBodySize,
	}

	r.Route("/v1", func(r chi.Router) {
		r.Post("/users/info", srv.getUserInfo)
		r.Post("/users/tweets", srv.getUserTweets)
		r.Post("/users/compare", srv.compareUsers)
		r.Post("/tweets/replies", srv.getTweetReplies)
		r.Post("/tweets/compare", srv.compareTweets)
		r.Post("/search", srv.searchAndAnalyze)
		r.Post("/sentiment", srv.testSentiment)
	})
}

func loggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		logrus.WithFields(logrus.Fields{
			"request_id": middleware.GetReqID(r.Context()),
			"ip":         realip.FromRequest(r),
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"elapsed":    time.Since(start),
		}).Info("request handled")
	})
}
