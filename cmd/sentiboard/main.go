package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Decentr-net/logrus/sentry"

	"github.com/sentiboard/sentiboard/internal/health"
	"github.com/sentiboard/sentiboard/internal/sentiment"
	"github.com/sentiboard/sentiboard/internal/sentiment/onnx"
	"github.com/sentiboard/sentiboard/internal/sentiment/vader"
	"github.com/sentiboard/sentiboard/internal/server"
	"github.com/sentiboard/sentiboard/internal/twitter/twitterapi"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Host           string        `long:"http.host" env:"HTTP_HOST" default:"0.0.0.0" description:"IP to listen on"`
	Port           int           `long:"http.port" env:"HTTP_PORT" default:"8080" description:"port to listen on"`
	RequestTimeout time.Duration `long:"http.request_timeout" env:"HTTP_REQUEST_TIMEOUT" default:"45s" description:"request processing timeout"`

	TwitterBaseURL string        `long:"twitter.base_url" env:"TWITTER_BASE_URL" default:"https://api.twitter.com" description:"twitter api base url"`
	TwitterToken   string        `long:"twitter.bearer_token" env:"BEARER_TOKEN" description:"twitter api bearer token"`
	TwitterTimeout time.Duration `long:"twitter.timeout" env:"TWITTER_TIMEOUT" default:"15s" description:"timeout for requests to the twitter api"`

	SentimentBackend string `long:"sentiment.backend" env:"SENTIMENT_BACKEND" default:"vader" choice:"vader" choice:"onnx" choice:"none" description:"sentiment classifier backend"`
	ModelPath        string `long:"sentiment.model" env:"MODEL_PATH" default:"models/sentiment" description:"path to the pre-trained onnx model"`

	LogLevel  string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
	SentryDSN string `long:"sentry.dsn" env:"SENTRY_DSN" description:"sentry dsn"`
}{}

var errTerminated = errors.New("terminated")

func main() {
	if err := godotenv.Load(); err == nil {
		logrus.Info("loaded environment from .env")
	}

	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Sentiboard"
	parser.LongDescription = "Twitter sentiment analysis backend"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)

	if opts.SentryDSN != "" {
		hook, err := sentry.NewHook(sentry.Options{
			Dsn:              opts.SentryDSN,
			AttachStacktrace: true,
			Release:          health.GetVersion(),
			ServerName:       "sentiboard",
		}, logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel)

		if err != nil {
			logrus.WithError(err).Fatal("failed to init sentry")
		}

		logrus.AddHook(hook)
	} else {
		logrus.Info("empty sentry dsn")
		logrus.Warn("skip sentry initialization")
	}

	if opts.TwitterToken == "" {
		logrus.Warn("twitter bearer token is not set, fetch requests will fail")
	}

	tw := twitterapi.New(opts.TwitterToken, opts.TwitterTimeout, twitterapi.WithBaseURL(opts.TwitterBaseURL))
	an := sentiment.NewAnalyzer(getClassifier())

	r := chi.NewMux()
	server.SetupRouter(tw, an, r, opts.RequestTimeout)
	r.Get("/health", health.Handler(
		5*time.Second,
		health.SubjectPinger("twitter", tw.Ping),
		health.SubjectPinger("sentiment", an.Ping),
	))

	srv := http.Server{
		Addr:    fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler: r,
	}

	ctx, cancel := context.WithCancel(context.Background())

	gr, _ := errgroup.WithContext(ctx)
	gr.Go(srv.ListenAndServe)
	gr.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

		s := <-sigs

		logrus.Infof("terminating by %s signal", s)

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("failed to shutdown server gracefully")
		}

		return errTerminated
	})

	logrus.Info("service started")

	if err := gr.Wait(); err != nil &&
		!errors.Is(err, errTerminated) && !errors.Is(err, http.ErrServerClosed) {
		logrus.WithError(err).Fatal("service unexpectedly closed")
	}
}

// getClassifier builds the configured backend. A missing or broken model
// degrades the service to the Unknown fallback instead of failing startup.
func getClassifier() sentiment.Classifier {
	switch opts.SentimentBackend {
	case "onnx":
		c, err := onnx.New(opts.ModelPath)
		if err != nil {
			logrus.WithError(err).Warn("failed to load onnx model, sentiment is degraded")
			return nil
		}

		logrus.WithField("model", opts.ModelPath).Info("sentiment model loaded")
		return c
	case "vader":
		logrus.Info("using vader sentiment backend")
		return vader.New()
	default:
		logrus.Warn("sentiment backend disabled")
		return nil
	}
}
