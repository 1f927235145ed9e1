// Package health contains code for health checks.
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// nolint:gochecknoglobals
var (
	version = "dev"
	commit  = "undefined"
)

// GetVersion returns service's version and commit.
func GetVersion() string {
	return fmt.Sprintf("%s-%s", version, commit)
}

// Pinger pings a subsystem.
type Pinger interface {
	// Ping returns nil when the subsystem is ready.
	Ping(ctx context.Context) error
	// Name returns name of pinger.
	Name() string
}

type subjectPinger struct {
	f func(ctx context.Context) error
	s string
}

func (p subjectPinger) Ping(ctx context.Context) error {
	return p.f(ctx)
}

func (p subjectPinger) Name() string {
	return p.s
}

// SubjectPinger wraps a plain ping function with a subsystem name.
func SubjectPinger(s string, f func(ctx context.Context) error) Pinger {
	return subjectPinger{
		f: f,
		s: s,
	}
}

// Response is the health endpoint's payload: readiness per subsystem plus
// error details for the ones that failed.
type Response struct {
	Version string            `json:"version"`
	Commit  string            `json:"commit"`
	Ready   map[string]bool   `json:"ready"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Handler checks every pinger in parallel within the timeout.
func Handler(timeout time.Duration, p ...Pinger) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		gr, ctx := errgroup.WithContext(ctx)

		var mu sync.Mutex
		resp := Response{
			Version: version,
			Commit:  commit,
			Ready:   map[string]bool{},
			Errors:  map[string]string{},
		}

		for i := range p {
			v := p[i]
			gr.Go(func() error {
				err := v.Ping(ctx)
				if err != nil {
					logrus.WithError(err).WithField("subsystem", v.Name()).Error("health check failed")
				}

				mu.Lock()
				resp.Ready[v.Name()] = err == nil
				if err != nil {
					resp.Errors[v.Name()] = err.Error()
				}
				mu.Unlock()

				return nil
			})
		}

		_ = gr.Wait()

		w.Header().Set("Content-Type", "application/json")
		data, _ := json.Marshal(resp)
		w.Write(data) // nolint:errcheck
	}
}
