package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Handler(t *testing.T) {
	h := Handler(time.Second,
		SubjectPinger("up", func(ctx context.Context) error { return nil }),
		SubjectPinger("down", func(ctx context.Context) error { return fmt.Errorf("boom") }),
	)

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	assert.Equal(t, GetVersion(), fmt.Sprintf("%s-%s", resp.Version, resp.Commit))
	assert.Equal(t, map[string]bool{"up": true, "down": false}, resp.Ready)
	assert.Equal(t, map[string]string{"down": "boom"}, resp.Errors)
}

func Test_Handler_noPingers(t *testing.T) {
	w := httptest.NewRecorder()
	Handler(time.Second)(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	var resp Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	assert.Empty(t, resp.Ready)
	assert.Empty(t, resp.Errors)
}
