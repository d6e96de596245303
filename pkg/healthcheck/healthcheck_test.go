package healthcheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func probe(status Status) Checker {
	return CheckerFunc(func(ctx context.Context) Check {
		return Check{Status: status, LastChecked: time.Now()}
	})
}

func TestAggregation(t *testing.T) {
	t.Run("AllHealthy", func(t *testing.T) {
		hc := New("test", zap.NewNop())
		hc.Register("a", probe(StatusHealthy))
		hc.Register("b", probe(StatusHealthy))

		resp := hc.Check(context.Background())

		assert.Equal(t, StatusHealthy, resp.Status)
		assert.Len(t, resp.Checks, 2)
	})

	t.Run("OneUnhealthy_MakesAggregateUnhealthy", func(t *testing.T) {
		hc := New("test", zap.NewNop())
		hc.Register("a", probe(StatusHealthy))
		hc.Register("b", probe(StatusUnhealthy))

		resp := hc.Check(context.Background())

		assert.Equal(t, StatusUnhealthy, resp.Status)
	})

	t.Run("DegradedOutranksHealthy", func(t *testing.T) {
		hc := New("test", zap.NewNop())
		hc.Register("a", probe(StatusDegraded))

		resp := hc.Check(context.Background())

		assert.Equal(t, StatusDegraded, resp.Status)
	})
}

func TestCaching(t *testing.T) {
	calls := 0
	hc := New("test", zap.NewNop())
	hc.SetCacheTTL(time.Minute)
	hc.Register("counted", CheckerFunc(func(ctx context.Context) Check {
		calls++
		return Check{Status: StatusHealthy}
	}))

	hc.Check(context.Background())
	hc.Check(context.Background())

	assert.Equal(t, 1, calls)
}

func TestHandler(t *testing.T) {
	t.Run("Healthy_Returns200", func(t *testing.T) {
		hc := New("test", zap.NewNop())
		hc.Register("a", probe(StatusHealthy))

		rec := httptest.NewRecorder()
		hc.Handler()(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"healthy"`)
	})

	t.Run("Unhealthy_Returns503", func(t *testing.T) {
		hc := New("test", zap.NewNop())
		hc.Register("a", probe(StatusUnhealthy))

		rec := httptest.NewRecorder()
		hc.Handler()(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
