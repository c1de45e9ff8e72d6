package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestDropCountsByKind(t *testing.T) {
	c := New()
	c.Drop("top-level")
	c.Drop("top-level")
	c.Drop("rejected")

	if got := testutil.ToFloat64(c.moves.WithLabelValues("top-level")); got != 2 {
		t.Fatalf("expected 2 top-level drops, got %v", got)
	}
	if got := testutil.ToFloat64(c.moves.WithLabelValues("rejected")); got != 1 {
		t.Fatalf("expected 1 rejected drop, got %v", got)
	}
}

func TestHandlerExposesCounters(t *testing.T) {
	c := New()
	c.Drag()
	c.Drop("promote")

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	if !strings.Contains(body, `dragmenu_moves_total{kind="promote"} 1`) {
		t.Fatalf("expected promote counter in output, got:\n%s", body)
	}
	if !strings.Contains(body, "dragmenu_drags_total 1") {
		t.Fatalf("expected drag counter in output, got:\n%s", body)
	}
}

func TestNilCountersIgnoreObservations(t *testing.T) {
	var c *Counters
	c.Drop("none")
	c.Drag()
}
