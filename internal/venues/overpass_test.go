package venues

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkravets/geoseek/internal/logging"
	"github.com/dkravets/geoseek/internal/models"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

const overpassFixture = `{
  "elements": [
    {"type": "node", "id": 101, "lat": 52.5201, "lon": 13.4050,
     "tags": {"amenity": "pub", "name": "The Crown"}},
    {"type": "node", "id": 102, "lat": 52.5210, "lon": 13.4060,
     "tags": {"amenity": "bar", "name": "Neon"}},
    {"type": "node", "id": 103, "lat": 52.5220, "lon": 13.4070,
     "tags": {"amenity": "pub"}},
    {"type": "way", "id": 201,
     "center": {"lat": 52.5230, "lon": 13.4080},
     "tags": {"amenity": "pub", "name": "Corner House"}}
  ]
}`

func TestFetchInRadius_ParsesNodesAndWays(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		query := r.FormValue("data")
		assert.Contains(t, query, `"amenity"="pub"`)
		assert.Contains(t, query, "around:500")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(overpassFixture))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testLogger())
	got := c.FetchInRadius(context.Background(), models.Location{Lat: 52.52, Lng: 13.405}, 500)

	// The unnamed pub is dropped; the way uses its center coordinate.
	require.Len(t, got, 3)
	assert.Equal(t, "The Crown", got[0].Name)
	assert.Equal(t, "pub", got[0].Category)
	assert.Equal(t, "osm-201", got[2].ID)
	assert.Equal(t, 52.5230, got[2].Location.Lat)
}

func TestFetchInRadius_ServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testLogger())
	got := c.FetchInRadius(context.Background(), models.Location{Lat: 52.52, Lng: 13.405}, 500)
	assert.Empty(t, got)
}

func TestFetchInRadius_BadJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testLogger())
	got := c.FetchInRadius(context.Background(), models.Location{Lat: 52.52, Lng: 13.405}, 500)
	assert.Empty(t, got)
}

func TestFetchInRadius_Unreachable(t *testing.T) {
	t.Parallel()

	c := NewClient("http://127.0.0.1:1", testLogger())
	got := c.FetchInRadius(context.Background(), models.Location{Lat: 52.52, Lng: 13.405}, 500)
	assert.Empty(t, got)
}
