// Package venues looks up named points of interest (pubs and bars) inside
// the search circle using the OpenStreetMap Overpass API. Lookup is best
// effort: every failure degrades to an empty list, never an error the
// caller must handle.
package venues

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dkravets/geoseek/internal/logging"
	"github.com/dkravets/geoseek/internal/models"
)

const defaultEndpoint = "https://overpass-api.de/api/interpreter"

// Venue is a named point of interest inside the search circle.
type Venue struct {
	ID       string
	Name     string
	Location models.Location
	Category string // "pub" or "bar"
}

// Client queries the Overpass API.
type Client struct {
	endpoint string
	http     *http.Client
	logger   logging.Logger
}

// NewClient returns a client against the public Overpass endpoint. Pass a
// non-empty endpoint to override it (tests, self-hosted mirrors).
func NewClient(endpoint string, logger logging.Logger) *Client {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 30 * time.Second},
		logger:   logger.With("module", "venues"),
	}
}

type overpassResponse struct {
	Elements []struct {
		ID     int64   `json:"id"`
		Lat    float64 `json:"lat"`
		Lon    float64 `json:"lon"`
		Center *struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"center"`
		Tags map[string]string `json:"tags"`
	} `json:"elements"`
}

// FetchInRadius returns the named pubs and bars within radiusMeters of
// center. On any failure it logs and returns an empty slice.
func (c *Client) FetchInRadius(ctx context.Context, center models.Location, radiusMeters float64) []Venue {
	query := fmt.Sprintf(`
		[out:json][timeout:25];
		(
		  node["amenity"="pub"](around:%.0f,%f,%f);
		  node["amenity"="bar"](around:%.0f,%f,%f);
		  way["amenity"="pub"](around:%.0f,%f,%f);
		  way["amenity"="bar"](around:%.0f,%f,%f);
		);
		out center;`,
		radiusMeters, center.Lat, center.Lng,
		radiusMeters, center.Lat, center.Lng,
		radiusMeters, center.Lat, center.Lng,
		radiusMeters, center.Lat, center.Lng)

	body := url.Values{"data": {query}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(body))
	if err != nil {
		c.logger.Warn(ctx, "venue lookup request build failed", "error", err)
		return nil
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "venue lookup failed", "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn(ctx, "venue lookup rejected", "status", resp.StatusCode)
		return nil
	}

	var parsed overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.logger.Warn(ctx, "venue lookup decode failed", "error", err)
		return nil
	}

	venues := make([]Venue, 0, len(parsed.Elements))
	for _, el := range parsed.Elements {
		name := el.Tags["name"]
		if name == "" {
			continue
		}
		lat, lon := el.Lat, el.Lon
		if el.Center != nil {
			lat, lon = el.Center.Lat, el.Center.Lon
		}
		if lat == 0 && lon == 0 {
			continue
		}
		venues = append(venues, Venue{
			ID:       fmt.Sprintf("osm-%d", el.ID),
			Name:     name,
			Location: models.Location{Lat: lat, Lng: lon},
			Category: el.Tags["amenity"],
		})
	}

	return venues
}
