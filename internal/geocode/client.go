package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"geotrail/internal/config"
)

// Client resolves a coordinate pair to a formatted address through the
// remote geocoding service. Resolution never fails hard: any transport,
// parse or empty-result outcome degrades to ("", false) so a poll cycle can
// still append an address-less record. No retries, no caching.
type Client struct {
	logger *slog.Logger
	cfg    config.GeocoderConfig
	http   *http.Client
}

func NewClient(logger *slog.Logger, cfg config.GeocoderConfig) *Client {
	return &Client{
		logger: logger,
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
	}
}

type geocodeResponse struct {
	Results []struct {
		Formatted string `json:"formatted"`
	} `json:"results"`
}

// Resolve issues a single GET keyed by the coordinate pair and returns the
// first result's formatted address. The second return value reports whether
// an address was actually resolved.
func (c *Client) Resolve(ctx context.Context, lat, lng float64) (string, bool) {
	q := url.Values{}
	q.Set("q", strconv.FormatFloat(lat, 'f', -1, 64)+"+"+strconv.FormatFloat(lng, 'f', -1, 64))
	q.Set("key", c.cfg.APIKey)

	reqURL := fmt.Sprintf("%s/geocode/v1/json?%s", c.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("geocode request build failed", slog.Any("error", err))
		return "", false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("geocode request failed",
			slog.Float64("lat", lat),
			slog.Float64("lng", lng),
			slog.Any("error", err),
		)
		return "", false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("geocode unexpected status",
			slog.Int("status", resp.StatusCode),
			slog.Float64("lat", lat),
			slog.Float64("lng", lng),
		)
		return "", false
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logger.Error("geocode response decode failed", slog.Any("error", err))
		return "", false
	}

	if len(body.Results) == 0 {
		c.logger.Warn("geocode returned no results",
			slog.Float64("lat", lat),
			slog.Float64("lng", lng),
		)
		return "", false
	}

	return body.Results[0].Formatted, true
}
