package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/divetools/swiftgps/record"
)

const (
	defaultBaseURL   = "https://nominatim.openstreetmap.org"
	defaultUserAgent = "swiftgps-backfill/1.0"
	defaultTimeout   = 10 * time.Second
	defaultCacheTTL  = 24 * time.Hour
)

// Place holds the names Nominatim associates with a coordinate. Any field
// may be empty; open-water fixes often resolve to nothing but a country.
type Place struct {
	Country  string
	Locality string
	Water    string
}

// IsZero reports whether no name at all was resolved.
func (p Place) IsZero() bool {
	return p == Place{}
}

// String joins locality and country into a display name, skipping blanks.
func (p Place) String() string {
	parts := make([]string, 0, 2)
	if p.Locality != "" {
		parts = append(parts, p.Locality)
	}

	if p.Country != "" {
		parts = append(parts, p.Country)
	}

	return strings.Join(parts, ", ")
}

// Client is a rate-limited, caching Nominatim reverse-geocoding client.
// The zero value is not usable; create clients with New.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	limiter   *rate.Limiter
	cache     *cache.Cache
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different Nominatim instance, such as
// a self-hosted one without the public rate limits.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithUserAgent sets the User-Agent header. The public Nominatim instance
// rejects anonymous clients, so the value should identify the application.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithRateLimit overrides the default one-request-per-second limit.
func WithRateLimit(interval time.Duration) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Every(interval), 1) }
}

// WithCacheTTL overrides how long resolved places are cached.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) { c.cache = cache.New(ttl, ttl/2) }
}

// New creates a Client with the Nominatim public-instance defaults: one
// request per second and a 24 hour result cache.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:   defaultBaseURL,
		userAgent: defaultUserAgent,
		http:      &http.Client{Timeout: defaultTimeout},
		limiter:   rate.NewLimiter(rate.Every(time.Second), 1),
		cache:     cache.New(defaultCacheTTL, time.Hour),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// reverseResponse is the subset of the Nominatim reverse response the
// client reads.
type reverseResponse struct {
	Address struct {
		Country string `json:"country"`
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		Island  string `json:"island"`
		County  string `json:"county"`
		State   string `json:"state"`
		Water   string `json:"water"`
		Bay     string `json:"bay"`
		Sea     string `json:"sea"`
	} `json:"address"`
}

// Reverse resolves a coordinate to a Place.
//
// Cached results return immediately; otherwise the call blocks on the rate
// limiter before issuing the request, so a burst of lookups is spread out
// automatically. The lookup uses zoom 10 (city granularity), which keeps
// shoreline fixes resolving to recognizable names instead of street
// addresses.
func (c *Client) Reverse(ctx context.Context, coord record.Coordinate) (Place, error) {
	key := coord.String()
	if v, ok := c.cache.Get(key); ok {
		return v.(Place), nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return Place{}, fmt.Errorf("reverse geocode: %w", err)
	}

	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%.5f", coord.Lat))
	q.Set("lon", fmt.Sprintf("%.5f", coord.Lon))
	q.Set("format", "json")
	q.Set("zoom", "10")
	q.Set("addressdetails", "1")
	q.Set("accept-language", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return Place{}, fmt.Errorf("reverse geocode: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return Place{}, fmt.Errorf("reverse geocode: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Place{}, fmt.Errorf("reverse geocode: unexpected status %s", resp.Status)
	}

	var payload reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Place{}, fmt.Errorf("reverse geocode: decode response: %w", err)
	}

	addr := payload.Address
	place := Place{
		Country:  addr.Country,
		Locality: firstNonEmpty(addr.City, addr.Town, addr.Village, addr.Island, addr.County, addr.State),
		Water:    firstNonEmpty(addr.Water, addr.Bay, addr.Sea),
	}

	c.cache.SetDefault(key, place)

	return place, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}

	return ""
}
