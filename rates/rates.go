package rates

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"
	"time"
)

// DefaultTTL is how long a fetched rate table stays fresh.
const DefaultTTL = time.Hour

const defaultAPIURL = "https://open.er-api.com/v6/latest/AED"

// fallbackRates is an approximate AED table used when the upstream API is
// unreachable and nothing is cached yet. Stale-but-correct beats an error
// on a marketing page.
var fallbackRates = map[string]float64{
	"USD": 0.2723,
	"EUR": 0.2520,
	"GBP": 0.2150,
	"INR": 22.85,
	"PKR": 75.90,
	"PHP": 15.40,
	"BDT": 29.80,
	"EGP": 13.10,
}

// Table is one snapshot of AED exchange rates.
type Table struct {
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	FetchedAt time.Time          `json:"fetchedAt"`
	Fallback  bool               `json:"fallback,omitempty"`
}

// Cache holds the current rate table plus its fetch time. The clock and
// HTTP client are injected so tests control time and the network.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	client  *http.Client
	apiURL  string
	current *Table
}

// Option configures a Cache.
type Option func(*Cache)

func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

func WithClient(client *http.Client) Option {
	return func(c *Cache) { c.client = client }
}

func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) { c.ttl = ttl }
}

func WithAPIURL(url string) Option {
	return func(c *Cache) { c.apiURL = url }
}

func NewCache(opts ...Option) *Cache {
	cache := &Cache{
		ttl:    DefaultTTL,
		now:    time.Now,
		client: &http.Client{Timeout: 10 * time.Second},
		apiURL: defaultAPIURL,
	}
	if url := os.Getenv("RATES_API_URL"); url != "" {
		cache.apiURL = url
	}
	for _, opt := range opts {
		opt(cache)
	}
	return cache
}

// Get returns the cached table while it is fresh, otherwise fetches a new
// one. A failed fetch never errors: the stale table is reused if present,
// the fixed fallback table otherwise.
func (c *Cache) Get() Table {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current != nil && c.now().Sub(c.current.FetchedAt) < c.ttl {
		return *c.current
	}

	fetched, err := c.fetch()
	if err != nil {
		log.Printf("rates: fetch failed, using fallback: %v", err)
		if c.current != nil {
			return *c.current
		}
		return Table{
			Base:      "AED",
			Rates:     fallbackRates,
			FetchedAt: c.now(),
			Fallback:  true,
		}
	}

	c.current = fetched
	return *c.current
}

type apiResponse struct {
	BaseCode string             `json:"base_code"`
	Rates    map[string]float64 `json:"rates"`
}

func (c *Cache) fetch() (*Table, error) {
	resp, err := c.client.Get(c.apiURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rates: upstream returned %d", resp.StatusCode)
	}

	var decoded apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, err
	}
	if len(decoded.Rates) == 0 {
		return nil, fmt.Errorf("rates: upstream returned empty table")
	}

	base := decoded.BaseCode
	if base == "" {
		base = "AED"
	}

	return &Table{
		Base:      base,
		Rates:     decoded.Rates,
		FetchedAt: c.now(),
	}, nil
}
