// Package currency converts monetary amounts to USD using live exchange
// rates with a session cache and a static fallback table. It is a standalone
// collaborator of the matching core: the core itself assumes all monetary
// values it receives are already USD-denominated.
package currency

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Config holds the rate-source endpoints and caching policy.
type Config struct {
	PrimaryURL string        // returns {"rates": {code: rate}}
	BackupURL  string        // returns {"success": bool, "rates": {...}}
	CacheTTL   time.Duration // how long fetched rates stay fresh
	Timeout    time.Duration // per-request HTTP timeout
	RateLimit  float64       // API requests per second
}

// DefaultConfig returns the production converter configuration.
func DefaultConfig() Config {
	return Config{
		PrimaryURL: "https://api.exchangerate-api.com/v4/latest/USD",
		BackupURL:  "https://api.exchangerate.host/latest?base=USD",
		CacheTTL:   time.Hour,
		Timeout:    15 * time.Second,
		RateLimit:  1,
	}
}

// fallbackRates are approximate rates used only when both APIs fail and no
// cached rates exist.
var fallbackRates = map[string]float64{
	"USD": 1.0,
	"EUR": 0.85,
	"GBP": 0.78,
	"JPY": 150.0,
	"CAD": 1.35,
	"AUD": 1.55,
	"CHF": 0.88,
	"CNY": 7.20,
	"INR": 83.0,
	"SGD": 1.34,
	"MXN": 17.5,
	"BRL": 5.8,
	"KRW": 1340.0,
	"ZAR": 18.5,
	"SEK": 10.8,
	"NOK": 10.9,
	"DKK": 6.9,
}

// Converter fetches and caches USD exchange rates. Safe for concurrent use.
type Converter struct {
	cfg     Config
	client  *http.Client
	limiter *rate.Limiter

	mu        sync.Mutex
	rates     map[string]float64
	fetchedAt time.Time
}

// New builds a Converter, falling back to defaults for unset fields.
func New(cfg Config) *Converter {
	def := DefaultConfig()
	if cfg.PrimaryURL == "" {
		cfg.PrimaryURL = def.PrimaryURL
	}
	if cfg.BackupURL == "" {
		cfg.BackupURL = def.BackupURL
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = def.CacheTTL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = def.RateLimit
	}
	return &Converter{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), 1),
	}
}

// Rates returns the current USD exchange rate table, fetching fresh rates
// when the cache is stale or force is set. API failures fall back to the
// cached table, then to the static fallback rates; Rates never fails.
func (c *Converter) Rates(ctx context.Context, force bool) map[string]float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !force && c.rates != nil && time.Since(c.fetchedAt) < c.cfg.CacheTTL {
		return c.rates
	}

	for _, url := range []string{c.cfg.PrimaryURL, c.cfg.BackupURL} {
		rates, err := c.fetch(ctx, url)
		if err != nil {
			zap.L().Warn("exchange rate fetch failed", zap.String("url", url), zap.Error(err))
			continue
		}
		rates["USD"] = 1.0
		c.rates = rates
		c.fetchedAt = time.Now()
		zap.L().Info("fetched exchange rates", zap.Int("currencies", len(rates)))
		return c.rates
	}

	if c.rates != nil {
		zap.L().Warn("using cached exchange rates, both APIs failed",
			zap.Duration("age", time.Since(c.fetchedAt)))
		return c.rates
	}

	zap.L().Error("both rate APIs failed with no cache, using static fallback rates")
	c.rates = make(map[string]float64, len(fallbackRates))
	for k, v := range fallbackRates {
		c.rates[k] = v
	}
	c.fetchedAt = time.Now()
	return c.rates
}

func (c *Converter) fetch(ctx context.Context, url string) (map[string]float64, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "currency: rate limit wait")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, eris.Wrap(err, "currency: build request")
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "currency: fetch rates")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("currency: rate API returned %d", resp.StatusCode)
	}

	var body struct {
		Success *bool              `json:"success"`
		Rates   map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, eris.Wrap(err, "currency: decode rates")
	}
	if body.Success != nil && !*body.Success {
		return nil, eris.New("currency: rate API reported failure")
	}
	if len(body.Rates) == 0 {
		return nil, eris.New("currency: rate API returned no rates")
	}
	return body.Rates, nil
}

// ToUSD converts an amount from the given currency to USD, rounded to cents.
// An unknown currency code passes the amount through unchanged with an
// error-level log: a wrong figure a human can spot beats a dropped one.
func (c *Converter) ToUSD(ctx context.Context, amount float64, code string) float64 {
	if amount == 0 {
		return 0
	}

	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" || code == "USD" {
		return amount
	}

	rates := c.Rates(ctx, false)
	r, ok := rates[code]
	if !ok {
		zap.L().Error("currency code not found in rate table, passing amount through",
			zap.String("currency", code),
			zap.Float64("amount", amount),
		)
		return amount
	}
	if r <= 0 {
		zap.L().Error("invalid exchange rate", zap.String("currency", code), zap.Float64("rate", r))
		return amount
	}

	return math.Round(amount/r*100) / 100
}

// Supported returns the sorted list of currency codes in the current table.
func (c *Converter) Supported(ctx context.Context) []string {
	rates := c.Rates(ctx, false)
	codes := make([]string, 0, len(rates))
	for code := range rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
