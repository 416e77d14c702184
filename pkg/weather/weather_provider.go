package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"prep-scheduler/pkg/planner"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	RequestTimeout = 10 * time.Second
	// unknownCode is used when the response carries no weather_code.
	unknownCode = 2
	cacheKey    = "weather:current_code"
)

type (
	Provider interface {
		CurrentLabel(ctx context.Context) (planner.WeatherLabel, error)
	}

	Config struct {
		BaseURL   string
		Latitude  float64
		Longitude float64
		CacheTTL  time.Duration
	}

	openMeteoProvider struct {
		cfg        Config
		httpClient *http.Client
		cache      *redis.Client
	}

	forecastResponse struct {
		Current struct {
			WeatherCode *int `json:"weather_code"`
		} `json:"current"`
	}
)

// NewOpenMeteoProvider caches the current weather code in redis when rdb is not nil.
func NewOpenMeteoProvider(cfg Config, rdb *redis.Client) Provider {
	return &openMeteoProvider{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: RequestTimeout},
		cache:      rdb,
	}
}

func (p *openMeteoProvider) CurrentLabel(ctx context.Context) (planner.WeatherLabel, error) {
	if code, ok := p.cachedCode(ctx); ok {
		return planner.ClassifyWeatherCode(code), nil
	}

	code, err := p.fetchCode(ctx)
	if err != nil {
		return "", err
	}

	if p.cache != nil && p.cfg.CacheTTL > 0 {
		// a failed cache write only costs the next request a fetch
		_ = p.cache.Set(ctx, cacheKey, code, p.cfg.CacheTTL).Err()
	}
	return planner.ClassifyWeatherCode(code), nil
}

func (p *openMeteoProvider) cachedCode(ctx context.Context) (int, bool) {
	if p.cache == nil || p.cfg.CacheTTL <= 0 {
		return 0, false
	}
	code, err := p.cache.Get(ctx, cacheKey).Int()
	if err != nil {
		return 0, false
	}
	return code, true
}

func (p *openMeteoProvider) fetchCode(ctx context.Context) (int, error) {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(p.cfg.Latitude, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(p.cfg.Longitude, 'f', -1, 64))
	query.Set("current", "weather_code")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.BaseURL+"?"+query.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create weather request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to call weather API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}

	var body forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("failed to decode weather response: %w", err)
	}
	if body.Current.WeatherCode == nil {
		return unknownCode, nil
	}
	return *body.Current.WeatherCode, nil
}

// Static always reports the same label, or the same error.
type Static struct {
	Label planner.WeatherLabel
	Err   error
}

func (s Static) CurrentLabel(context.Context) (planner.WeatherLabel, error) {
	if s.Err != nil {
		return "", s.Err
	}
	return s.Label, nil
}
