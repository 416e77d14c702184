package weather_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"prep-scheduler/pkg/planner"
	"prep-scheduler/pkg/weather"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, status int, body string) (*httptest.Server, *http.Request) {
	t.Helper()
	var last http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		last = *r
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &last
}

func TestOpenMeteoProvider_CurrentLabel(t *testing.T) {
	tests := []struct {
		name string
		body string
		want planner.WeatherLabel
	}{
		{"clear sky", `{"current":{"weather_code":0}}`, planner.WeatherSunny},
		{"drizzle", `{"current":{"weather_code":53}}`, planner.WeatherRain},
		{"thunderstorm", `{"current":{"weather_code":95}}`, planner.WeatherStorm},
		{"unmapped code", `{"current":{"weather_code":45}}`, planner.WeatherCloudy},
		{"missing code", `{"current":{}}`, planner.WeatherCloudy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newServer(t, http.StatusOK, tt.body)
			p := weather.NewOpenMeteoProvider(weather.Config{BaseURL: srv.URL, Latitude: 22.98, Longitude: 120.2}, nil)

			got, err := p.CurrentLabel(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpenMeteoProvider_Query(t *testing.T) {
	srv, last := newServer(t, http.StatusOK, `{"current":{"weather_code":1}}`)
	p := weather.NewOpenMeteoProvider(weather.Config{BaseURL: srv.URL, Latitude: 22.5, Longitude: 120.25}, nil)

	_, err := p.CurrentLabel(context.Background())
	require.NoError(t, err)

	q := last.URL.Query()
	assert.Equal(t, "22.5", q.Get("latitude"))
	assert.Equal(t, "120.25", q.Get("longitude"))
	assert.Equal(t, "weather_code", q.Get("current"))
}

func TestOpenMeteoProvider_Errors(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusServiceUnavailable, `{}`)
		p := weather.NewOpenMeteoProvider(weather.Config{BaseURL: srv.URL}, nil)

		_, err := p.CurrentLabel(context.Background())
		assert.Error(t, err)
	})

	t.Run("malformed body", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusOK, `not json`)
		p := weather.NewOpenMeteoProvider(weather.Config{BaseURL: srv.URL}, nil)

		_, err := p.CurrentLabel(context.Background())
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusOK, `{"current":{"weather_code":0}}`)
		p := weather.NewOpenMeteoProvider(weather.Config{BaseURL: srv.URL, CacheTTL: time.Minute}, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := p.CurrentLabel(ctx)
		assert.Error(t, err)
	})
}

func TestStatic(t *testing.T) {
	label, err := weather.Static{Label: planner.WeatherRain}.CurrentLabel(context.Background())
	require.NoError(t, err)
	assert.Equal(t, planner.WeatherRain, label)

	boom := errors.New("boom")
	_, err = weather.Static{Err: boom}.CurrentLabel(context.Background())
	assert.ErrorIs(t, err, boom)
}
