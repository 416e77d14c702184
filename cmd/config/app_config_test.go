package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"prep-scheduler/domain"
	"prep-scheduler/internal/utils"
	"prep-scheduler/internal/utils/export"
	"prep-scheduler/internal/utils/testdb"
	"prep-scheduler/pkg/planner"
	"prep-scheduler/pkg/weather"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestApp(t *testing.T, provider weather.Provider) *fiber.App {
	t.Helper()
	monday := time.Date(2026, time.October, 12, 10, 0, 0, 0, time.UTC)
	return BuildApp(testdb.Open(t), Dependencies{
		Weather: provider,
		Clock:   utils.FixedClock(monday),
	})
}

func call(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	if strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(raw, &env))
	}
	return resp, env
}

func TestHealthz(t *testing.T) {
	app := newTestApp(t, weather.Static{Label: planner.WeatherSunny})

	resp, env := call(t, app, fiber.MethodGet, "/healthz", nil)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, env.Status)
	assert.Equal(t, domain.MessageSuccessHealthCheck, env.Message)
}

func TestMetricsExposeScheduleGenerations(t *testing.T) {
	app := newTestApp(t, weather.Static{Label: planner.WeatherSunny})

	resp, _ := call(t, app, fiber.MethodGet, "/api/v1/schedule", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	req := httptest.NewRequest(fiber.MethodGet, "/metrics", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "schedule_generations_total 1")
}

func TestInventoryUpdate_Validation(t *testing.T) {
	app := newTestApp(t, weather.Static{Label: planner.WeatherSunny})

	resp, env := call(t, app, fiber.MethodPost, "/api/v1/inventory/update", fiber.Map{"updates": fiber.Map{}})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.False(t, env.Status)

	resp, env = call(t, app, fiber.MethodPost, "/api/v1/inventory/update", fiber.Map{
		"updates": fiber.Map{planner.ItemFishBelly: -2},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var inv domain.InventoryResponse
	require.NoError(t, json.Unmarshal(env.Data, &inv))
	assert.Equal(t, 0.0, inv[planner.ItemFishBelly].Qty)
}

func TestCompositeItemsRejected(t *testing.T) {
	app := newTestApp(t, weather.Static{Label: planner.WeatherSunny})

	for _, tc := range []struct {
		path string
		body fiber.Map
	}{
		{"/api/v1/inventory/update", fiber.Map{"updates": fiber.Map{planner.ItemSausage: 3}}},
		{"/api/v1/inventory/danger", fiber.Map{"danger_levels": fiber.Map{planner.ItemShrimpMeatBall: 3}}},
		{"/api/v1/delivery/confirm", fiber.Map{"day": "2026-10-16", "items": fiber.Map{planner.ItemSausage: 1}}},
	} {
		resp, env := call(t, app, fiber.MethodPost, tc.path, tc.body)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, tc.path)
		assert.Contains(t, env.Error, domain.ErrCompositeItem.Error(), tc.path)
	}

	resp, env := call(t, app, fiber.MethodGet, "/api/v1/inventory", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var inv domain.InventoryResponse
	if len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, &inv))
	}
	assert.Empty(t, inv)
}

func TestDelivery_ProviderFailureIsBadGateway(t *testing.T) {
	app := newTestApp(t, weather.Static{Err: errors.New("connection refused")})

	resp, env := call(t, app, fiber.MethodPost, "/api/v1/delivery", fiber.Map{"day": "2026-10-16"})

	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, env.Error, domain.ErrWeatherUnavailable.Error())

	resp, _ = call(t, app, fiber.MethodPost, "/api/v1/delivery", fiber.Map{"day": "2026-10-16", "weather": "rain"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestDelivery_ConfirmThenCompute(t *testing.T) {
	app := newTestApp(t, weather.Static{Label: planner.WeatherSunny})

	resp, _ := call(t, app, fiber.MethodPost, "/api/v1/delivery/confirm", fiber.Map{
		"day":   "2026-10-16",
		"items": fiber.Map{planner.ItemFishBelly: 2.5},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, env := call(t, app, fiber.MethodPost, "/api/v1/delivery", fiber.Map{"day": "2026-10-16"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var plan domain.DeliveryResponse
	require.NoError(t, json.Unmarshal(env.Data, &plan))
	assert.True(t, plan.Confirmed)
	assert.Equal(t, map[string]float64{planner.ItemFishBelly: 2.5}, plan.FinalPlan)
}

func TestDelivery_InvalidDay(t *testing.T) {
	app := newTestApp(t, weather.Static{Label: planner.WeatherSunny})

	resp, _ := call(t, app, fiber.MethodPost, "/api/v1/delivery", fiber.Map{"day": "16/10/2026"})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSchedule_MissingTask(t *testing.T) {
	app := newTestApp(t, weather.Static{Label: planner.WeatherSunny})
	id := uuid.NewString()

	for _, path := range []string{
		"/api/v1/schedule/complete/" + id,
		"/api/v1/schedule/delete/" + id,
		"/api/v1/schedule/complete/not-a-uuid",
	} {
		resp, env := call(t, app, fiber.MethodPost, path, nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, path)
		assert.Equal(t, domain.ErrTaskNotFound.Error(), env.Error, path)
	}

	resp, _ := call(t, app, fiber.MethodPost, "/api/v1/schedule/update_qty/"+id, fiber.Map{"new_qty": 2})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestSchedule_MoveRejectsUnknownWeekday(t *testing.T) {
	app := newTestApp(t, weather.Static{Label: planner.WeatherSunny})

	resp, env := call(t, app, fiber.MethodPost, "/api/v1/schedule/move/"+uuid.NewString(), fiber.Map{"new_weekday": "Funday"})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, domain.ErrInvalidWeekday.Error(), env.Error)
}

func TestSchedule_GenerateCompleteAndHistory(t *testing.T) {
	app := newTestApp(t, weather.Static{Label: planner.WeatherSunny})

	resp, _ := call(t, app, fiber.MethodPost, "/api/v1/inventory/update", fiber.Map{
		"updates": fiber.Map{planner.ItemFishBelly: 1},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, env := call(t, app, fiber.MethodGet, "/api/v1/schedule", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var tasks []domain.ScheduleTask
	require.NoError(t, json.Unmarshal(env.Data, &tasks))
	require.NotEmpty(t, tasks)

	resp, _ = call(t, app, fiber.MethodPost, "/api/v1/schedule/complete/"+tasks[0].ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, env = call(t, app, fiber.MethodGet, "/api/v1/schedule/history", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var events []domain.TaskEvent
	require.NoError(t, json.Unmarshal(env.Data, &events))
	require.Len(t, events, 1)
	assert.Equal(t, tasks[0].ID, events[0].TaskID)
}

func TestSchedule_Export(t *testing.T) {
	app := newTestApp(t, weather.Static{Label: planner.WeatherSunny})

	req := httptest.NewRequest(fiber.MethodGet, "/api/v1/schedule/export", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, export.ContentTypeXLSX, resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "schedule.xlsx")
}
