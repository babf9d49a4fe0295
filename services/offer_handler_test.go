package services

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *OfferService) {
	service, _ := newTestService(t)
	app := fiber.New()
	app.Get("/offers", service.GetOffers)
	app.Get("/health", service.HealthCheck)
	return app, service
}

func TestGetOffers_ReturnsSummaryJSON(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/offers?user_id=user-1", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var summary OfferSummary
	require.NoError(t, json.Unmarshal(body, &summary))
	assert.Equal(t, 3, summary.TotalCount)
	assert.Len(t, summary.Outlets, 3)
}

func TestGetOffers_AnonymousWithFilters(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/offers?search=coffee&category=Food+%26+Beverage", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var summary OfferSummary
	require.NoError(t, json.Unmarshal(body, &summary))
	require.Equal(t, 1, summary.TotalCount)
	assert.Equal(t, "outlet-1", summary.Outlets[0].ID)
}

func TestGetOffers_InvalidPercentageRejected(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/offers?min_percentage=abc", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/offers?max_percentage=12%25", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetOffers_UserIDFromLocals(t *testing.T) {
	service, _ := newTestService(t)
	app := fiber.New()
	// mimic the gateway identity middleware
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", "user-2")
		return c.Next()
	})
	app.Get("/offers", service.GetOffers)

	resp, err := app.Test(httptest.NewRequest("GET", "/offers?category=Food+%26+Beverage", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var summary OfferSummary
	require.NoError(t, json.Unmarshal(body, &summary))
	require.Equal(t, 1, summary.TotalCount)
	// exclusive-2 only matches because the identity carried the New type
	require.Len(t, summary.Outlets[0].ExclusiveOffers, 1)
}

func TestHealthCheck(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
