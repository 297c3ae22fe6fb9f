package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"grover-graphql/pkg/logger"
)

func newApp(log *zap.Logger) *fiber.App {
	app := fiber.New()
	app.Use(RequestContext(log), AccessLog())
	app.Get("/ping", func(c *fiber.Ctx) error {
		logger.FromContext(c.UserContext()).Info("inside handler")
		return c.SendString(RequestID(c))
	})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "nope")
	})
	return app
}

func TestRequestContextAssignsID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	app := newApp(zap.New(core))

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	id := resp.Header.Get(HeaderRequestID)
	_, err = uuid.Parse(id)
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "inside handler", entries[0].Message)
	assert.Equal(t, id, entries[0].ContextMap()["request_id"])
	assert.Equal(t, "request", entries[1].Message)
	assert.EqualValues(t, 200, entries[1].ContextMap()["status"])
}

func TestRequestContextKeepsValidID(t *testing.T) {
	app := newApp(zap.NewNop())
	want := uuid.NewString()

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(HeaderRequestID, want)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, want, resp.Header.Get(HeaderRequestID))

	req = httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(HeaderRequestID, "not-a-uuid")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.NotEqual(t, "not-a-uuid", resp.Header.Get(HeaderRequestID))
}

func TestAccessLogWarnsOnClientErrors(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	app := newApp(zap.New(core))

	resp, err := app.Test(httptest.NewRequest("GET", "/fail", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.EqualValues(t, 400, entries[0].ContextMap()["status"])
}
