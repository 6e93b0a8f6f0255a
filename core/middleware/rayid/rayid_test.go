package rayid

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp() *fiber.App {
	app := fiber.New()
	app.Use(New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(FromCtx(c))
	})
	return app
}

func TestNew_GeneratesID(t *testing.T) {
	app := setupApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	rid := resp.Header.Get(Header)
	_, parseErr := uuid.Parse(rid)
	assert.NoError(t, parseErr)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, rid, string(body))
}

func TestNew_KeepsIncomingID(t *testing.T) {
	app := setupApp()

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(Header, "upstream-id")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, "upstream-id", resp.Header.Get(Header))
}

func TestFromCtx_Empty(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("[" + FromCtx(c) + "]")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "[]", string(body))
}
