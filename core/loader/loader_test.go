package loader

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (f *stubFeature) Name() string    { return f.name }
func (f *stubFeature) IsEnabled() bool { return f.enabled }
func (f *stubFeature) Load(router fiber.Router) error {
	if f.err != nil {
		return f.err
	}
	f.loaded = true
	router.Get("/"+f.name, func(c *fiber.Ctx) error { return c.SendString(f.name) })
	return nil
}

func TestManager_LoadAll(t *testing.T) {
	a := &stubFeature{name: "a", enabled: true}
	b := &stubFeature{name: "b", enabled: false}

	mgr := NewManager()
	mgr.Register(a)
	mgr.Register(b)
	assert.Len(t, mgr.Features(), 2)

	app := fiber.New()
	require.NoError(t, mgr.LoadAll(app))

	assert.True(t, a.loaded)
	assert.False(t, b.loaded)

	resp, err := app.Test(httptest.NewRequest("GET", "/a", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/b", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestManager_LoadAll_Error(t *testing.T) {
	mgr := NewManager()
	mgr.Register(&stubFeature{name: "broken", enabled: true, err: errors.New("boom")})
	after := &stubFeature{name: "after", enabled: true}
	mgr.Register(after)

	err := mgr.LoadAll(fiber.New())
	assert.EqualError(t, err, `failed to load feature "broken": boom`)
	assert.False(t, after.loaded)
}

func TestManager_LoadAll_Duplicate(t *testing.T) {
	mgr := NewManager()
	mgr.Register(&stubFeature{name: "dup", enabled: true})
	mgr.Register(&stubFeature{name: "dup", enabled: true})

	err := mgr.LoadAll(fiber.New())
	assert.EqualError(t, err, `feature "dup" registered twice`)
}
