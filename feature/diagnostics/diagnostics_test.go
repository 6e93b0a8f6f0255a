package diagnostics_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"insightflow-api/core/database"
	"insightflow-api/core/server"
	"insightflow-api/feature/diagnostics"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type stubRepository struct {
	users []database.User
	err   error
}

func (s *stubRepository) FindAll(context.Context) ([]database.User, error) {
	return s.users, s.err
}

func newApp(t *testing.T, repo database.UserRepository) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: server.ErrorHandler})
	feature := diagnostics.NewFeature(repo, zap.NewNop())
	require.NoError(t, feature.Load(app.Group("/api")))
	return app
}

func decode(t *testing.T, body io.Reader, v any) {
	t.Helper()
	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, v))
}

func TestFeature(t *testing.T) {
	feature := diagnostics.NewFeature(nil, nil)
	assert.Equal(t, "diagnostics", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}

func TestHandleHealth(t *testing.T) {
	app := newApp(t, &stubRepository{err: errors.New("unreachable")})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/test/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body diagnostics.HealthResponse
	decode(t, resp.Body, &body)
	assert.Equal(t, diagnostics.HealthResponse{
		Status:  "ok",
		Message: "Prisma is connected to PostgreSQL",
	}, body)
}

func TestHandleListUsers(t *testing.T) {
	name := "Ada"
	repo := &stubRepository{users: []database.User{
		{ID: "5f0c1c8e-0000-4000-8000-000000000001", Email: "ada@insightflow.io", Name: &name},
		{ID: "5f0c1c8e-0000-4000-8000-000000000002", Email: "linus@insightflow.io"},
	}}
	app := newApp(t, repo)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/test/db", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body []map[string]any
	decode(t, resp.Body, &body)
	require.Len(t, body, 2)
	assert.Equal(t, "ada@insightflow.io", body[0]["email"])
	assert.Equal(t, "Ada", body[0]["name"])
	assert.Nil(t, body[1]["name"])
	assert.Contains(t, body[0], "createdAt")
}

func TestHandleListUsers_Empty(t *testing.T) {
	app := newApp(t, &stubRepository{users: []database.User{}})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/test/db", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestHandleListUsers_Failures(t *testing.T) {
	tests := []struct {
		name string
		repo database.UserRepository
	}{
		{"RepositoryError", &stubRepository{err: errors.New("connection refused")}},
		{"NoRepository", nil},
		{"NoConnection", database.NewUserRepository(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp(t, tt.repo)

			resp, err := app.Test(httptest.NewRequest("GET", "/api/test/db", nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

			var body diagnostics.ErrorResponse
			decode(t, resp.Body, &body)
			assert.Equal(t, diagnostics.ErrorResponse{
				StatusCode: 500,
				Message:    "Internal server error",
			}, body)
		})
	}
}

func TestHandleListUsers_Database(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "email", "name", "created_at", "updated_at"}).
		AddRow("5f0c1c8e-0000-4000-8000-000000000001", "ada@insightflow.io", "Ada", now, now)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).WillReturnRows(rows)

	app := newApp(t, database.NewUserRepository(db))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/test/db", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body []database.User
	decode(t, resp.Body, &body)
	require.Len(t, body, 1)
	assert.Equal(t, "5f0c1c8e-0000-4000-8000-000000000001", body[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
