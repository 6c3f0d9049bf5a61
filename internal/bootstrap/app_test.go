package bootstrap

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/locvowork/staff_attendance/internal/config"
	"github.com/locvowork/staff_attendance/internal/database"
	"github.com/locvowork/staff_attendance/internal/domain"
	"github.com/locvowork/staff_attendance/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.EnvConfig {
	return &config.EnvConfig{
		APP_PORT:        "0",
		STORE_DRIVER:    "file",
		STORE_FILE_DIR:  t.TempDir(),
		SEED_VALUE:      1,
		LATE_CUTOFF:     "09:30",
		AUTH_JWT_SECRET: "bootstrap-test",
		AUTH_TOKEN_TTL:  time.Hour,
	}
}

func TestApp_WiresRoutes(t *testing.T) {
	logger.SetOutput(io.Discard)
	app := NewApp()
	require.NoError(t, app.InitializeWithConfig(context.Background(), testConfig(t)))
	defer app.Close()

	rec := httptest.NewRecorder()
	app.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"store":"file"`)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"admin@attendance.com","password":"admin123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	app.Echo.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Data domain.LoginResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	req = httptest.NewRequest(http.MethodGet, "/admin/staff", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+body.Data.Token)
	rec = httptest.NewRecorder()
	app.Echo.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tom Brown")
}

func TestApp_RejectsBadConfig(t *testing.T) {
	logger.SetOutput(io.Discard)

	cfg := testConfig(t)
	cfg.STORE_DRIVER = "redis"
	assert.ErrorIs(t, NewApp().InitializeWithConfig(context.Background(), cfg), domain.ErrUnknownDriver)

	cfg = testConfig(t)
	cfg.LATE_CUTOFF = "half past nine"
	assert.Error(t, NewApp().InitializeWithConfig(context.Background(), cfg))
}

func TestApp_ClosesStoreWhenWiringFails(t *testing.T) {
	logger.SetOutput(io.Discard)

	closed := 0
	openStore = func(context.Context, database.StoreOptions) (domain.KVStore, func() error, error) {
		return database.NewMemoryStore(), func() error { closed++; return nil }, nil
	}
	t.Cleanup(func() { openStore = database.OpenStore })

	cfg := testConfig(t)
	cfg.AUTH_JWT_SECRET = ""
	app := NewApp()
	assert.Error(t, app.InitializeWithConfig(context.Background(), cfg))
	assert.Equal(t, 1, closed)

	// already released
	assert.NoError(t, app.Close())
	assert.Equal(t, 1, closed)
}
