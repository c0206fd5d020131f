package audit

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"kafe-backend/internal/database"
	"kafe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	require.NoError(t, database.InitWithDialector(sqlite.Open(dsn)))

	app := fiber.New()
	app.Get("/api/audit-logs", ListAuditLogsHandler())
	return app
}

func TestWriteAndListLogs(t *testing.T) {
	app := setupApp(t)

	require.NoError(t, WriteLog(LogOptions{
		UserID:      1,
		UserName:    "kari@kafe.no",
		EntityType:  "product",
		EntityID:    7,
		Action:      models.AuditActionCreate,
		Description: "Created product Kanelbolle",
		After:       map[string]string{"name": "Kanelbolle"},
	}))
	require.NoError(t, WriteLog(LogOptions{
		UserID:      1,
		UserName:    "kari@kafe.no",
		EntityType:  "opening_hours",
		EntityID:    2,
		Action:      models.AuditActionUpdate,
		Description: "Updated hours for Tirsdag",
	}))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/audit-logs", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var logs []models.AuditLog
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&logs))
	assert.Len(t, logs, 2)

	// Filter by entity type
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/audit-logs?entity_type=product", nil))
	require.NoError(t, err)

	logs = nil
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&logs))
	require.Len(t, logs, 1)
	assert.Equal(t, "product", logs[0].EntityType)
	assert.Equal(t, models.AuditActionCreate, logs[0].Action)
	assert.JSONEq(t, `{"name":"Kanelbolle"}`, logs[0].AfterData)
	assert.Equal(t, "null", logs[0].BeforeData)
}
