package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Malav2364/calorify/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return SetupRouter(db), mock
}

// expectUserLookup queues the auth middleware's bearer-token resolution.
func expectUserLookup(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "email", "password", "name", "height", "weight", "gender", "activity_level",
		}).AddRow(1, "u@example.com", "hash", "U", 175.0, 70.0, "Male", "Moderate"))
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, _ := newMockRouter(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/dishes"},
		{http.MethodPost, "/dishes"},
		{http.MethodGet, "/dishes/1"},
		{http.MethodPatch, "/dishes/1"},
		{http.MethodDelete, "/dishes/1"},
		{http.MethodPost, "/day/close"},
		{http.MethodGet, "/history"},
		{http.MethodGet, "/user/profile"},
	} {
		w := doJSON(t, r, route.method, route.path, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

// Log two dishes, read them back, close the day, and verify the ledger is
// empty afterwards.
func TestLogAndCloseDayFlow(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, mock := newMockRouter(t)

	token, err := utils.GenerateJWT(1, "u@example.com")
	require.NoError(t, err)

	// POST /dishes "Oatmeal" 320
	expectUserLookup(mock)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "dishes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()
	w := doJSON(t, r, http.MethodPost, "/dishes", token, `{"name":"Oatmeal","calories":320}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// POST /dishes "Salad" 450
	expectUserLookup(mock)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "dishes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectCommit()
	w = doJSON(t, r, http.MethodPost, "/dishes", token, `{"name":"Salad","calories":450}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// GET /dishes returns both
	now := time.Now().UTC()
	expectUserLookup(mock)
	mock.ExpectQuery(`SELECT \* FROM "dishes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "calories", "created_at"}).
			AddRow(2, 1, "Salad", 450.0, now).
			AddRow(1, 1, "Oatmeal", 320.0, now))
	w = doJSON(t, r, http.MethodGet, "/dishes", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	var listResp struct {
		Success bool `json:"success"`
		Dishes  []struct {
			Name     string  `json:"name"`
			Calories float64 `json:"calories"`
		} `json:"dishes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.Len(t, listResp.Dishes, 2)
	assert.Equal(t, 770.0, listResp.Dishes[0].Calories+listResp.Dishes[1].Calories)

	// POST /day/close sums the day, upserts history, clears the ledger
	expectUserLookup(mock)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "dishes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "calories", "created_at"}).
			AddRow(1, 1, "Oatmeal", 320.0, now).
			AddRow(2, 1, "Salad", 450.0, now))
	mock.ExpectQuery(`INSERT INTO "calorie_histories" .*ON CONFLICT \("user_id","date"\) DO UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(`UPDATE "dishes" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()
	w = doJSON(t, r, http.MethodPost, "/day/close", token, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var closeResp struct {
		Success        bool    `json:"success"`
		TotalConsumed  float64 `json:"totalConsumed"`
		EntriesDeleted int64   `json:"entriesDeleted"`
		Target         int     `json:"target"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &closeResp))
	assert.True(t, closeResp.Success)
	assert.Equal(t, 770.0, closeResp.TotalConsumed)
	assert.Equal(t, int64(2), closeResp.EntriesDeleted)
	assert.Equal(t, 2628, closeResp.Target)

	// GET /dishes is now empty
	expectUserLookup(mock)
	mock.ExpectQuery(`SELECT \* FROM "dishes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	w = doJSON(t, r, http.MethodGet, "/dishes", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Empty(t, listResp.Dishes)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListDishesByDateOverHTTP(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, mock := newMockRouter(t)

	token, err := utils.GenerateJWT(1, "u@example.com")
	require.NoError(t, err)

	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	expectUserLookup(mock)
	mock.ExpectQuery(`SELECT \* FROM "dishes"`).
		WithArgs(1, start, end).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "calories", "created_at"}).
			AddRow(1, 1, "Oatmeal", 320.0, start.Add(8*time.Hour)))
	w := doJSON(t, r, http.MethodGet, "/dishes?date=2025-03-10", token, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Oatmeal")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListDishesByMalformedDateOverHTTP(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, mock := newMockRouter(t)

	token, err := utils.GenerateJWT(1, "u@example.com")
	require.NoError(t, err)

	expectUserLookup(mock)
	w := doJSON(t, r, http.MethodGet, "/dishes?date=March-10", token, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	// The malformed date never reached the dishes table.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDishOwnershipOverHTTP(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, mock := newMockRouter(t)

	token, err := utils.GenerateJWT(1, "u@example.com")
	require.NoError(t, err)

	// Foreign dish -> 403
	expectUserLookup(mock)
	mock.ExpectQuery(`SELECT \* FROM "dishes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "calories"}).
			AddRow(9, 2, "Not yours", 100.0))
	w := doJSON(t, r, http.MethodGet, "/dishes/9", token, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Unknown dish -> 404
	expectUserLookup(mock)
	mock.ExpectQuery(`SELECT \* FROM "dishes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	w = doJSON(t, r, http.MethodDelete, "/dishes/999", token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDishValidationOverHTTP(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, mock := newMockRouter(t)

	token, err := utils.GenerateJWT(1, "u@example.com")
	require.NoError(t, err)

	expectUserLookup(mock)
	w := doJSON(t, r, http.MethodPost, "/dishes", token, `{"calories":320}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	expectUserLookup(mock)
	w = doJSON(t, r, http.MethodPost, "/dishes", token, `{"name":"Oatmeal","calories":-5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Neither reached the dishes table.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryOverHTTP(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, mock := newMockRouter(t)

	token, err := utils.GenerateJWT(1, "u@example.com")
	require.NoError(t, err)

	expectUserLookup(mock)
	mock.ExpectQuery(`SELECT \* FROM "calorie_histories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "date", "calories", "target"}).
			AddRow(1, 1, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), 770.0, 2628))
	w := doJSON(t, r, http.MethodGet, "/history?limit=30", token, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"target":2628`)

	expectUserLookup(mock)
	w = doJSON(t, r, http.MethodGet, "/history?limit=banana", token, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
