package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"cafeteria-api/internal/config"
	"cafeteria-api/internal/repository/dao"
)

func newTestServer(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dao.InitTables(db))

	conf := &config.AppConfig{
		API: &config.APIConfig{
			Environment:        "test",
			BaseURL:            "localhost:8080",
			Port:               "8080",
			JWTSigningKey:      "test-signing-key",
			AllowedCORSDomains: []string{"http://localhost:3000"},
		},
		Gin: &config.GinConfig{Mode: gin.TestMode},
	}

	return NewServer(conf, db), db
}

func doRequest(t *testing.T, s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)

	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))

	return out
}

// signupAndLogin registers a user and returns their bearer token.
func signupAndLogin(t *testing.T, s *Server, email, name string) string {
	t.Helper()

	w := doRequest(t, s, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"email":            email,
		"password":         "Password1",
		"confirm_password": "Password1",
		"name":             name,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doRequest(t, s, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    email,
		"password": "Password1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	token, ok := decode(t, w)["token"].(string)
	require.True(t, ok, "login response carries a token")

	return token
}

func TestServer_Healthcheck(t *testing.T) {
	s, _ := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServer_AuthFlow(t *testing.T) {
	s, db := newTestServer(t)

	adminToken := signupAndLogin(t, s, "admin@example.com", "Admin")
	userToken := signupAndLogin(t, s, "user@example.com", "User")
	require.NoError(t, db.Create(&dao.Admin{Email: "admin@example.com"}).Error)

	// Wrong password is rejected without leaking which part was wrong.
	w := doRequest(t, s, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "admin@example.com",
		"password": "WrongPass9",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, s, http.MethodGet, "/api/v1/auth/admin", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["is_admin"])

	w = doRequest(t, s, http.MethodGet, "/api/v1/auth/admin", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, false, decode(t, w)["is_admin"])

	w = doRequest(t, s, http.MethodGet, "/api/v1/auth/admin", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, s, http.MethodGet, "/api/v1/auth/admin", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestServer_Signup_Validation(t *testing.T) {
	s, _ := newTestServer(t)

	// Password must carry a letter and a digit, eight characters minimum.
	w := doRequest(t, s, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"email":            "weak@example.com",
		"password":         "short1",
		"confirm_password": "short1",
		"name":             "Weak",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, s, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"email":            "mismatch@example.com",
		"password":         "Password1",
		"confirm_password": "Password2",
		"name":             "Mismatch",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_MenuAndBookingFlow(t *testing.T) {
	s, db := newTestServer(t)

	adminToken := signupAndLogin(t, s, "admin@example.com", "Admin")
	userToken := signupAndLogin(t, s, "user@example.com", "User")
	require.NoError(t, db.Create(&dao.Admin{Email: "admin@example.com"}).Error)

	menuPayload := gin.H{
		"date":        "2026-09-01",
		"launch_time": "12:30",
		"items": []gin.H{
			{"name": "Idli", "price": 20, "quantity": 2},
		},
	}

	// Menu management is admin only.
	w := doRequest(t, s, http.MethodPost, "/api/v1/menus", userToken, menuPayload)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, s, http.MethodPost, "/api/v1/menus", adminToken, menuPayload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	menu := decode(t, w)
	assert.Equal(t, "scheduled", menu["status"])
	menuID := uint(menu["id"].(float64))

	// No menu is active yet.
	w = doRequest(t, s, http.MethodGet, "/api/v1/menus/active", userToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, s, http.MethodPost, fmt.Sprintf("/api/v1/menus/%d/activate", menuID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "active", decode(t, w)["status"])

	w = doRequest(t, s, http.MethodPost, fmt.Sprintf("/api/v1/menus/%d/activate", menuID), adminToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doRequest(t, s, http.MethodGet, "/api/v1/menus/active", userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(menuID), decode(t, w)["id"])

	// Two units of Idli, so two bookings succeed and the third conflicts.
	booking := gin.H{"menu_id": menuID, "meal_name": "Idli"}

	w = doRequest(t, s, http.MethodPost, "/api/v1/bookings", userToken, booking)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "TOKEN-1", decode(t, w)["token"])

	w = doRequest(t, s, http.MethodPost, "/api/v1/bookings", userToken, booking)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "TOKEN-2", decode(t, w)["token"])

	w = doRequest(t, s, http.MethodPost, "/api/v1/bookings", userToken, booking)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doRequest(t, s, http.MethodPost, "/api/v1/bookings", userToken, gin.H{
		"menu_id": menuID, "meal_name": "Biryani",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, s, http.MethodGet, "/api/v1/bookings", userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var mine []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mine))
	assert.Len(t, mine, 2)

	w = doRequest(t, s, http.MethodGet, fmt.Sprintf("/api/v1/menus/%d/tokens", menuID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var issued []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &issued))
	assert.Len(t, issued, 2)

	// Reusing the menu yields a clean draft with the original items.
	w = doRequest(t, s, http.MethodGet, fmt.Sprintf("/api/v1/menus/%d/reuse", menuID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	draft := decode(t, w)
	items, ok := draft["items"].([]any)
	require.True(t, ok)
	assert.Len(t, items, 1)
}

func TestServer_SalesFlow(t *testing.T) {
	s, db := newTestServer(t)

	adminToken := signupAndLogin(t, s, "admin@example.com", "Admin")
	userToken := signupAndLogin(t, s, "user@example.com", "User")
	require.NoError(t, db.Create(&dao.Admin{Email: "admin@example.com"}).Error)

	menuPayload := gin.H{
		"date":        "2026-09-01",
		"launch_time": "12:30",
		"items":       []gin.H{{"name": "Idli", "price": 20, "quantity": 5}},
	}
	w := doRequest(t, s, http.MethodPost, "/api/v1/menus", adminToken, menuPayload)
	require.Equal(t, http.StatusCreated, w.Code)
	menuID := uint(decode(t, w)["id"].(float64))
	w = doRequest(t, s, http.MethodPost, fmt.Sprintf("/api/v1/menus/%d/activate", menuID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	booking := gin.H{"menu_id": menuID, "meal_name": "Idli"}
	for i := 0; i < 2; i++ {
		w = doRequest(t, s, http.MethodPost, "/api/v1/bookings", userToken, booking)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	// Counter sales are admin only and validate the payment type.
	offline := gin.H{"meal_name": "Idli", "quantity": 3, "amount": 60, "payment_type": "Cash"}

	w = doRequest(t, s, http.MethodPost, "/api/v1/sales/offline", userToken, offline)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, s, http.MethodPost, "/api/v1/sales/offline", adminToken, gin.H{
		"meal_name": "Idli", "quantity": 3, "amount": 60, "payment_type": "Cheque",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, s, http.MethodPost, "/api/v1/sales/offline", adminToken, offline)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Today's view counts online bookings only.
	w = doRequest(t, s, http.MethodGet, "/api/v1/sales/today", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	today := decode(t, w)
	totals, ok := today["totals"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), totals["Idli"])
	orders, ok := today["orders"].([]any)
	require.True(t, ok)
	assert.Len(t, orders, 2)

	w = doRequest(t, s, http.MethodGet, "/api/v1/sales/analytics", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	analytics := decode(t, w)
	daily, ok := analytics["daily"].([]any)
	require.True(t, ok)
	assert.Len(t, daily, 1, "all of today's sales fold into one day")
}

func TestServer_ItemCatalog(t *testing.T) {
	s, db := newTestServer(t)

	adminToken := signupAndLogin(t, s, "admin@example.com", "Admin")
	require.NoError(t, db.Create(&dao.Admin{Email: "admin@example.com"}).Error)

	for _, payload := range []gin.H{
		{
			"date":        "2026-09-01",
			"launch_time": "12:30",
			"items":       []gin.H{{"name": "Idli", "price": 20, "quantity": 2}},
		},
		{
			"date":        "2026-09-02",
			"launch_time": "12:30",
			"items": []gin.H{
				{"name": "Idli", "price": 25, "quantity": 4},
				{"name": "Dosa", "price": 30, "quantity": 5},
			},
		},
	} {
		w := doRequest(t, s, http.MethodPost, "/api/v1/menus", adminToken, payload)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doRequest(t, s, http.MethodGet, "/api/v1/items", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Idli", items[0]["name"])
	assert.Equal(t, float64(20), items[0]["price"], "first occurrence wins over the repriced Idli")
	assert.Equal(t, "Dosa", items[1]["name"])
}
