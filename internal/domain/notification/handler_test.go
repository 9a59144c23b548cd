package notification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"smartconnect/internal/database"
	"smartconnect/internal/middleware"
	jwtsvc "smartconnect/internal/pkg/jwt"
)

type listEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Notifications []NotificationResponse `json:"notifications"`
		UnreadCount   int64                  `json:"unread_count"`
	} `json:"data"`
}

type actionEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Result string `json:"result"`
	} `json:"data"`
}

type errorEnvelope struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB, *jwtsvc.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:notif_handler_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Notification{}))

	j := jwtsvc.New("test-secret", time.Hour)

	service := NewService(NewRepository(db), nil, nil)
	handler := NewHandler(service)

	router := gin.New()
	protected := router.Group("/api/v1")
	protected.Use(middleware.RequireAuth(j))
	RegisterRoutes(protected, handler)

	return router, db, j
}

func performRequest(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func seedNotification(t *testing.T, db *gorm.DB, n *Notification) *Notification {
	t.Helper()
	require.NoError(t, db.Create(n).Error)
	return n
}

func TestGetNotificationsRequiresAuth(t *testing.T) {
	router, _, _ := setupRouter(t)

	resp := performRequest(router, http.MethodGet, "/api/v1/notifications", nil, "")
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestGetNotificationsReturnsOwnSetOnly(t *testing.T) {
	router, db, j := setupRouter(t)

	seedNotification(t, db, &Notification{UserID: 1, Type: TypeSystemAlert, Title: "Mine"})
	seedNotification(t, db, &Notification{UserID: 1, Type: TypeEmergency, Priority: PriorityUrgent, Title: "Mine too"})
	seedNotification(t, db, &Notification{UserID: 2, Type: TypeSystemAlert, Title: "Someone else's"})

	token, err := j.GenerateToken(1, "citizen")
	require.NoError(t, err)

	resp := performRequest(router, http.MethodGet, "/api/v1/notifications", nil, token)
	require.Equal(t, http.StatusOK, resp.Code)

	var payload listEnvelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	require.True(t, payload.Success)
	require.Len(t, payload.Data.Notifications, 2)
	require.Equal(t, int64(2), payload.Data.UnreadCount)
	for _, n := range payload.Data.Notifications {
		require.NotEqual(t, "Someone else's", n.Title)
	}
}

func TestMarkAsReadEndpointIsIdempotent(t *testing.T) {
	router, db, j := setupRouter(t)

	n := seedNotification(t, db, &Notification{UserID: 1, Type: TypeStatusChange, Title: "Update"})
	token, err := j.GenerateToken(1, "citizen")
	require.NoError(t, err)

	path := "/api/v1/notifications/" + n.ID + "/read"
	resp := performRequest(router, http.MethodPost, path, nil, token)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = performRequest(router, http.MethodPost, path, nil, token)
	require.Equal(t, http.StatusOK, resp.Code)

	var stored Notification
	require.NoError(t, db.First(&stored, "id = ?", n.ID).Error)
	require.True(t, stored.IsRead)
}

func TestMarkAsReadForeignNotificationIsNotFound(t *testing.T) {
	router, db, j := setupRouter(t)

	n := seedNotification(t, db, &Notification{UserID: 2, Type: TypeStatusChange, Title: "Not yours"})
	token, err := j.GenerateToken(1, "citizen")
	require.NoError(t, err)

	resp := performRequest(router, http.MethodPost, "/api/v1/notifications/"+n.ID+"/read", nil, token)
	require.Equal(t, http.StatusNotFound, resp.Code)

	var payload errorEnvelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	require.Equal(t, "NOT_FOUND", payload.Error.Code)
}

func TestMarkAllAsReadEndpoint(t *testing.T) {
	router, db, j := setupRouter(t)

	seedNotification(t, db, &Notification{UserID: 1, Type: TypeSystemAlert, Title: "A"})
	seedNotification(t, db, &Notification{UserID: 1, Type: TypeSystemAlert, Title: "B"})

	token, err := j.GenerateToken(1, "citizen")
	require.NoError(t, err)

	resp := performRequest(router, http.MethodPut, "/api/v1/notifications/read-all", nil, token)
	require.Equal(t, http.StatusOK, resp.Code)

	var count int64
	require.NoError(t, db.Model(&Notification{}).
		Where("user_id = ? AND is_read = ?", 1, false).
		Count(&count).Error)
	require.Zero(t, count)
}

func TestExecuteActionEndpoint(t *testing.T) {
	router, db, j := setupRouter(t)

	n := seedNotification(t, db, &Notification{
		UserID: 1,
		Type:   TypeStatusChange,
		Title:  "Complaint status updated",
		Actions: Actions{
			{Label: "View Complaint", ID: "view_complaint", Variant: "primary"},
			{Label: "Contact Team", ID: "contact_team", Variant: "secondary"},
		},
	})
	token, err := j.GenerateToken(1, "citizen")
	require.NoError(t, err)

	resp := performRequest(router, http.MethodPost,
		"/api/v1/notifications/"+n.ID+"/actions/contact_team", nil, token)
	require.Equal(t, http.StatusOK, resp.Code)

	var payload actionEnvelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	require.Equal(t, "Action executed: contact team", payload.Data.Result)

	var stored Notification
	require.NoError(t, db.First(&stored, "id = ?", n.ID).Error)
	require.True(t, stored.IsRead)
}

func TestExecuteUnknownActionEndpoint(t *testing.T) {
	router, db, j := setupRouter(t)

	n := seedNotification(t, db, &Notification{UserID: 1, Type: TypeStatusChange, Title: "Update"})
	token, err := j.GenerateToken(1, "citizen")
	require.NoError(t, err)

	resp := performRequest(router, http.MethodPost,
		"/api/v1/notifications/"+n.ID+"/actions/snooze", nil, token)
	require.Equal(t, http.StatusBadRequest, resp.Code)

	var payload errorEnvelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	require.Equal(t, "UNKNOWN_ACTION", payload.Error.Code)
}

func TestDeleteNotificationEndpoint(t *testing.T) {
	router, db, j := setupRouter(t)

	n := seedNotification(t, db, &Notification{UserID: 1, Type: TypeSystemAlert, Title: "Gone soon"})
	token, err := j.GenerateToken(1, "citizen")
	require.NoError(t, err)

	resp := performRequest(router, http.MethodDelete, "/api/v1/notifications/"+n.ID, nil, token)
	require.Equal(t, http.StatusOK, resp.Code)

	var count int64
	require.NoError(t, db.Model(&Notification{}).Where("id = ?", n.ID).Count(&count).Error)
	require.Zero(t, count)
}

func TestBroadcastEndpointGuardedByInternalToken(t *testing.T) {
	t.Setenv("INTERNAL_TOKEN", "internal-test-token")
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:notif_broadcast_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Notification{}))

	service := NewService(NewRepository(db), &stubUserLister{ids: []int64{1, 2}}, nil)
	handler := NewHandler(service)

	router := gin.New()
	internal := router.Group("/internal")
	internal.Use(middleware.InternalTokenAuth())
	RegisterInternalRoutes(internal, handler)

	body := BroadcastRequest{
		Type:     "emergency",
		Priority: "urgent",
		Title:    "Water supply disruption",
		Message:  "Supply off tomorrow 9am-2pm in Ward 10.",
	}

	resp := performRequest(router, http.MethodPost, "/internal/notifications/broadcast", body, "wrong-token")
	require.Equal(t, http.StatusForbidden, resp.Code)

	resp = performRequest(router, http.MethodPost, "/internal/notifications/broadcast", body, "internal-test-token")
	require.Equal(t, http.StatusOK, resp.Code)

	var count int64
	require.NoError(t, db.Model(&Notification{}).Count(&count).Error)
	require.Equal(t, int64(2), count)
}
