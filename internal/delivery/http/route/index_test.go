package route

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	httpHandler "disaster-alert/internal/delivery/http/handler"
	entity "disaster-alert/internal/domain"
	mongorepo "disaster-alert/internal/repository/mongodb"
	"disaster-alert/internal/service"
	"disaster-alert/pkg"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const testHash = "test_hash"

// memUsers behaves like a collection with a unique email index.
type memUsers struct {
	mu    sync.Mutex
	users map[string]entity.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: map[string]entity.User{}}
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *memUsers) Create(_ context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.Email]; ok {
		return fmt.Errorf("insert: %w", mongorepo.ErrDuplicateKey)
	}
	user.ID = primitive.NewObjectID()
	m.users[user.Email] = *user
	return nil
}

type memNotifications struct {
	mu   sync.Mutex
	list []entity.Notification
}

func (m *memNotifications) Create(_ context.Context, n *entity.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	n.ID = primitive.NewObjectID()
	m.list = append(m.list, *n)
	return nil
}

func (m *memNotifications) filter(match func(entity.Notification) bool) []entity.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []entity.Notification{}
	for _, n := range m.list {
		if match(n) {
			out = append(out, n)
		}
	}
	return out
}

func (m *memNotifications) ListByAdmin(_ context.Context, email string) ([]entity.Notification, error) {
	return m.filter(func(n entity.Notification) bool { return n.Email == email }), nil
}

func (m *memNotifications) ListByLocation(_ context.Context, location string) ([]entity.Notification, error) {
	return m.filter(func(n entity.Notification) bool { return n.Location == location }), nil
}

type sentMail struct {
	msgs []*entity.AlertEmail
}

func (s *sentMail) Send(_ context.Context, msg *entity.AlertEmail) (entity.ProviderResponse, error) {
	s.msgs = append(s.msgs, msg)
	return entity.ProviderResponse{"requestId": "1-test"}, nil
}

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

type testServer struct {
	engine *gin.Engine
	users  *memUsers
	admins *memUsers
	notes  *memNotifications
	mail   *sentMail
}

func setupServer(t *testing.T, strict bool) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ts := &testServer{
		engine: gin.New(),
		users:  newMemUsers(),
		admins: newMemUsers(),
		notes:  &memNotifications{},
		mail:   &sentMail{},
	}
	logger := zap.NewNop()
	resp := httpHandler.Responder{Strict: strict, Logger: logger}
	identity := service.NewIdentityService(ts.users, ts.admins, logger)

	Mount(ts.engine, Handlers{
		User:         httpHandler.NewUserHandler(identity, resp),
		Notification: httpHandler.NewNotificationHandler(service.NewNotificationService(ts.notes, logger), resp),
		Email:        httpHandler.NewEmailHandler(service.NewEmailService(ts.mail, logger), resp),
		Health:       httpHandler.NewHealthHandler(okPinger{}, logger),
	}, Options{Secret: testHash, StrictStatus: strict, Logger: logger})
	return ts
}

func (ts *testServer) do(method, path string, body map[string]interface{}) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, strings.NewReader(string(b)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)
	return w
}

func TestRegisterScenario(t *testing.T) {
	ts := setupServer(t, false)
	body := map[string]interface{}{
		"hash": testHash, "email": "a@x.com", "password": "p", "name": "A", "mobile_number": "1", "location": "L",
	}

	w := ts.do(http.MethodPost, "/api/user", body)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","message":"User registered successfully"}`, w.Body.String())

	w = ts.do(http.MethodPost, "/api/user", body)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"User already exists"}`, w.Body.String())
	assert.Len(t, ts.users.users, 1, "no second record is written")

	stored := ts.users.users["a@x.com"]
	assert.Equal(t, "A", stored.Name)
	assert.Equal(t, "1", stored.MobileNumber)
	assert.Equal(t, "L", stored.Location)
	assert.True(t, utils.IsPasswordHash(stored.Password))
}

func TestLoginScenario(t *testing.T) {
	ts := setupServer(t, false)
	ts.do(http.MethodPost, "/api/user", map[string]interface{}{
		"hash": testHash, "email": "a@x.com", "password": "p", "name": "A", "mobile_number": "1", "location": "L",
	})

	w := ts.do(http.MethodGet, "/api/user", map[string]interface{}{"hash": testHash, "email": "a@x.com", "password": "p"})
	require.Equal(t, http.StatusOK, w.Code)
	var res struct {
		Status string      `json:"status"`
		User   entity.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "success", res.Status)
	assert.Equal(t, "a@x.com", res.User.Email)
	assert.Equal(t, "A", res.User.Name)
	assert.Equal(t, "1", res.User.MobileNumber)
	assert.Equal(t, "L", res.User.Location)

	w = ts.do(http.MethodGet, "/api/user", map[string]interface{}{"hash": testHash, "email": "a@x.com", "password": "wrong"})
	assert.JSONEq(t, `{"status":"error","message":"Invalid email or password"}`, w.Body.String())

	// users are not admins
	w = ts.do(http.MethodGet, "/api/admin", map[string]interface{}{"hash": testHash, "email": "a@x.com", "password": "p"})
	assert.JSONEq(t, `{"status":"error","message":"Invalid email or password"}`, w.Body.String())
}

func TestAdminLogin(t *testing.T) {
	ts := setupServer(t, false)
	identity := service.NewIdentityService(ts.users, ts.admins, zap.NewNop())
	require.NoError(t, identity.CreateAdmin(context.Background(), &entity.RegisterInput{
		Email: "admin@example.com", Password: "admin123", Name: "Admin",
	}))

	w := ts.do(http.MethodGet, "/api/admin", map[string]interface{}{"hash": testHash, "email": "admin@example.com", "password": "admin123"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"success"`)
}

func TestInvalidHashOnEveryRoute(t *testing.T) {
	routes := []struct{ method, path string }{
		{http.MethodGet, "/api/user"},
		{http.MethodPost, "/api/user"},
		{http.MethodGet, "/api/admin"},
		{http.MethodGet, "/api/notification/admin"},
		{http.MethodGet, "/api/notification/location"},
		{http.MethodPost, "/api/notification"},
		{http.MethodPost, "/api/send_email"},
	}
	bodies := map[string]map[string]interface{}{
		"wrong hash":   {"hash": "wrong_hash", "email": "a@x.com", "password": "p", "location": "L"},
		"missing hash": {"email": "a@x.com", "password": "p", "location": "L"},
	}

	for _, strict := range []bool{false, true} {
		ts := setupServer(t, strict)
		for _, rt := range routes {
			for name, body := range bodies {
				t.Run(fmt.Sprintf("%s %s %s strict=%v", rt.method, rt.path, name, strict), func(t *testing.T) {
					w := ts.do(rt.method, rt.path, body)
					assert.JSONEq(t, `{"message":"Invalid Hash"}`, w.Body.String())
					if strict {
						assert.Equal(t, http.StatusUnauthorized, w.Code)
					} else {
						assert.Equal(t, http.StatusOK, w.Code)
					}
				})
			}
		}
		assert.Empty(t, ts.users.users)
		assert.Empty(t, ts.notes.list)
		assert.Empty(t, ts.mail.msgs)
	}
}

func TestNotificationRoundTrip(t *testing.T) {
	ts := setupServer(t, false)

	w := ts.do(http.MethodGet, "/api/notification/location", map[string]interface{}{"hash": testHash, "location": "Test City"})
	assert.JSONEq(t, `[]`, w.Body.String())
	w = ts.do(http.MethodGet, "/api/notification/admin", map[string]interface{}{"hash": testHash, "email": "admin@example.com"})
	assert.JSONEq(t, `[]`, w.Body.String())

	w = ts.do(http.MethodPost, "/api/notification", map[string]interface{}{
		"hash": testHash, "email": "admin@example.com", "location": "Test City",
		"severity": "HIGH", "date": "2024-06-01", "time": "10:00:00", "text": "Test notification",
	})
	assert.JSONEq(t, `{"status":"success","message":"Notification added successfully"}`, w.Body.String())

	for _, q := range []struct{ path, key, value string }{
		{"/api/notification/location", "location", "Test City"},
		{"/api/notification/admin", "email", "admin@example.com"},
	} {
		w = ts.do(http.MethodGet, q.path, map[string]interface{}{"hash": testHash, q.key: q.value})
		require.Equal(t, http.StatusOK, w.Code)

		var list []entity.Notification
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		require.Len(t, list, 1)
		assert.Equal(t, "admin@example.com", list[0].Email)
		assert.Equal(t, "Test City", list[0].Location)
		assert.Equal(t, "HIGH", list[0].Severity)
		assert.Equal(t, "2024-06-01", list[0].Date)
		assert.Equal(t, "10:00:00", list[0].Time)
		assert.Equal(t, "Test notification", list[0].Text)
	}
}

func TestMissingFieldsOnLookups(t *testing.T) {
	ts := setupServer(t, true)
	ts.do(http.MethodPost, "/api/user", map[string]interface{}{
		"hash": testHash, "email": "a@x.com", "password": "p", "name": "A", "mobile_number": "1", "location": "L",
	})
	ts.do(http.MethodPost, "/api/notification", map[string]interface{}{
		"hash": testHash, "email": "admin@example.com", "location": "Test City", "text": "Flood",
	})

	for _, body := range []map[string]interface{}{
		{"hash": testHash, "email": "a@x.com"},
		{"hash": testHash, "email": "a@x.com", "password": ""},
		{"hash": testHash},
	} {
		w := ts.do(http.MethodGet, "/api/user", body)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"status":"error","message":"Invalid email or password"}`, w.Body.String())
	}

	w := ts.do(http.MethodGet, "/api/notification/location", map[string]interface{}{"hash": testHash})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = ts.do(http.MethodGet, "/api/notification/admin", map[string]interface{}{"hash": testHash, "email": ""})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	// writes still name the missing field
	w = ts.do(http.MethodPost, "/api/notification", map[string]interface{}{"hash": testHash, "email": "admin@example.com", "text": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"location is required"}`, w.Body.String())
	assert.Len(t, ts.notes.list, 1)
}

func TestSendEmail(t *testing.T) {
	ts := setupServer(t, false)

	w := ts.do(http.MethodPost, "/api/send_email", map[string]interface{}{
		"hash": testHash, "email": "test@example.com", "name": "Test User", "severity": "HIGH", "body": "Test notification body",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"requestId":"1-test"}`, w.Body.String())

	require.Len(t, ts.mail.msgs, 1)
	assert.Equal(t, "HIGH", ts.mail.msgs[0].Title)
	assert.Equal(t, "Test User", ts.mail.msgs[0].Data["name"])
}

func TestHealthAndDocs(t *testing.T) {
	ts := setupServer(t, false)

	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	ts.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/send_email")
}
