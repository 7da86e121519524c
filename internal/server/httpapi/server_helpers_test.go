package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	pkgcrypto "github.com/focusflow/backend/internal/crypto"
	"github.com/focusflow/backend/internal/errs"
	"github.com/focusflow/backend/internal/model"
	"github.com/focusflow/backend/internal/repository"
	"github.com/focusflow/backend/internal/service"
	"github.com/focusflow/backend/internal/token"
)

// memUsers is an in-memory UserRepository for handler tests.
type memUsers struct {
	byLookup map[string]*model.User
}

var _ repository.UserRepository = (*memUsers)(nil)

func (m *memUsers) Create(_ context.Context, u *model.User) error {
	if m.byLookup == nil {
		m.byLookup = map[string]*model.User{}
	}
	if _, exists := m.byLookup[u.EmailLookup]; exists {
		return errs.ErrAlreadyExists
	}
	cpy := *u
	m.byLookup[u.EmailLookup] = &cpy
	return nil
}

func (m *memUsers) GetByEmailLookup(_ context.Context, lookup string) (*model.User, error) {
	u, ok := m.byLookup[lookup]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *u
	return &c, nil
}

func (m *memUsers) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	for _, u := range m.byLookup {
		if u.ID == id {
			c := *u
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}

// memTasks is an in-memory TaskRepository for handler tests.
type memTasks struct {
	byID map[uuid.UUID]*model.Task
}

var _ repository.TaskRepository = (*memTasks)(nil)

func (m *memTasks) Create(_ context.Context, t *model.Task) error {
	if m.byID == nil {
		m.byID = map[uuid.UUID]*model.Task{}
	}
	cpy := *t
	m.byID[t.ID] = &cpy
	return nil
}

func (m *memTasks) ListByDate(_ context.Context, userID uuid.UUID, day time.Time) ([]model.Task, error) {
	out := []model.Task{}
	for _, t := range m.byID {
		if t.UserID == userID && t.Date.Equal(day) {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out, nil
}

func (m *memTasks) Update(_ context.Context, t *model.Task) error {
	cur, ok := m.byID[t.ID]
	if !ok || cur.UserID != t.UserID {
		return errs.ErrNotFound
	}
	cpy := *t
	m.byID[t.ID] = &cpy
	return nil
}

func (m *memTasks) Delete(_ context.Context, userID, id uuid.UUID) error {
	cur, ok := m.byID[id]
	if !ok || cur.UserID != userID {
		return errs.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

// testStack is a fully wired server over in-memory stores.
type testStack struct {
	e      *echo.Echo
	tokens *token.Service
	users  *memUsers
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()
	key, err := pkgcrypto.RandBytes(pkgcrypto.KeyLen)
	if err != nil {
		t.Fatalf("RandBytes: %v", err)
	}
	codec, err := pkgcrypto.NewCodec(key)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	index, err := pkgcrypto.NewIndexer(key)
	if err != nil {
		t.Fatalf("NewIndexer: %v", err)
	}

	users := &memUsers{}
	tokens := token.NewService([]byte("test-sign-key"), time.Hour)
	auth := service.NewAuthService(users, codec, index, tokens)
	tasks := service.NewTaskService(&memTasks{})

	e := echo.New()
	New(auth, tasks, tokens, zap.NewNop()).Register(e)
	return &testStack{e: e, tokens: tokens, users: users}
}

// do runs a JSON request through the echo instance and decodes the body.
func (ts *testStack) do(t *testing.T, method, target, bearer string, body any) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)

	out := map[string]any{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return rec.Code, out
}

func (ts *testStack) signup(t *testing.T, username, email, password string) {
	t.Helper()
	code, body := ts.do(t, http.MethodPost, "/signup", "", map[string]string{
		"username": username, "email": email, "password": password,
	})
	if code != http.StatusOK || body["success"] != true {
		t.Fatalf("signup failed: code=%d body=%v", code, body)
	}
}

func (ts *testStack) login(t *testing.T, email, password string) (string, map[string]any) {
	t.Helper()
	code, body := ts.do(t, http.MethodPost, "/login", "", map[string]string{
		"email": email, "password": password,
	})
	if code != http.StatusOK || body["success"] != true {
		t.Fatalf("login failed: code=%d body=%v", code, body)
	}
	tok, _ := body["token"].(string)
	if tok == "" {
		t.Fatalf("login returned no token: %v", body)
	}
	return tok, body
}
