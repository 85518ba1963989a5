package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kaushl12/TaskCanvas/handlers"
	"github.com/kaushl12/TaskCanvas/middleware"
	"github.com/kaushl12/TaskCanvas/models"
	"github.com/kaushl12/TaskCanvas/router"
	"github.com/kaushl12/TaskCanvas/store"
)

// In-memory store fakes with the same sentinel-error contract as the
// real Postgres stores.

type fakeUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]models.User // keyed by email
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]models.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, email, name, passwordHash string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[email]; ok {
		return nil, store.ErrDuplicateEmail
	}
	f.nextID++
	u := models.User{
		ID:        f.nextID,
		Email:     email,
		Name:      name,
		Password:  passwordHash,
		CreatedAt: time.Now(),
	}
	f.users[email] = u
	return &u, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

type fakeTodoStore struct {
	mu    sync.Mutex
	seq   int
	todos []models.Todo // newest appended last
}

func newFakeTodoStore() *fakeTodoStore {
	return &fakeTodoStore{}
}

func (f *fakeTodoStore) Create(_ context.Context, todo *models.Todo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	todo.ID = fmt.Sprintf("%032x", f.seq)
	todo.CreatedAt = time.Now()
	todo.UpdatedAt = todo.CreatedAt
	f.todos = append(f.todos, *todo)
	return nil
}

func (f *fakeTodoStore) ListByUser(_ context.Context, userID int64) ([]models.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Todo{}
	for i := len(f.todos) - 1; i >= 0; i-- {
		if f.todos[i].UserID == userID {
			out = append(out, f.todos[i])
		}
	}
	return out, nil
}

func (f *fakeTodoStore) GetByIDAndUser(_ context.Context, id string, userID int64) (*models.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.todos {
		if f.todos[i].ID == id && f.todos[i].UserID == userID {
			t := f.todos[i]
			return &t, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeTodoStore) Update(_ context.Context, todo *models.Todo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.todos {
		if f.todos[i].ID == todo.ID && f.todos[i].UserID == todo.UserID {
			todo.UpdatedAt = time.Now()
			todo.CreatedAt = f.todos[i].CreatedAt
			f.todos[i] = *todo
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeTodoStore) Delete(_ context.Context, id string, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.todos {
		if f.todos[i].ID == id && f.todos[i].UserID == userID {
			f.todos = append(f.todos[:i], f.todos[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type testEnv struct {
	app   *fiber.App
	users *fakeUserStore
	todos *fakeTodoStore
}

const testSecret = "test-secret"

func newTestApp(t *testing.T) *testEnv {
	t.Helper()
	users := newFakeUserStore()
	todos := newFakeTodoStore()

	app := fiber.New()
	router.SetupRoutes(app,
		handlers.NewAuthHandler(users, []byte(testSecret)),
		handlers.NewTodoHandler(todos, nil),
		middleware.RequireAuth([]byte(testSecret)),
	)
	return &testEnv{app: app, users: users, todos: todos}
}

// request performs one in-process round trip. body (if non-nil) is sent
// as JSON; token (if non-empty) goes in the token header.
func (e *testEnv) request(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(middleware.TokenHeader, token)
	}

	resp, err := e.app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	decoded := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("unmarshal body %q: %v", raw, err)
		}
	}
	return resp.StatusCode, decoded
}

// signupAndSignin registers a user and returns a usable bearer token.
func (e *testEnv) signupAndSignin(t *testing.T, email, name, password string) string {
	t.Helper()

	status, body := e.request(t, http.MethodPost, "/signup", "", map[string]string{
		"email": email, "name": name, "password": password,
	})
	if status != http.StatusCreated {
		t.Fatalf("signup status = %d, body = %v", status, body)
	}

	status, body = e.request(t, http.MethodPost, "/signin", "", map[string]string{
		"email": email, "password": password,
	})
	if status != http.StatusOK {
		t.Fatalf("signin status = %d, body = %v", status, body)
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("signin returned no token")
	}
	return token
}

func futureDate() string {
	return time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339)
}

func pastDate() string {
	return time.Now().Add(-24 * time.Hour).UTC().Format(time.RFC3339)
}
