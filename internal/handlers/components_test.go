package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/qadesk/internal/handlers"
	"github.com/localnerve/qadesk/internal/middleware"
	"github.com/localnerve/qadesk/internal/services"
	"github.com/localnerve/qadesk/internal/store"
	"github.com/localnerve/qadesk/internal/types"
)

// testErrorHandler mirrors the server's global error handler so middleware
// failures surface with their intended status codes.
func testErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var customErr *types.CustomError
	if errors.As(err, &customErr) {
		code = customErr.Code
	}
	return c.Status(code).JSON(fiber.Map{"message": err.Error(), "ok": false})
}

// setupComponentApp builds a Fiber app over a temp-dir registry plus a
// logged-in session for the authenticated routes.
func setupComponentApp(t *testing.T) (*fiber.App, *store.ComponentRegistry, *services.Session) {
	t.Helper()

	dir := t.TempDir()
	usersPath := filepath.Join(dir, "users.json")
	users := `[{"email":"auditor@example.com","password":"changeme","name":"Demo Auditor"}]`
	if err := os.WriteFile(usersPath, []byte(users), 0o644); err != nil {
		t.Fatalf("Failed to seed users file: %v", err)
	}

	sessions := services.NewSessionService(store.NewUserStore(usersPath), time.Hour)
	session, err := sessions.Login("auditor@example.com", "changeme")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	registry := store.NewComponentRegistry(filepath.Join(dir, "components.json"))

	app := fiber.New(fiber.Config{ErrorHandler: testErrorHandler})
	authed := middleware.AuthUser(sessions)
	handler := &handlers.ComponentHandler{Registry: registry}
	app.Get("/api/components", handler.ListComponents)
	app.Post("/api/components", authed, handler.AddComponent)
	app.Put("/api/components", authed, handler.RenameComponent)
	app.Delete("/api/components/:name", authed, handler.RemoveComponent)

	return app, registry, session
}

func jsonRequest(method, target string, body any, session *services.Session) *http.Request {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if session != nil {
		req.AddCookie(&http.Cookie{Name: services.SessionCookie, Value: session.Token})
	}
	return req
}

func TestAddAndListComponents(t *testing.T) {
	app, _, session := setupComponentApp(t)

	for _, name := range []string{"Bracket-A", "Shaft-12"} {
		resp, err := app.Test(jsonRequest("POST", "/api/components", fiber.Map{"name": name}, session))
		if err != nil {
			t.Fatalf("Failed to execute request: %v", err)
		}
		if resp.StatusCode != 200 {
			t.Fatalf("Expected status 200 adding %q, got %d", name, resp.StatusCode)
		}
	}

	resp, err := app.Test(jsonRequest("GET", "/api/components", nil, nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var names []string
	if err := json.NewDecoder(resp.Body).Decode(&names); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(names) != 2 || names[0] != "Bracket-A" || names[1] != "Shaft-12" {
		t.Errorf("Unexpected catalog: %v", names)
	}
}

func TestAddComponentRequiresSession(t *testing.T) {
	app, registry, _ := setupComponentApp(t)

	resp, err := app.Test(jsonRequest("POST", "/api/components", fiber.Map{"name": "Bracket-A"}, nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("Expected status 401, got %d", resp.StatusCode)
	}

	names, _ := registry.List()
	if len(names) != 0 {
		t.Errorf("Registry should be untouched, got %v", names)
	}
}

func TestAddDuplicateComponent(t *testing.T) {
	app, registry, session := setupComponentApp(t)

	if _, err := app.Test(jsonRequest("POST", "/api/components", fiber.Map{"name": "Bracket-A"}, session)); err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	resp, err := app.Test(jsonRequest("POST", "/api/components", fiber.Map{"name": "Bracket-A"}, session))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("Expected status 400 for duplicate, got %d", resp.StatusCode)
	}

	names, _ := registry.List()
	if len(names) != 1 {
		t.Errorf("Expected 1 entry after duplicate add, got %v", names)
	}
}

func TestRenameComponentKeepsPosition(t *testing.T) {
	app, registry, session := setupComponentApp(t)

	for _, name := range []string{"Bracket-A", "Shaft-12", "Gear-7"} {
		if _, err := app.Test(jsonRequest("POST", "/api/components", fiber.Map{"name": name}, session)); err != nil {
			t.Fatalf("Failed to execute request: %v", err)
		}
	}

	resp, err := app.Test(jsonRequest("PUT", "/api/components",
		fiber.Map{"old": "Shaft-12", "new": "Shaft-12b"}, session))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	names, _ := registry.List()
	if len(names) != 3 || names[1] != "Shaft-12b" {
		t.Errorf("Rename did not keep position: %v", names)
	}
}

func TestRenameMissingComponent(t *testing.T) {
	app, _, session := setupComponentApp(t)

	resp, err := app.Test(jsonRequest("PUT", "/api/components",
		fiber.Map{"old": "ghost", "new": "anything"}, session))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 404 {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
}

func TestRemoveComponent(t *testing.T) {
	app, registry, session := setupComponentApp(t)

	if _, err := app.Test(jsonRequest("POST", "/api/components", fiber.Map{"name": "Bracket A"}, session)); err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	// Path parameter is URL-escaped; the handler decodes it
	resp, err := app.Test(jsonRequest("DELETE", "/api/components/Bracket%20A", nil, session))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	names, _ := registry.List()
	if len(names) != 0 {
		t.Errorf("Expected empty catalog, got %v", names)
	}
}
