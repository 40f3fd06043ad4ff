package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/savor/internal/db"
	"github.com/terraincognita07/savor/internal/storage"
)

func newTestApp(t *testing.T) (*fiber.App, *db.Repositories) {
	t.Helper()

	repositories := db.NewRepositories(storage.NewMemoryStore())
	handler := NewHandler(repositories.Meals, repositories.Assignments)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, repositories
}

func jsonRequest(method string, target string, body string) *http.Request {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	return request
}

func performRequest(t *testing.T, app *fiber.App, request *http.Request) *http.Response {
	t.Helper()

	response, err := app.Test(request)
	if err != nil {
		t.Fatalf("perform %s %s: %v", request.Method, request.URL, err)
	}
	return response
}

func decodeJSONBody(t *testing.T, body io.Reader, dest any) {
	t.Helper()

	if err := json.NewDecoder(body).Decode(dest); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func readAPIError(t *testing.T, body io.Reader) string {
	t.Helper()

	payload := map[string]string{}
	decodeJSONBody(t, body, &payload)
	return payload["error"]
}
