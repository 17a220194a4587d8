package controller_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	courseRoute "sekolahku_backend/internals/features/academics/courses/route"
)

// App tanpa DB: hanya jalur yang berhenti sebelum menyentuh DB
// (parse UUID, parse body, validasi) yang diuji di sini.
func newTestApp() *fiber.App {
	app := fiber.New()
	api := app.Group("/api")
	courseRoute.CourseRoutes(api, nil)
	return app
}

func decodeEnvelope(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var env map[string]any
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("unmarshal %q: %v", raw, err)
	}
	return env
}

func TestGetCourseMalformedID(t *testing.T) {
	app := newTestApp()
	resp, err := app.Test(httptest.NewRequest("GET", "/api/course/bukan-uuid", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	env := decodeEnvelope(t, resp.Body)
	if env["message"] != "ID tidak valid" {
		t.Fatalf("message = %v", env["message"])
	}
}

func TestDeleteCourseMalformedID(t *testing.T) {
	app := newTestApp()
	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/course/123", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestCreateCourseMalformedBody(t *testing.T) {
	app := newTestApp()
	req := httptest.NewRequest("POST", "/api/course/", strings.NewReader("{bukan json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestCreateCourseValidationFailure(t *testing.T) {
	app := newTestApp()
	req := httptest.NewRequest("POST", "/api/course/", strings.NewReader(`{"name":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	env := decodeEnvelope(t, resp.Body)
	if env["message"] != "Validasi gagal" {
		t.Fatalf("message = %v", env["message"])
	}
}
