package helper_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	helper "sekolahku_backend/internals/helpers"
)

type envelope struct {
	Code    int               `json:"code"`
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func doRequest(t *testing.T, handler fiber.Handler) (int, envelope) {
	t.Helper()
	app := fiber.New()
	app.Get("/t", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/t", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("unmarshal %q: %v", body, err)
	}
	return resp.StatusCode, env
}

func TestSuccessEnvelope(t *testing.T) {
	status, env := doRequest(t, func(c *fiber.Ctx) error {
		return helper.Success(c, "OK", fiber.Map{"x": 1})
	})
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if env.Code != 200 || env.Status != "success" || env.Message != "OK" {
		t.Fatalf("envelope = %+v", env)
	}
	if string(env.Data) == "" || string(env.Data) == "null" {
		t.Fatalf("data kosong: %s", env.Data)
	}
}

func TestSuccessWithCodeCreated(t *testing.T) {
	status, env := doRequest(t, func(c *fiber.Ctx) error {
		return helper.SuccessWithCode(c, fiber.StatusCreated, "dibuat", nil)
	})
	if status != fiber.StatusCreated || env.Code != 201 {
		t.Fatalf("status = %d, code = %d, want 201", status, env.Code)
	}
}

func TestErrorEnvelope(t *testing.T) {
	status, env := doRequest(t, func(c *fiber.Ctx) error {
		return helper.Error(c, fiber.StatusNotFound, "tidak ditemukan")
	})
	if status != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
	if env.Status != "error" || env.Message != "tidak ditemukan" {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestValidationErrorMapsFields(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
		Name  string `validate:"required,min=2"`
	}
	v := validator.New()
	verr := v.Struct(payload{Email: "bukan-email", Name: ""})
	if verr == nil {
		t.Fatal("payload seharusnya tidak lolos validasi")
	}

	status, env := doRequest(t, func(c *fiber.Ctx) error {
		return helper.ValidationError(c, verr)
	})
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if env.Message != "Validasi gagal" {
		t.Fatalf("message = %q", env.Message)
	}
	if env.Errors["Email"] != "email" || env.Errors["Name"] != "required" {
		t.Fatalf("errors map = %v", env.Errors)
	}
}

func TestValidationErrorNonValidatorErr(t *testing.T) {
	status, env := doRequest(t, func(c *fiber.Ctx) error {
		return helper.ValidationError(c, errors.New("boom"))
	})
	if status != fiber.StatusBadRequest || env.Message != "Invalid input" {
		t.Fatalf("status = %d, message = %q", status, env.Message)
	}
}

func TestFromFiberError(t *testing.T) {
	status, env := doRequest(t, func(c *fiber.Ctx) error {
		return helper.FromFiberError(c, fiber.NewError(fiber.StatusBadRequest, "Student ID tidak valid"))
	})
	if status != fiber.StatusBadRequest || env.Message != "Student ID tidak valid" {
		t.Fatalf("status = %d, message = %q", status, env.Message)
	}

	status, env = doRequest(t, func(c *fiber.Ctx) error {
		return helper.FromFiberError(c, errors.New("db putus"))
	})
	if status != fiber.StatusInternalServerError || env.Message != "db putus" {
		t.Fatalf("status = %d, message = %q", status, env.Message)
	}
}
