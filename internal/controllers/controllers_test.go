package controllers

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"placement-portal/dto"
	"placement-portal/internal/apperr"
)

func TestErrorEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/forbidden", func(c *fiber.Ctx) error {
		return fail(c, apperr.Forbidden("admins only"))
	})
	app.Get("/bad", func(c *fiber.Ctx) error {
		return badRequest(c, "invalid body")
	})

	cases := []struct {
		path    string
		status  int
		wantMsg string
	}{
		{"/forbidden", fiber.StatusForbidden, "admins only"},
		{"/bad", fiber.StatusBadRequest, "invalid body"},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", tc.path, nil))
		if err != nil {
			t.Fatalf("%s: %v", tc.path, err)
		}
		if resp.StatusCode != tc.status {
			t.Errorf("%s: status = %d, want %d", tc.path, resp.StatusCode, tc.status)
		}
		var body dto.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("%s: decode: %v", tc.path, err)
		}
		resp.Body.Close()
		if body.Error != tc.wantMsg {
			t.Errorf("%s: error = %q, want %q", tc.path, body.Error, tc.wantMsg)
		}
	}
}

func TestErrorEnvelopeMasksInternal(t *testing.T) {
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fail(c, errors.New("driver: connection reset"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
	var body dto.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Error != "something went wrong" {
		t.Errorf("error = %q, internals must not leak", body.Error)
	}
}
