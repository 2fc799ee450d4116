package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validation("bad input"), fiber.StatusBadRequest},
		{State("already approved"), fiber.StatusBadRequest},
		{NotFound("no such job"), fiber.StatusNotFound},
		{Forbidden("not yours"), fiber.StatusForbidden},
		{Conflict("duplicate"), fiber.StatusConflict},
		{errors.New("driver exploded"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("apply: %w", NotFound("company not found"))
	if !IsKind(err, KindNotFound) {
		t.Error("wrapped error must keep its kind")
	}
	if HTTPStatus(err) != fiber.StatusNotFound {
		t.Error("wrapped error must keep its status")
	}
}
