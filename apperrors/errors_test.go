package apperrors

import (
	"errors"
	"net/http"
	"testing"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validation("bad input"), http.StatusBadRequest},
		{Unauthorized("no token"), http.StatusUnauthorized},
		{Forbidden("not yours"), http.StatusForbidden},
		{NotFound("gone"), http.StatusNotFound},
		{Conflict("duplicate"), http.StatusConflict},
		{Internal("boom", errors.New("disk on fire")), http.StatusInternalServerError},
		{errors.New("plain error"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestInternalDetailIsHidden(t *testing.T) {
	err := Internal("failed to create order", errors.New("pq: connection refused"))

	if Message(err) != "internal server error" {
		t.Errorf("internal detail leaked to client: %q", Message(err))
	}
	// full detail stays available for server-side logs
	if err.Error() != "failed to create order: pq: connection refused" {
		t.Errorf("unexpected log detail: %q", err.Error())
	}
}

func TestNotFoundMessagePassesThrough(t *testing.T) {
	err := NotFound("order 7 not found")
	if Message(err) != "order 7 not found" {
		t.Errorf("expected client-visible message, got %q", Message(err))
	}
}
