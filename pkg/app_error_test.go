package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("NOT_FOUND", "Execution not found", http.StatusNotFound)
		if e.Error() != "NOT_FOUND: Execution not found" {
			t.Fatalf("unexpected message: %s", e.Error())
		}
		if e.ToHTTPError() != (HTTPError{Code: "NOT_FOUND", Message: "Execution not found"}) {
			t.Fatalf("unexpected http error: %+v", e.ToHTTPError())
		}
	})

	t.Run("wrapped cause is unwrappable but not exposed", func(t *testing.T) {
		cause := errors.New("dynamodb timeout")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected errors.Is to find cause")
		}
		if e.ToHTTPError().Message != "An internal error occurred" {
			t.Fatalf("cause leaked: %+v", e.ToHTTPError())
		}
	})
}
