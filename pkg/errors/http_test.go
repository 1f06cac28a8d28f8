package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"zenned/pkg/errors"
)

func TestHTTPError(t *testing.T) {
	t.Run("status defaults to 400", func(t *testing.T) {
		e := &errors.HTTPError{Message: "bad"}
		if e.StatusCode() != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", e.StatusCode())
		}
	})

	t.Run("with details copies", func(t *testing.T) {
		base := errors.NewHTTPError(http.StatusBadGateway, "ai request failed")
		withDetails := base.WithDetails(map[string]any{"status": 503})

		if base.Details != nil {
			t.Errorf("base error must not be mutated")
		}
		if withDetails.Code != http.StatusBadGateway || withDetails.Message != "ai request failed" {
			t.Errorf("unexpected copy: %#v", withDetails)
		}
	})

	t.Run("errors.As through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("import: %w", errors.NewHTTPError(http.StatusGatewayTimeout, "timeout"))

		var he *errors.HTTPError
		if !stderrors.As(wrapped, &he) {
			t.Fatal("expected errors.As to find HTTPError")
		}
		if he.Code != http.StatusGatewayTimeout {
			t.Errorf("expected 504, got %d", he.Code)
		}
	})
}
