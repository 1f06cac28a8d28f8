package log

import (
	"testing"

	"go.uber.org/zap/zaptest"
)

// NewTest returns a Logger that writes through t.Log.
func NewTest(t testing.TB) Logger {
	return NewZapAdapter(zaptest.NewLogger(t))
}
