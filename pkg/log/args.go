package log

import (
	"context"
	"fmt"
	"strings"
)

type ctxKey struct{}

// WithRequestID returns a copy of ctx carrying the request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestID returns the request id stored in ctx, or "".
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// message and fields split the variadic args of the non-f methods.
// Callers use two shapes:
//
//	l.Info(ctx, "msg", "key", value, ...)  -> message + structured fields
//	l.Error(ctx, "prefix: ", err)          -> concatenated message
func message(arg []any) string {
	if len(arg) == 0 {
		return ""
	}
	if isKeyValueTail(arg) {
		return fmt.Sprint(arg[0])
	}
	var sb strings.Builder
	for _, a := range arg {
		sb.WriteString(fmt.Sprint(a))
	}
	return sb.String()
}

func fields(arg []any) []any {
	if !isKeyValueTail(arg) {
		return nil
	}
	return arg[1:]
}

// isKeyValueTail reports whether arg is a message followed by string-keyed pairs.
func isKeyValueTail(arg []any) bool {
	if len(arg) < 3 || len(arg)%2 == 0 {
		return false
	}
	for i := 1; i < len(arg); i += 2 {
		if _, ok := arg[i].(string); !ok {
			return false
		}
	}
	return true
}
